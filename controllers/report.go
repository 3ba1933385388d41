// controllers/report.go
package controllers

import (
	"net/http"
	"strconv"

	"miednight-backend/config"
	"miednight-backend/models"
	"miednight-backend/services"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

func (rc *ReportController) loadBooks(c *gin.Context) (trxs []models.Transaction, logs []models.DailyLog, expenses []models.Expense, ok bool) {
	if err := config.DB.Preload("Items").Order("created_at").Find(&trxs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return nil, nil, nil, false
	}
	if err := config.DB.Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve daily logs")
		return nil, nil, nil, false
	}
	if err := config.DB.Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return nil, nil, nil, false
	}
	return trxs, logs, expenses, true
}

// GetDailyReport returns one business date's totals, per-method subtotals
// and the paid transactions behind them.
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = services.Today()
	}
	if !services.ValidDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	trxs, _, expenses, ok := rc.loadBooks(c)
	if !ok {
		return
	}

	sales := services.DailySales(trxs, date)
	paid := services.PaidTransactions(trxs, date)

	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"sales":        sales,
		"expenses":     services.ExpenseTotal(expenses, date),
		"transactions": paid,
	})
}

// GetRecentRecap returns the recap of the N most recent days (default 3),
// oldest first. Today's figures are derived; earlier days read the manual
// logs. Savings count only where the deposit flag is set.
func (rc *ReportController) GetRecentRecap(c *gin.Context) {
	days := 3
	if env := c.Query("days"); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil || n < 1 || n > 62 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = n
	}

	trxs, logs, expenses, ok := rc.loadBooks(c)
	if !ok {
		return
	}

	summaries, totals := services.RecentDaySummaries(logs, trxs, expenses, services.Today(), days)

	c.JSON(http.StatusOK, gin.H{
		"days":   summaries,
		"totals": totals,
	})
}

// GetMonthlyReport aggregates revenue, expenses, savings and studio profit
// for one calendar month.
func (rc *ReportController) GetMonthlyReport(c *gin.Context) {
	yearMonth := c.Query("month")
	if yearMonth == "" {
		yearMonth = services.MonthOf(services.Today())
	}
	if !services.ValidMonth(yearMonth) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}

	trxs, logs, expenses, ok := rc.loadBooks(c)
	if !ok {
		return
	}
	var manual []models.LedgerEntry
	if err := config.DB.Where("date LIKE ?", yearMonth+"%").Order("created_at").Find(&manual).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ledger entries")
		return
	}

	today := services.Today()
	revenue := services.MonthlyRevenue(logs, trxs, yearMonth, today)
	spent := services.MonthlyExpenses(logs, expenses, yearMonth, today)

	c.JSON(http.StatusOK, gin.H{
		"month":    yearMonth,
		"revenue":  revenue,
		"expenses": spent,
		"savings":  services.MonthlySavings(logs, yearMonth),
		"profit":   services.MonthlyProfit(trxs, manual, yearMonth),
	})
}
