package controllers

import (
	"errors"
	"net/http"
	"strings"

	"miednight-backend/config"
	"miednight-backend/models"
	"miednight-backend/services"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SetBalancesInput struct {
	CashBalance    decimal.Decimal `json:"cashBalance"`
	BankBalance    decimal.Decimal `json:"bankBalance"`
	EwalletBalance decimal.Decimal `json:"ewalletBalance"`
	DailyTarget    decimal.Decimal `json:"dailyTarget"`
}

type AddLedgerEntryInput struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Pool        string          `json:"pool"`
}

type SetMonthlyTargetInput struct {
	MonthlyTarget decimal.Decimal `json:"monthlyTarget"`
}

// getOrCreateStudioDay auto-initializes a zero-balance record on first
// access. Balances start at zero for every new date; they are not carried
// forward from the previous day's closing balances.
func getOrCreateStudioDay(db *gorm.DB, date string) (models.StudioDay, error) {
	var day models.StudioDay
	err := db.Where(models.StudioDay{Date: date}).
		Attrs(models.StudioDay{ID: uuid.New()}).
		FirstOrCreate(&day).Error
	return day, err
}

// GetStudioDay returns the full studio view for one date: starting balances,
// the synthesized+manual ledger, and derived closing balances.
func GetStudioDay(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	day, err := getOrCreateStudioDay(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var trxs []models.Transaction
	if err := config.DB.Find(&trxs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	var manual []models.LedgerEntry
	if err := config.DB.Where("date = ?", date).Order("created_at").Find(&manual).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ledger entries")
		return
	}

	ledger := services.DayLedger(trxs, date, manual)
	closing := services.ClosingBalances(day, ledger)

	dailySales := services.DailySales(trxs, date)

	c.JSON(http.StatusOK, gin.H{
		"day":             day,
		"ledger":          ledger,
		"closingBalances": closing,
		"totalBalance":    closing.Total(),
		"dailyRevenue":    dailySales.Total,
	})
}

// SetStudioBalances upserts the starting balances and daily target for a date
func SetStudioBalances(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var input SetBalancesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.CashBalance.IsNegative() || input.BankBalance.IsNegative() ||
		input.EwalletBalance.IsNegative() || input.DailyTarget.IsNegative() {
		respondServiceError(c, services.ErrInvalidAmount)
		return
	}

	day, err := getOrCreateStudioDay(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	day.CashBalance = input.CashBalance
	day.BankBalance = input.BankBalance
	day.EwalletBalance = input.EwalletBalance
	day.DailyTarget = input.DailyTarget

	if err := config.DB.Save(&day).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save studio day")
		return
	}
	c.JSON(http.StatusOK, day)
}

// AddLedgerEntry appends a manual income/expense entry to a date's ledger
func AddLedgerEntry(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var input AddLedgerEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := services.ValidManualEntry(strings.TrimSpace(input.Description), input.Amount, input.Type, input.Pool); err != nil {
		respondServiceError(c, err)
		return
	}

	entry := models.LedgerEntry{
		ID:          uuid.NewString(),
		Date:        date,
		Description: strings.TrimSpace(input.Description),
		Amount:      input.Amount,
		Type:        input.Type,
		Pool:        input.Pool,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create ledger entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DeleteLedgerEntry removes a manual entry by id. Synthesized entries only
// exist in the read view, so deleting one (or a stale id) is a no-op rather
// than an error.
func DeleteLedgerEntry(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}
	entryID := c.Param("id")

	var manual []models.LedgerEntry
	if err := config.DB.Where("date = ?", date).Find(&manual).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ledger entries")
		return
	}

	if len(services.RemoveEntry(manual, entryID)) == len(manual) {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to delete"})
		return
	}
	if err := config.DB.Where("date = ? AND id = ?", date, entryID).
		Delete(&models.LedgerEntry{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete ledger entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ledger entry deleted"})
}

// SetMonthlyTarget upserts the revenue target for a calendar month
func SetMonthlyTarget(c *gin.Context) {
	yearMonth := c.Param("yearMonth")
	if !services.ValidMonth(yearMonth) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}

	var input SetMonthlyTargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.MonthlyTarget.IsNegative() {
		respondServiceError(c, services.ErrInvalidAmount)
		return
	}

	var month models.StudioMonth
	if err := config.DB.Where(models.StudioMonth{YearMonth: yearMonth}).
		Attrs(models.StudioMonth{ID: uuid.New()}).
		FirstOrInit(&month).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	month.MonthlyTarget = input.MonthlyTarget

	if err := config.DB.Save(&month).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save monthly target")
		return
	}
	c.JSON(http.StatusOK, month)
}

// GetStudioMonth reports the month's revenue, profit, savings and progress
// against the target. Progress is returned unclamped alongside the clamped
// display value.
func GetStudioMonth(c *gin.Context) {
	yearMonth := c.Param("yearMonth")
	if !services.ValidMonth(yearMonth) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}

	// Not found just means no target was set yet; the zero value stands in
	var month models.StudioMonth
	if err := config.DB.Where("year_month = ?", yearMonth).First(&month).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve monthly target")
		return
	}

	var trxs []models.Transaction
	if err := config.DB.Find(&trxs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	var logs []models.DailyLog
	if err := config.DB.Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve daily logs")
		return
	}
	var manual []models.LedgerEntry
	if err := config.DB.Where("date LIKE ?", yearMonth+"%").Order("created_at").Find(&manual).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ledger entries")
		return
	}

	today := services.Today()
	revenue := services.MonthlyRevenue(logs, trxs, yearMonth, today)
	progress := services.TargetProgress(revenue, month.MonthlyTarget)

	c.JSON(http.StatusOK, gin.H{
		"yearMonth":       yearMonth,
		"monthlyTarget":   month.MonthlyTarget,
		"revenue":         revenue,
		"savings":         services.MonthlySavings(logs, yearMonth),
		"profit":          services.MonthlyProfit(trxs, manual, yearMonth),
		"progress":        progress,
		"progressDisplay": services.ClampProgress(progress),
	})
}
