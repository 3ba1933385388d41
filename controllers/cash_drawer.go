package controllers

import (
	"net/http"

	"miednight-backend/config"
	"miednight-backend/models"
	"miednight-backend/services"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SetFloatInput struct {
	StartingFloat decimal.Decimal `json:"startingFloat"`
}

type ReconcileInput struct {
	ActualCash decimal.Decimal `json:"actualCash"`
}

// getOrInitDailyCash loads the drawer record for a date, or an unsaved
// zero-float record when none exists.
func getOrInitDailyCash(db *gorm.DB, date string) (models.DailyCash, error) {
	var cash models.DailyCash
	err := db.Where(models.DailyCash{Date: date}).
		Attrs(models.DailyCash{ID: uuid.New()}).
		FirstOrInit(&cash).Error
	return cash, err
}

// getOrInitDailyLog is the upsert half of the "absent row means all-zero"
// rule: callers patch the fields they own and save, others are preserved.
func getOrInitDailyLog(db *gorm.DB, date string) (models.DailyLog, error) {
	var log models.DailyLog
	err := db.Where(models.DailyLog{Date: date}).
		Attrs(models.DailyLog{ID: uuid.New()}).
		FirstOrInit(&log).Error
	return log, err
}

// GetCashDrawer reports the drawer state for a date: float, derived cash
// sales and expenses, the expected amount, and the reconciliation fields.
func GetCashDrawer(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	cash, err := getOrInitDailyCash(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	log, err := getOrInitDailyLog(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var trxs []models.Transaction
	if err := config.DB.Find(&trxs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	var expenses []models.Expense
	if err := config.DB.Where("date = ?", date).Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	c.JSON(http.StatusOK, services.DrawerStatusFor(date, cash, log, trxs, expenses))
}

// SetStartingFloat upserts the starting cash float for a date
func SetStartingFloat(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var input SetFloatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !services.ValidAmount(input.StartingFloat) {
		respondServiceError(c, services.ErrInvalidAmount)
		return
	}

	cash, err := getOrInitDailyCash(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	cash.StartingFloat = input.StartingFloat

	if err := config.DB.Save(&cash).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save starting float")
		return
	}
	c.JSON(http.StatusOK, cash)
}

// ReconcileCashDrawer compares a physically counted amount against the
// expected drawer contents and records the signed difference.
func ReconcileCashDrawer(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var input ReconcileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !services.ValidAmount(input.ActualCash) {
		respondServiceError(c, services.ErrInvalidAmount)
		return
	}

	cash, err := getOrInitDailyCash(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var trxs []models.Transaction
	if err := config.DB.Find(&trxs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}
	var expenses []models.Expense
	if err := config.DB.Where("date = ?", date).Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}

	expected := services.ExpectedCash(cash.StartingFloat, services.DailySales(trxs, date).CashTotal, services.ExpenseTotal(expenses, date))

	log, err := getOrInitDailyLog(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	log.CashReconciled = true
	log.ActualCash = input.ActualCash
	log.CashDifference = input.ActualCash.Sub(expected)

	if err := config.DB.Save(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save reconciliation")
		return
	}

	c.JSON(http.StatusOK, services.DrawerStatus{
		Date:          date,
		StartingFloat: cash.StartingFloat,
		CashSales:     services.DailySales(trxs, date).CashTotal,
		Expenses:      services.ExpenseTotal(expenses, date),
		Expected:      expected,
		Reconciled:    true,
		ActualCash:    log.ActualCash,
		Difference:    log.CashDifference,
	})
}

// ResetCashDrawer clears the reconciled flag only. The previously counted
// amount and difference stay in place as a pre-fill for the next attempt.
func ResetCashDrawer(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	log, err := getOrInitDailyLog(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	log.CashReconciled = false

	if err := config.DB.Save(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset reconciliation")
		return
	}
	c.JSON(http.StatusOK, log)
}
