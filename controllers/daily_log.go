package controllers

import (
	"net/http"

	"miednight-backend/config"
	"miednight-backend/services"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SaveDailyLogInput carries the manually entered figures for a past date
type SaveDailyLogInput struct {
	ManualRevenue  decimal.Decimal `json:"manualRevenue"`
	ManualExpenses decimal.Decimal `json:"manualExpenses"`
	SavingsAmount  decimal.Decimal `json:"savingsAmount"`
}

type ToggleSavingsInput struct {
	SavingsAmount decimal.Decimal `json:"savingsAmount"`
}

func GetDailyLog(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}
	log, err := getOrInitDailyLog(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, log)
}

// SaveDailyLog upserts the manual figures for a date, preserving the
// reconciliation fields and the closed flag.
func SaveDailyLog(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var input SaveDailyLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.ManualRevenue.IsNegative() || input.ManualExpenses.IsNegative() || input.SavingsAmount.IsNegative() {
		respondServiceError(c, services.ErrInvalidAmount)
		return
	}

	log, err := getOrInitDailyLog(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	log.ManualRevenue = input.ManualRevenue
	log.ManualExpenses = input.ManualExpenses
	log.SavingsAmount = input.SavingsAmount

	if err := config.DB.Save(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save daily log")
		return
	}
	c.JSON(http.StatusOK, log)
}

// ToggleSavingsDeposited flips the savings-deposited flag and stores the
// pending amount alongside it.
func ToggleSavingsDeposited(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	var input ToggleSavingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.SavingsAmount.IsNegative() {
		respondServiceError(c, services.ErrInvalidAmount)
		return
	}

	log, err := getOrInitDailyLog(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	log.SavingsDeposited = !log.SavingsDeposited
	log.SavingsAmount = input.SavingsAmount

	if err := config.DB.Save(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save daily log")
		return
	}
	c.JSON(http.StatusOK, log)
}

// CloseDay locks the date against further order entry
func CloseDay(c *gin.Context) {
	setDayClosed(c, true)
}

// ReopenDay unlocks a previously closed date
func ReopenDay(c *gin.Context) {
	setDayClosed(c, false)
}

func setDayClosed(c *gin.Context, closed bool) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	log, err := getOrInitDailyLog(config.DB, date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	log.IsClosed = closed

	if err := config.DB.Save(&log).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update daily log")
		return
	}
	c.JSON(http.StatusOK, log)
}
