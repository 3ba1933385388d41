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
)

// CreateExpenseInput defines the expected JSON structure for an expense
type CreateExpenseInput struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

func CreateExpense(c *gin.Context) {
	var input CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.Amount.IsPositive() {
		respondServiceError(c, services.ErrInvalidAmount)
		return
	}
	if input.Date == "" {
		input.Date = services.Today()
	}
	if !services.ValidDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	expense := models.Expense{
		ID:          uuid.New(),
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// GetExpenses lists expenses, optionally filtered to one business date
func GetExpenses(c *gin.Context) {
	query := config.DB.Order("created_at")
	if date := c.Query("date"); date != "" {
		if !services.ValidDate(date) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		query = query.Where("date = ?", date)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func DeleteExpense(c *gin.Context) {
	expenseUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid expense ID format")
		return
	}
	if err := config.DB.Delete(&models.Expense{}, "id = ?", expenseUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
