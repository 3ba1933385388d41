package controllers

import (
	"errors"
	"net/http"
	"time"

	"miednight-backend/config"
	"miednight-backend/models"
	"miednight-backend/services"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemInput defines one line of a new order
type OrderItemInput struct {
	MenuItemID uuid.UUID `json:"menuItemId" binding:"required"`
	Quantity   int       `json:"quantity" binding:"min=1"`
}

// CreateOrderInput defines the expected JSON structure for creating an order
type CreateOrderInput struct {
	CustomerName string           `json:"customerName"`
	Items        []OrderItemInput `json:"items" binding:"required,min=1"`
}

type PayOrderInput struct {
	Method string `json:"method" binding:"required,oneof=cash electronic"`
}

// CreateOrder creates an unpaid order priced from the menu and decrements
// linked inventory. Order entry is refused once the business day is closed.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	now := time.Now()
	date := services.BusinessDate(now)

	var log models.DailyLog
	if err := config.DB.Where("date = ?", date).First(&log).Error; err == nil && log.IsClosed {
		utils.RespondWithError(c, http.StatusConflict, "Business day is closed, no new orders")
		return
	}

	total := decimal.Zero
	var orderItems []models.OrderItem

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, item := range input.Items {
		var menuItem models.MenuItem
		if err := tx.Where("id = ?", item.MenuItemID).First(&menuItem).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Menu item not found: "+item.MenuItemID.String())
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}

		lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)

		orderItems = append(orderItems, models.OrderItem{
			ID:        uuid.New(),
			Name:      menuItem.Name,
			UnitPrice: menuItem.Price,
			Quantity:  item.Quantity,
			StockID:   menuItem.StockID,
		})

		if menuItem.StockID != nil {
			if err := tx.Model(&models.InventoryItem{}).Where("id = ?", *menuItem.StockID).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity)).Error; err != nil {
				tx.Rollback()
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inventory")
				return
			}
		}
	}

	order := models.Transaction{
		ID:            uuid.New(),
		CustomerName:  input.CustomerName,
		PaymentStatus: models.PaymentStatusUnpaid,
		Total:         total,
		CreatedAt:     now,
		Items:         orderItems,
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, order)
}

// GetOrders lists orders for one business date (default: today)
func GetOrders(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = services.Today()
	}
	if !services.ValidDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var trxs []models.Transaction
	if err := config.DB.Preload("Items").Order("created_at").Find(&trxs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	// Filter in Go so the business-date rule stays in one place
	out := make([]models.Transaction, 0)
	for _, t := range trxs {
		if services.BusinessDate(t.CreatedAt) == date {
			out = append(out, t)
		}
	}

	c.JSON(http.StatusOK, out)
}

// PayOrder marks an order paid with the given method. The unpaid->paid
// transition happens exactly once; paying a paid order is rejected.
func PayOrder(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input PayOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var order models.Transaction
	if err := config.DB.Where("id = ?", orderUUID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		utils.RespondWithError(c, http.StatusConflict, "Order is already paid")
		return
	}

	order.PaymentStatus = models.PaymentStatusPaid
	order.PaymentMethod = input.Method

	if err := config.DB.Save(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// ToggleDelivered flips the delivered flag on an order
func ToggleDelivered(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Transaction
	if err := config.DB.Where("id = ?", orderUUID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	order.Delivered = !order.Delivered
	if err := config.DB.Save(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes an unpaid order and restores linked inventory. Paid
// orders are final and cannot be deleted.
func DeleteOrder(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var order models.Transaction
	if err := tx.Preload("Items").Where("id = ?", orderUUID).First(&order).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusConflict, "Paid orders cannot be deleted")
		return
	}

	for _, item := range order.Items {
		if item.StockID != nil {
			if err := tx.Model(&models.InventoryItem{}).Where("id = ?", *item.StockID).
				Update("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
				tx.Rollback()
				utils.RespondWithError(c, http.StatusInternalServerError, "Failed to restore inventory")
				return
			}
		}
	}

	if err := tx.Where("transaction_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order items")
		return
	}

	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
