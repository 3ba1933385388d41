package controllers

import (
	"errors"
	"net/http"

	"miednight-backend/config"
	"miednight-backend/models"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateMenuItemInput defines the expected JSON structure for a menu item
type CreateMenuItemInput struct {
	Name    string          `json:"name" binding:"required"`
	Price   decimal.Decimal `json:"price"`
	Kind    string          `json:"kind" binding:"omitempty,oneof=menu topping drink"`
	StockID *uuid.UUID      `json:"stockId"`
}

type UpdateMenuItemInput struct {
	Name    *string          `json:"name"`
	Price   *decimal.Decimal `json:"price"`
	StockID *uuid.UUID       `json:"stockId"`
}

func CreateMenuItem(c *gin.Context) {
	var input CreateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
		return
	}
	if input.Kind == "" {
		input.Kind = models.MenuKindMenu
	}

	item := models.MenuItem{
		ID:      uuid.New(),
		Name:    input.Name,
		Price:   input.Price,
		Kind:    input.Kind,
		StockID: input.StockID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create menu item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetMenuItems lists menu items, optionally filtered by kind
func GetMenuItems(c *gin.Context) {
	query := config.DB.Order("name")
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve menu items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func UpdateMenuItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid menu item ID format")
		return
	}

	var input UpdateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.MenuItem
	if err := config.DB.Where("id = ?", itemUUID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Menu item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must not be negative")
			return
		}
		item.Price = *input.Price
	}
	if input.StockID != nil {
		item.StockID = input.StockID
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update menu item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteMenuItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid menu item ID format")
		return
	}
	if err := config.DB.Delete(&models.MenuItem{}, "id = ?", itemUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete menu item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

// CreateInventoryItemInput defines the expected JSON structure for a stock item
type CreateInventoryItemInput struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=0"`
	MinStock int    `json:"minStock" binding:"min=0"`
}

type UpdateInventoryItemInput struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	MinStock *int    `json:"minStock"`
}

func CreateInventoryItem(c *gin.Context) {
	var input CreateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item := models.InventoryItem{
		ID:       uuid.New(),
		Name:     input.Name,
		Quantity: input.Quantity,
		MinStock: input.MinStock,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create inventory item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetInventory lists stock items; ?low=true filters to items at or below
// their minimum stock level
func GetInventory(c *gin.Context) {
	query := config.DB.Order("name")
	if c.Query("low") == "true" {
		query = query.Where("quantity <= min_stock")
	}

	var items []models.InventoryItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inventory")
		return
	}
	c.JSON(http.StatusOK, items)
}

func UpdateInventoryItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inventory item ID format")
		return
	}

	var input UpdateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var item models.InventoryItem
	if err := config.DB.Where("id = ?", itemUUID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Inventory item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.MinStock != nil {
		item.MinStock = *input.MinStock
	}

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteInventoryItem(c *gin.Context) {
	itemUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid inventory item ID format")
		return
	}
	if err := config.DB.Delete(&models.InventoryItem{}, "id = ?", itemUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
