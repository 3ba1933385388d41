package controllers

import (
	"encoding/json"
	"net/http"

	"miednight-backend/config"
	"miednight-backend/models"
	"miednight-backend/services"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AppData is the whole persisted document: the backup export format and the
// import format are the same.
type AppData struct {
	Menu         []models.MenuItem      `json:"menu"`
	Toppings     []models.MenuItem      `json:"toppings"`
	Drinks       []models.MenuItem      `json:"drinks"`
	Inventory    []models.InventoryItem `json:"inventory"`
	Transactions []models.Transaction   `json:"transactions"`
	Expenses     []models.Expense       `json:"expenses"`
	Settings     models.Settings        `json:"settings"`
	DailyCash    []models.DailyCash     `json:"dailyCash"`
	DailyLogs    []models.DailyLog      `json:"dailyLogs"`
	Studio       StudioData             `json:"studio"`
}

type StudioData struct {
	Daily   []models.StudioDay   `json:"daily"`
	Monthly []models.StudioMonth `json:"monthly"`
	Entries []models.LedgerEntry `json:"entries"`
}

// ExportBackup serializes the whole document as one JSON payload.
func ExportBackup(c *gin.Context) {
	var data AppData

	loads := []error{
		config.DB.Where("kind = ?", models.MenuKindMenu).Order("name").Find(&data.Menu).Error,
		config.DB.Where("kind = ?", models.MenuKindTopping).Order("name").Find(&data.Toppings).Error,
		config.DB.Where("kind = ?", models.MenuKindDrink).Order("name").Find(&data.Drinks).Error,
		config.DB.Order("name").Find(&data.Inventory).Error,
		config.DB.Preload("Items").Order("created_at").Find(&data.Transactions).Error,
		config.DB.Order("created_at").Find(&data.Expenses).Error,
		config.DB.Order("date").Find(&data.DailyCash).Error,
		config.DB.Order("date").Find(&data.DailyLogs).Error,
		config.DB.Order("date").Find(&data.Studio.Daily).Error,
		config.DB.Order("year_month").Find(&data.Studio.Monthly).Error,
		config.DB.Order("created_at").Find(&data.Studio.Entries).Error,
	}
	for _, err := range loads {
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export data")
			return
		}
	}

	settings, err := getOrInitSettings(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export data")
		return
	}
	data.Settings = settings

	c.JSON(http.StatusOK, data)
}

// ImportBackup validates an exported document and atomically replaces all
// state with it. Validation happens before anything is touched: a rejected
// import leaves the current data intact.
func ImportBackup(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Structural shape check, same gate the original app applied
	for _, key := range []string{"menu", "inventory", "transactions", "settings"} {
		if _, present := raw[key]; !present {
			respondServiceError(c, services.ErrImportValidation)
			return
		}
	}

	blob, err := json.Marshal(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to process import")
		return
	}
	var data AppData
	if err := json.Unmarshal(blob, &data); err != nil {
		respondServiceError(c, services.ErrImportValidation)
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	wipes := []error{
		tx.Where("1 = 1").Delete(&models.OrderItem{}).Error,
		tx.Where("1 = 1").Delete(&models.Transaction{}).Error,
		tx.Where("1 = 1").Delete(&models.MenuItem{}).Error,
		tx.Where("1 = 1").Delete(&models.InventoryItem{}).Error,
		tx.Where("1 = 1").Delete(&models.Expense{}).Error,
		tx.Where("1 = 1").Delete(&models.DailyCash{}).Error,
		tx.Where("1 = 1").Delete(&models.DailyLog{}).Error,
		tx.Where("1 = 1").Delete(&models.StudioDay{}).Error,
		tx.Where("1 = 1").Delete(&models.StudioMonth{}).Error,
		tx.Where("1 = 1").Delete(&models.LedgerEntry{}).Error,
	}
	for _, err := range wipes {
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to replace data")
			return
		}
	}

	// Kind is implied by the array an item arrives in
	for i := range data.Menu {
		data.Menu[i].Kind = models.MenuKindMenu
	}
	for i := range data.Toppings {
		data.Toppings[i].Kind = models.MenuKindTopping
	}
	for i := range data.Drinks {
		data.Drinks[i].Kind = models.MenuKindDrink
	}

	menu := append(append(data.Menu, data.Toppings...), data.Drinks...)
	inserts := []error{
		createAll(tx, menu),
		createAll(tx, data.Inventory),
		createAll(tx, data.Transactions),
		createAll(tx, data.Expenses),
		createAll(tx, data.DailyCash),
		createAll(tx, data.DailyLogs),
		createAll(tx, data.Studio.Daily),
		createAll(tx, data.Studio.Monthly),
		createAll(tx, data.Studio.Entries),
	}
	for _, err := range inserts {
		if err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to replace data")
			return
		}
	}

	data.Settings.ID = 1
	if err := tx.Save(&data.Settings).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to replace data")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Data imported successfully"})
}

func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
