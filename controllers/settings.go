package controllers

import (
	"net/http"

	"miednight-backend/config"
	"miednight-backend/models"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateSettingsInput struct {
	PrimaryColor    *string `json:"primaryColor"`
	SecondaryColor  *string `json:"secondaryColor"`
	BackgroundImage *string `json:"backgroundImage"`
}

func getOrInitSettings(db *gorm.DB) (models.Settings, error) {
	var settings models.Settings
	err := db.FirstOrInit(&settings, models.Settings{ID: 1}).Error
	return settings, err
}

func GetSettings(c *gin.Context) {
	settings, err := getOrInitSettings(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func UpdateSettings(c *gin.Context) {
	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	settings, err := getOrInitSettings(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if input.PrimaryColor != nil {
		settings.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		settings.SecondaryColor = *input.SecondaryColor
	}
	if input.BackgroundImage != nil {
		settings.BackgroundImage = *input.BackgroundImage
	}

	if err := config.DB.Save(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
