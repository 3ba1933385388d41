package controllers

import (
	"errors"
	"net/http"

	"miednight-backend/services"
	"miednight-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps core validation errors to HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidEntry),
		errors.Is(err, services.ErrImportValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// dateParam validates the :date path parameter.
func dateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if !services.ValidDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return "", false
	}
	return date, true
}
