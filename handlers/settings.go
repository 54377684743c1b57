package handlers

import (
	"net/http"

	"brilho/models"
	"brilho/services/settings"
	"brilho/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler exposes the platform settings singleton to the admin UI.
type SettingsHandler struct {
	Settings settings.SettingsService
	Logger   *zap.Logger
}

func NewSettingsHandler(svc settings.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{Settings: svc, Logger: logger}
}

// GetSettingsHandler returns the current payout matrix and reference rates.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	current, err := h.Settings.Get(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, current)
}

// UpdateSettingsHandler replaces the settings document wholesale.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	var input models.PlatformSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Settings.Update(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to save settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}
