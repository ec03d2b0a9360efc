package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/evfin/event_finance_app/internal/apperrors"
	portssvc "github.com/evfin/event_finance_app/internal/core/ports/services"
	"github.com/evfin/event_finance_app/internal/dto"
	"github.com/evfin/event_finance_app/internal/middleware"
	"github.com/evfin/event_finance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests related to the event configuration.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers routes related to the settings record.
// Updates are additionally gated by the admin key.
func registerSettingsRoutes(rg *gin.RouterGroup, cfg *config.Config, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", middleware.AdminKeyMiddleware(cfg.AdminKeyHash), h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get the event configuration
// @Description Retrieves the single settings record: event name, currency pair, exchange rate and account labels
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 404 {object} map[string]string "Settings not configured yet"
// @Failure 500 {object} map[string]string "Failed to retrieve settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Settings not configured yet"})
		} else {
			logger.Error("Failed to get settings from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update the event configuration
// @Description Replaces the settings record; requires the X-Admin-Key header in addition to the bearer token
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   X-Admin-Key header string true "Admin key"
// @Param   settings body dto.UpdateSettingsRequest true "Settings details"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Invalid admin key"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating settings", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update settings in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
