package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/settings"
)

// SettingsHandler serves the singleton site settings document.
type SettingsHandler struct {
	repo   *settings.Repository
	logger *slog.Logger
}

// NewSettingsHandler returns a SettingsHandler.
func NewSettingsHandler(repo *settings.Repository, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{repo: repo, logger: logger}
}

// Get returns the current settings, or the defaults if never saved.
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.repo.Get()
	if err != nil {
		h.logger.Error("load settings", slog.String("error", err.Error()))
		Internal(c, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, s)
}

// Replace overwrites the entire settings document with the request body.
func (h *SettingsHandler) Replace(c *gin.Context) {
	var s settings.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.repo.Replace(s); err != nil {
		h.logger.Error("replace settings", slog.String("error", err.Error()))
		Internal(c, "failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
