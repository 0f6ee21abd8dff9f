package handlers

import (
	"net/http"

	"weddify/services/admin"
	"weddify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes platform configuration endpoints.
type AdminHandler struct {
	SettingsService admin.SettingsService
}

func NewAdminHandler(svc admin.SettingsService) *AdminHandler {
	return &AdminHandler{SettingsService: svc}
}

// GetSettingsHandler handles GET /admin/settings.
func (h *AdminHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.SettingsService.GetSettings(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to load platform settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler handles PUT /admin/settings.
func (h *AdminHandler) UpdateSettingsHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var patch admin.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	settings, err := h.SettingsService.UpdateSettings(c.Request.Context(), idStr, patch)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
