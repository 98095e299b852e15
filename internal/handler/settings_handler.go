package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskcherry/internal/model"
	"taskcherry/internal/repository"
)

type SettingsHandler struct {
	settingsRepo repository.SettingsRepositoryInterface
}

func NewSettingsHandler(settingsRepo repository.SettingsRepositoryInterface) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

type UpdateSettingsRequest struct {
	StarCount         *int    `json:"star_count" binding:"omitempty,oneof=3 5"`
	WidgetDisplayMode *string `json:"widget_display_mode" binding:"omitempty,oneof=wrap scroll"`
}

type SettingsResponse struct {
	StarCount         int    `json:"star_count"`
	WidgetDisplayMode string `json:"widget_display_mode"`
}

// Get returns the user's settings, falling back to the defaults when no row
// has been written yet. The defaults are never persisted by a read.
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	settings, err := h.settingsRepo.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}

	response := SettingsResponse{
		StarCount:         model.DefaultStarCount,
		WidgetDisplayMode: model.DefaultWidgetDisplayMode,
	}
	if settings != nil {
		response.StarCount = settings.StarCount
		response.WidgetDisplayMode = settings.WidgetDisplayMode
	}

	c.JSON(http.StatusOK, response)
}

// Update writes the fields the request carries; omitted fields keep their
// stored (or default) values.
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	existing, err := h.settingsRepo.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}

	settings := &model.UserSettings{
		UserID:            userID,
		StarCount:         model.DefaultStarCount,
		WidgetDisplayMode: model.DefaultWidgetDisplayMode,
	}
	if existing != nil {
		settings.StarCount = existing.StarCount
		settings.WidgetDisplayMode = existing.WidgetDisplayMode
	}
	if req.StarCount != nil {
		settings.StarCount = *req.StarCount
	}
	if req.WidgetDisplayMode != nil {
		settings.WidgetDisplayMode = *req.WidgetDisplayMode
	}

	if err := h.settingsRepo.Upsert(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{
		StarCount:         settings.StarCount,
		WidgetDisplayMode: settings.WidgetDisplayMode,
	})
}
