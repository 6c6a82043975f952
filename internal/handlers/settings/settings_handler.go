package settings

import (
	"net/http"

	"zabudowy-service/internal/domain/settings"
	"zabudowy-service/internal/pkg/response"
	service "zabudowy-service/internal/service/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *service.Service
}

func NewSettingsHandler(settingsService *service.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the full key-value map. Served on both the public and
// admin surfaces; the map holds site chrome only, nothing sensitive.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	values, err := h.settingsService.All(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, "settings retrieved", values)
}

// UpsertSettings writes every pair in the payload, inserting or overwriting
// per key.
func (h *SettingsHandler) UpsertSettings(c *gin.Context) {
	var req settings.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	if err := h.settingsService.Upsert(c.Request.Context(), req.Settings); err != nil {
		response.FromError(c, err, "failed to save settings")
		return
	}
	response.Success(c, http.StatusOK, "settings saved", nil)
}
