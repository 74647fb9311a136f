package http

import (
	"encoding/json"
	"net/http"

	"fairgrounds-admin/internal/application/services"
	"fairgrounds-admin/pkg/middleware"
	"fairgrounds-admin/pkg/response"
)

// SettingsController handles HTTP requests for the system settings document
type SettingsController struct {
	service *services.SettingsService
}

// NewSettingsController creates a new settings controller
func NewSettingsController(service *services.SettingsService) *SettingsController {
	return &SettingsController{service: service}
}

// GetSystemSettings handles GET /api/system-settings
func (c *SettingsController) GetSystemSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.service.Get(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	if settings == nil {
		// Never written: an empty object, not a zero-valued document.
		response.SendSuccess(w, map[string]interface{}{})
		return
	}

	response.SendSuccess(w, settings)
}

// UpdateSystemSettings handles PUT /api/system-settings
func (c *SettingsController) UpdateSystemSettings(w http.ResponseWriter, r *http.Request) {
	var cmd services.UpdateSystemSettings
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, "Invalid request body")
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := c.service.Update(r.Context(), actorID, cmd); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendOK(w)
}
