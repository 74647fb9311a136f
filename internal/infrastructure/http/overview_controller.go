package http

import (
	"net/http"

	"fairgrounds-admin/internal/application/services"
	"fairgrounds-admin/pkg/middleware"
	"fairgrounds-admin/pkg/response"
)

// OverviewController handles the admin overview aggregate
type OverviewController struct {
	service *services.OverviewService
}

// NewOverviewController creates a new overview controller
func NewOverviewController(service *services.OverviewService) *OverviewController {
	return &OverviewController{service: service}
}

// GetOverview handles GET /api/admin/overview
func (c *OverviewController) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := c.service.Get(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendSuccess(w, overview)
}
