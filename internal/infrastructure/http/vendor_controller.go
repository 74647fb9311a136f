package http

import (
	"encoding/json"
	"net/http"

	"fairgrounds-admin/internal/application/services"
	"fairgrounds-admin/pkg/middleware"
	"fairgrounds-admin/pkg/response"
)

// VendorStatusRequest is the body of a vendor status update.
type VendorStatusRequest struct {
	EventID         string `json:"eventId" validate:"required"`
	VendorID        string `json:"vendorId" validate:"required"`
	Status          string `json:"status" validate:"required,oneof=pending approved rejected suspended"`
	RejectionReason string `json:"rejectionReason"`
}

// VendorController handles HTTP requests for vendor status changes
type VendorController struct {
	service *services.VendorService
}

// NewVendorController creates a new vendor controller
func NewVendorController(service *services.VendorService) *VendorController {
	return &VendorController{service: service}
}

// UpdateVendorStatus handles PUT /api/admin/vendor-status
func (c *VendorController) UpdateVendorStatus(w http.ResponseWriter, r *http.Request) {
	var req VendorStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.SendBadRequest(w, "eventId and vendorId are required and status must be one of: pending, approved, rejected, suspended")
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := c.service.UpdateStatus(r.Context(), actorID, req.EventID, req.VendorID, req.Status, req.RejectionReason); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendOK(w)
}
