package http

import (
	"encoding/json"
	"net/http"

	"fairgrounds-admin/internal/application/services"
	"fairgrounds-admin/pkg/middleware"
	"fairgrounds-admin/pkg/response"
)

// EventStatusRequest is the body of an event status update.
type EventStatusRequest struct {
	EventID string `json:"eventId" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=active suspended"`
}

// EventController handles HTTP requests for event status changes
type EventController struct {
	service *services.EventService
}

// NewEventController creates a new event controller
func NewEventController(service *services.EventService) *EventController {
	return &EventController{service: service}
}

// UpdateEventStatus handles PUT /api/admin/event-status
func (c *EventController) UpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	var req EventStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.SendBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		response.SendBadRequest(w, "eventId is required and status must be one of: active, suspended")
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := c.service.UpdateStatus(r.Context(), actorID, req.EventID, req.Status); err != nil {
		middleware.HandleError(w, r, err)
		return
	}

	response.SendOK(w)
}
