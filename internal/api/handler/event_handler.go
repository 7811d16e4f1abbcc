package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// EventHandler serves the event endpoints.
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler creates the EventHandler.
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// Create schedules an event created by the caller.
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	creatorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	event, err := h.eventSvc.Create(c.Request.Context(), &req, creatorID)
	if err != nil {
		if errors.Is(err, service.ErrEventTimeInvalid) {
			response.BadRequest(c, 60003, "event end time must be after start time")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, event)
}

// List pages through events.
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	events, total, err := h.eventSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, events, total, req.GetPage(), req.GetPageSize())
}

// Get returns one event.
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.eventSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 60002, "event not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, event)
}

// Update modifies an event.
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	event, err := h.eventSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 60002, "event not found")
		case errors.Is(err, service.ErrEventTimeInvalid):
			response.BadRequest(c, 60003, "event end time must be after start time")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, event)
}

// Delete removes an event.
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 60002, "event not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
