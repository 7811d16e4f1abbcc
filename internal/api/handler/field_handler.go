package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// FieldHandler serves the field endpoints.
type FieldHandler struct {
	fieldSvc service.FieldService
}

// NewFieldHandler creates the FieldHandler.
func NewFieldHandler(fieldSvc service.FieldService) *FieldHandler {
	return &FieldHandler{fieldSvc: fieldSvc}
}

// Create adds a field under a team.
// POST /api/v1/fields
func (h *FieldHandler) Create(c *gin.Context) {
	var req dto.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	field, err := h.fieldSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 30001, "team not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, field)
}

// List returns fields, optionally scoped to one team.
// GET /api/v1/fields?team_id=
func (h *FieldHandler) List(c *gin.Context) {
	fields, err := h.fieldSvc.List(c.Request.Context(), c.Query("team_id"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, fields)
}

// Get returns one field.
// GET /api/v1/fields/:id
func (h *FieldHandler) Get(c *gin.Context) {
	field, err := h.fieldSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFieldNotFound) {
			response.NotFound(c, 30005, "field not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, field)
}

// Update modifies a field.
// PUT /api/v1/fields/:id
func (h *FieldHandler) Update(c *gin.Context) {
	var req dto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	field, err := h.fieldSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldNotFound):
			response.NotFound(c, 30005, "field not found")
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 30001, "team not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, field)
}

// Delete removes a field.
// DELETE /api/v1/fields/:id
func (h *FieldHandler) Delete(c *gin.Context) {
	if err := h.fieldSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrFieldNotFound) {
			response.NotFound(c, 30005, "field not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// AddMember enrolls a user into the field. Field membership implies
// membership in the parent team.
// POST /api/v1/fields/:id/members
func (h *FieldHandler) AddMember(c *gin.Context) {
	var req dto.AddFieldMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	err := h.fieldSvc.AddMember(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldNotFound):
			response.NotFound(c, 30005, "field not found")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20004, "user not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, nil)
}

// ListMembers returns the field roster.
// GET /api/v1/fields/:id/members
func (h *FieldHandler) ListMembers(c *gin.Context) {
	members, err := h.fieldSvc.ListMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrFieldNotFound) {
			response.NotFound(c, 30005, "field not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, members)
}
