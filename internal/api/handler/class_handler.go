package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// ClassHandler serves the class scheduling endpoints.
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler creates the ClassHandler.
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// Create schedules a class. The caller becomes the instructor.
// POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	instructorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), &req, instructorID)
	if err != nil {
		if errors.Is(err, service.ErrFieldNotFound) {
			response.NotFound(c, 30005, "field not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, class)
}

// List pages through classes, optionally scoped to one field.
// GET /api/v1/classes
func (h *ClassHandler) List(c *gin.Context) {
	var req dto.ClassListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	classes, total, err := h.classSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, classes, total, req.GetPage(), req.GetPageSize())
}

// Get returns one class.
// GET /api/v1/classes/:id
func (h *ClassHandler) Get(c *gin.Context) {
	class, err := h.classSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, 40001, "class not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, class)
}

// Update modifies a class.
// PUT /api/v1/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	class, err := h.classSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 40001, "class not found")
		case errors.Is(err, service.ErrFieldNotFound):
			response.NotFound(c, 30005, "field not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, class)
}

// Delete removes a class.
// DELETE /api/v1/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.classSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, 40001, "class not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
