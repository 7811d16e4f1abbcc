package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// AnnouncementHandler serves the announcement endpoints.
type AnnouncementHandler struct {
	annSvc service.AnnouncementService
}

// NewAnnouncementHandler creates the AnnouncementHandler.
func NewAnnouncementHandler(annSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{annSvc: annSvc}
}

// Create publishes an announcement authored by the caller.
// POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	authorID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	ann, err := h.annSvc.Create(c.Request.Context(), &req, authorID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, ann)
}

// List pages through announcements, pinned first.
// GET /api/v1/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	anns, total, err := h.annSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, anns, total, req.GetPage(), req.GetPageSize())
}

// Get returns one announcement.
// GET /api/v1/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	ann, err := h.annSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			response.NotFound(c, 60001, "announcement not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, ann)
}

// Update modifies an announcement.
// PUT /api/v1/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	ann, err := h.annSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			response.NotFound(c, 60001, "announcement not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, ann)
}

// Delete removes an announcement.
// DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.annSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			response.NotFound(c, 60001, "announcement not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
