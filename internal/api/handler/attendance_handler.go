package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// AttendanceHandler serves the live attendance endpoints.
type AttendanceHandler struct {
	attSvc service.AttendanceService
}

// NewAttendanceHandler creates the AttendanceHandler.
func NewAttendanceHandler(attSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attSvc: attSvc}
}

// Join opens a session for the caller. Joining with a session already
// open returns that session unchanged.
// POST /api/v1/classes/:id/join
func (h *AttendanceHandler) Join(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	att, err := h.attSvc.Join(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, 40001, "class not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, att)
}

// Heartbeat credits presence time for the caller's open session.
// POST /api/v1/classes/:id/heartbeat
func (h *AttendanceHandler) Heartbeat(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	att, err := h.attSvc.Heartbeat(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 40001, "class not found")
		case errors.Is(err, service.ErrNotInClass):
			response.BadRequest(c, 40002, "no open session for this class")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, att)
}

// Leave closes the caller's open session and resolves the final status.
// POST /api/v1/classes/:id/leave
func (h *AttendanceHandler) Leave(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	att, err := h.attSvc.Leave(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 40001, "class not found")
		case errors.Is(err, service.ErrNotInClass):
			response.BadRequest(c, 40002, "no open session for this class")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, att)
}

// Mark is the instructor override for a member's status.
// POST /api/v1/classes/:id/mark-attendance
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	att, err := h.attSvc.Mark(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 40001, "class not found")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20004, "user not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, att)
}

// ClassSummary returns per-status counts and every record of a class.
// GET /api/v1/classes/:id/attendance
func (h *AttendanceHandler) ClassSummary(c *gin.Context) {
	summary, err := h.attSvc.ClassSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			response.NotFound(c, 40001, "class not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

// MyAttendance returns the caller's latest record for the class.
// GET /api/v1/classes/:id/my-attendance
func (h *AttendanceHandler) MyAttendance(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	att, err := h.attSvc.MyAttendance(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			response.NotFound(c, 40001, "class not found")
		case errors.Is(err, service.ErrAttendanceNotFound):
			response.NotFound(c, 40003, "attendance record not found")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, att)
}

// UserHistory returns every attendance record of one user.
// GET /api/v1/classes/user/:userId/attendance
func (h *AttendanceHandler) UserHistory(c *gin.Context) {
	records, err := h.attSvc.UserHistory(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, records)
}
