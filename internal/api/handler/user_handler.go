package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// UserHandler serves the user management endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List pages through users with optional filters.
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	var req dto.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, req.GetPage(), req.GetPageSize())
}

// Get returns one user.
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 20004, "user not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// Update partially updates a user.
// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20004, "user not found")
		case errors.Is(err, service.ErrEmailExists):
			response.Conflict(c, 20002, "email already registered")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// Delete removes a user. Self-deletion is rejected.
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	err := h.userSvc.Delete(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20004, "user not found")
		case errors.Is(err, service.ErrUserSelfDelete):
			response.BadRequest(c, 20006, "cannot delete your own account")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// AssignRole changes a user's role. Self-assignment is rejected.
// PUT /api/v1/users/:id/role
func (h *UserHandler) AssignRole(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	err := h.userSvc.AssignRole(c.Request.Context(), c.Param("id"), callerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20004, "user not found")
		case errors.Is(err, service.ErrUserSelfRoleChange):
			response.BadRequest(c, 20007, "cannot change your own role")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
