package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// TeamHandler serves the team endpoints.
type TeamHandler struct {
	teamSvc service.TeamService
}

// NewTeamHandler creates the TeamHandler.
func NewTeamHandler(teamSvc service.TeamService) *TeamHandler {
	return &TeamHandler{teamSvc: teamSvc}
}

// Create adds a team.
// POST /api/v1/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	team, err := h.teamSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrTeamNameExists) {
			response.Conflict(c, 30002, "team name already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, team)
}

// List returns all teams.
// GET /api/v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, teams)
}

// Get returns one team.
// GET /api/v1/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	team, err := h.teamSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 30001, "team not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, team)
}

// Update modifies a team.
// PUT /api/v1/teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	team, err := h.teamSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 30001, "team not found")
		case errors.Is(err, service.ErrTeamNameExists):
			response.Conflict(c, 30002, "team name already exists")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, team)
}

// Delete removes a team.
// DELETE /api/v1/teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.teamSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 30001, "team not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// AddMember enrolls a user into the team.
// POST /api/v1/teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	err := h.teamSvc.AddMember(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 30001, "team not found")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20004, "user not found")
		case errors.Is(err, service.ErrAlreadyTeamMember):
			response.Conflict(c, 30003, "user is already a team member")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, nil)
}

// RemoveMember withdraws a user from the team.
// DELETE /api/v1/teams/:id/members/:userId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	err := h.teamSvc.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			response.NotFound(c, 30001, "team not found")
		case errors.Is(err, service.ErrNotTeamMember):
			response.NotFound(c, 30004, "user is not a team member")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// ListMembers returns the team roster.
// GET /api/v1/teams/:id/members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teamSvc.ListMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			response.NotFound(c, 30001, "team not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, members)
}
