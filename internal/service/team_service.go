package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
)

// ── Team module errors ──

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameExists    = errors.New("team name already exists")
	ErrAlreadyTeamMember = errors.New("user is already a team member")
	ErrNotTeamMember     = errors.New("user is not a team member")
)

// TeamService is the team administration interface.
type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeamResponse, error)
	List(ctx context.Context) ([]dto.TeamResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, teamID string, req *dto.AddTeamMemberRequest) error
	RemoveMember(ctx context.Context, teamID, userID string) error
	ListMembers(ctx context.Context, teamID string) ([]dto.TeamMemberResponse, error)
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService creates the TeamService.
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Team.Create(ctx, team); err != nil {
		s.logger.Error("create team failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toTeamResponse(team), nil
}

func (s *teamService) GetByID(ctx context.Context, id string) (*dto.TeamResponse, error) {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

func (s *teamService) List(ctx context.Context) ([]dto.TeamResponse, error) {
	teams, err := s.repo.Team.List(ctx)
	if err != nil {
		s.logger.Error("list teams failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, *toTeamResponse(&teams[i]))
	}
	return result, nil
}

func (s *teamService) Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.getTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := s.repo.Team.Update(ctx, team); err != nil {
		s.logger.Error("update team failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toTeamResponse(team), nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	if _, err := s.getTeam(ctx, id); err != nil {
		return err
	}
	return s.repo.Team.Delete(ctx, id)
}

func (s *teamService) AddMember(ctx context.Context, teamID string, req *dto.AddTeamMemberRequest) error {
	if _, err := s.getTeam(ctx, teamID); err != nil {
		return err
	}

	if _, err := s.repo.User.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if _, err := s.repo.Team.GetMember(ctx, teamID, req.UserID); err == nil {
		return ErrAlreadyTeamMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	role := req.Role
	if role == "" {
		role = model.RoleTeamMember
	}

	return s.repo.Team.AddMember(ctx, &model.TeamMember{
		TeamID: teamID,
		UserID: req.UserID,
		Role:   role,
	})
}

func (s *teamService) RemoveMember(ctx context.Context, teamID, userID string) error {
	if _, err := s.repo.Team.GetMember(ctx, teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotTeamMember
		}
		return err
	}
	return s.repo.Team.RemoveMember(ctx, teamID, userID)
}

func (s *teamService) ListMembers(ctx context.Context, teamID string) ([]dto.TeamMemberResponse, error) {
	if _, err := s.getTeam(ctx, teamID); err != nil {
		return nil, err
	}

	members, err := s.repo.Team.ListMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		item := dto.TeamMemberResponse{UserID: m.UserID, Role: m.Role}
		if m.User != nil {
			item.Name = m.User.Name
			item.Email = m.User.Email
		}
		result = append(result, item)
	}
	return result, nil
}

// ── helpers ──

func (s *teamService) getTeam(ctx context.Context, id string) (*model.Team, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func toTeamResponse(team *model.Team) *dto.TeamResponse {
	resp := &dto.TeamResponse{
		ID:          team.TeamID,
		Name:        team.Name,
		Description: team.Description,
	}
	for _, f := range team.Fields {
		resp.Fields = append(resp.Fields, dto.FieldResponse{
			ID:     f.FieldID,
			Name:   f.Name,
			TeamID: f.TeamID,
		})
	}
	return resp
}
