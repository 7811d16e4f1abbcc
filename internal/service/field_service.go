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

// FieldService is the field administration interface.
type FieldService interface {
	Create(ctx context.Context, req *dto.CreateFieldRequest) (*dto.FieldResponse, error)
	GetByID(ctx context.Context, id string) (*dto.FieldResponse, error)
	List(ctx context.Context, teamID string) ([]dto.FieldResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateFieldRequest) (*dto.FieldResponse, error)
	Delete(ctx context.Context, id string) error

	// AddMember runs the same idempotent assignment the approval
	// pipeline uses, including the parent-team membership side effect.
	AddMember(ctx context.Context, fieldID string, req *dto.AddFieldMemberRequest) error
	ListMembers(ctx context.Context, fieldID string) ([]dto.FieldMemberResponse, error)
}

type fieldService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFieldService creates the FieldService.
func NewFieldService(repo *repository.Repository, logger *zap.Logger) FieldService {
	return &fieldService{repo: repo, logger: logger}
}

func (s *fieldService) Create(ctx context.Context, req *dto.CreateFieldRequest) (*dto.FieldResponse, error) {
	if _, err := s.repo.Team.GetByID(ctx, req.TeamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	field := &model.Field{
		Name:   req.Name,
		TeamID: req.TeamID,
	}
	if err := s.repo.Field.Create(ctx, field); err != nil {
		s.logger.Error("create field failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	return toFieldResponse(field), nil
}

func (s *fieldService) GetByID(ctx context.Context, id string) (*dto.FieldResponse, error) {
	field, err := s.getField(ctx, id)
	if err != nil {
		return nil, err
	}
	return toFieldResponse(field), nil
}

func (s *fieldService) List(ctx context.Context, teamID string) ([]dto.FieldResponse, error) {
	fields, err := s.repo.Field.List(ctx, teamID)
	if err != nil {
		s.logger.Error("list fields failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FieldResponse, 0, len(fields))
	for i := range fields {
		result = append(result, *toFieldResponse(&fields[i]))
	}
	return result, nil
}

func (s *fieldService) Update(ctx context.Context, id string, req *dto.UpdateFieldRequest) (*dto.FieldResponse, error) {
	field, err := s.getField(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.TeamID != nil {
		if _, err := s.repo.Team.GetByID(ctx, *req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, err
		}
		field.TeamID = *req.TeamID
	}

	if err := s.repo.Field.Update(ctx, field); err != nil {
		s.logger.Error("update field failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toFieldResponse(field), nil
}

func (s *fieldService) Delete(ctx context.Context, id string) error {
	if _, err := s.getField(ctx, id); err != nil {
		return err
	}
	return s.repo.Field.Delete(ctx, id)
}

func (s *fieldService) AddMember(ctx context.Context, fieldID string, req *dto.AddFieldMemberRequest) error {
	field, err := s.getField(ctx, fieldID)
	if err != nil {
		return err
	}

	if _, err := s.repo.User.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return assignFieldMembership(ctx, s.repo, req.UserID, field)
}

func (s *fieldService) ListMembers(ctx context.Context, fieldID string) ([]dto.FieldMemberResponse, error) {
	if _, err := s.getField(ctx, fieldID); err != nil {
		return nil, err
	}

	members, err := s.repo.Field.ListMembers(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.FieldMemberResponse, 0, len(members))
	for _, m := range members {
		item := dto.FieldMemberResponse{UserID: m.UserID}
		if m.User != nil {
			item.Name = m.User.Name
			item.Email = m.User.Email
		}
		result = append(result, item)
	}
	return result, nil
}

// ── helpers ──

func (s *fieldService) getField(ctx context.Context, id string) (*model.Field, error) {
	field, err := s.repo.Field.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}
	return field, nil
}

func toFieldResponse(field *model.Field) *dto.FieldResponse {
	resp := &dto.FieldResponse{
		ID:     field.FieldID,
		Name:   field.Name,
		TeamID: field.TeamID,
	}
	if field.Team != nil {
		resp.TeamName = field.Team.Name
	}
	return resp
}
