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

// ClassService is the class scheduling interface.
type ClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest, instructorID string) (*dto.ClassResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ClassResponse, error)
	List(ctx context.Context, req *dto.ClassListRequest) ([]dto.ClassResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id string) error
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService creates the ClassService.
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest, instructorID string) (*dto.ClassResponse, error) {
	class := &model.Class{
		Title:           req.Title,
		Description:     req.Description,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
	}
	if class.DurationMinutes <= 0 {
		class.DurationMinutes = model.DefaultClassDuration
	}
	if req.FieldID != "" {
		if _, err := s.repo.Field.GetByID(ctx, req.FieldID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFieldNotFound
			}
			return nil, err
		}
		class.FieldID = &req.FieldID
	}
	if instructorID != "" {
		class.InstructorID = &instructorID
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("create class failed", zap.String("title", req.Title), zap.Error(err))
		return nil, err
	}

	return toClassResponse(class), nil
}

func (s *classService) GetByID(ctx context.Context, id string) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return toClassResponse(class), nil
}

func (s *classService) List(ctx context.Context, req *dto.ClassListRequest) ([]dto.ClassResponse, int64, error) {
	classes, total, err := s.repo.Class.List(ctx, req.FieldID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list classes failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		result = append(result, *toClassResponse(&classes[i]))
	}
	return result, total, nil
}

func (s *classService) Update(ctx context.Context, id string, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		class.Title = *req.Title
	}
	if req.Description != nil {
		class.Description = *req.Description
	}
	if req.FieldID != nil {
		if _, err := s.repo.Field.GetByID(ctx, *req.FieldID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFieldNotFound
			}
			return nil, err
		}
		class.FieldID = req.FieldID
	}
	if req.ScheduledAt != nil {
		class.ScheduledAt = *req.ScheduledAt
	}
	if req.DurationMinutes != nil {
		class.DurationMinutes = *req.DurationMinutes
	}

	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.logger.Error("update class failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toClassResponse(class), nil
}

func (s *classService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Class.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		return err
	}
	return s.repo.Class.Delete(ctx, id)
}

func toClassResponse(class *model.Class) *dto.ClassResponse {
	resp := &dto.ClassResponse{
		ID:              class.ClassID,
		Title:           class.Title,
		Description:     class.Description,
		ScheduledAt:     class.ScheduledAt,
		DurationMinutes: class.DurationMinutes,
	}
	if class.FieldID != nil {
		resp.FieldID = *class.FieldID
	}
	if class.InstructorID != nil {
		resp.InstructorID = *class.InstructorID
	}
	if class.Field != nil {
		resp.FieldName = class.Field.Name
	}
	return resp
}
