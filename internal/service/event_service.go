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

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEventTimeInvalid = errors.New("event end time must be after start time")
)

// EventService manages society events.
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, creatorID string) (*dto.EventResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	List(ctx context.Context, req *dto.PaginationRequest) ([]dto.EventResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService creates the EventService.
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest, creatorID string) (*dto.EventResponse, error) {
	if !req.EndsAt.After(req.StartsAt) {
		return nil, ErrEventTimeInvalid
	}

	e := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if creatorID != "" {
		e.CreatedBy = &creatorID
	}

	if err := s.repo.Event.Create(ctx, e); err != nil {
		s.logger.Error("create event failed", zap.Error(err))
		return nil, err
	}

	return toEventResponse(e), nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	e, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return toEventResponse(e), nil
}

func (s *eventService) List(ctx context.Context, req *dto.PaginationRequest) ([]dto.EventResponse, int64, error) {
	events, total, err := s.repo.Event.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list events failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *toEventResponse(&events[i]))
	}
	return result, total, nil
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	e, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.StartsAt != nil {
		e.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		e.EndsAt = *req.EndsAt
	}
	if !e.EndsAt.After(e.StartsAt) {
		return nil, ErrEventTimeInvalid
	}

	if err := s.repo.Event.Update(ctx, e); err != nil {
		s.logger.Error("update event failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEventResponse(e), nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Event.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return s.repo.Event.Delete(ctx, id)
}

func toEventResponse(e *model.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.EventID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
	}
}
