package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementService manages society-wide notices.
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest, authorID string) (*dto.AnnouncementResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error)
	List(ctx context.Context, req *dto.PaginationRequest) ([]dto.AnnouncementResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService creates the AnnouncementService.
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest, authorID string) (*dto.AnnouncementResponse, error) {
	a := &model.Announcement{
		Title:   req.Title,
		Content: req.Content,
		Pinned:  req.Pinned,
	}
	if authorID != "" {
		a.AuthorID = &authorID
	}

	if err := s.repo.Announcement.Create(ctx, a); err != nil {
		s.logger.Error("create announcement failed", zap.Error(err))
		return nil, err
	}

	return toAnnouncementResponse(a), nil
}

func (s *announcementService) GetByID(ctx context.Context, id string) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return toAnnouncementResponse(a), nil
}

func (s *announcementService) List(ctx context.Context, req *dto.PaginationRequest) ([]dto.AnnouncementResponse, int64, error) {
	items, total, err := s.repo.Announcement.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list announcements failed", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AnnouncementResponse, 0, len(items))
	for i := range items {
		result = append(result, *toAnnouncementResponse(&items[i]))
	}
	return result, total, nil
}

func (s *announcementService) Update(ctx context.Context, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	a, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.Pinned != nil {
		a.Pinned = *req.Pinned
	}

	if err := s.repo.Announcement.Update(ctx, a); err != nil {
		s.logger.Error("update announcement failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toAnnouncementResponse(a), nil
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Announcement.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		return err
	}
	return s.repo.Announcement.Delete(ctx, id)
}

func toAnnouncementResponse(a *model.Announcement) *dto.AnnouncementResponse {
	resp := &dto.AnnouncementResponse{
		ID:        a.AnnouncementID,
		Title:     a.Title,
		Content:   a.Content,
		Pinned:    a.Pinned,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.AuthorID != nil {
		resp.AuthorID = *a.AuthorID
	}
	if a.Author != nil {
		resp.AuthorName = a.Author.Name
	}
	return resp
}
