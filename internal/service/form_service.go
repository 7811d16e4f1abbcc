package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
)

// ── Form module errors ──

var (
	ErrFormNotFound   = errors.New("form not found")
	ErrFormSlugExists = errors.New("form slug already exists")
)

// FormService manages form schemas and raw submissions.
type FormService interface {
	Create(ctx context.Context, req *dto.CreateFormRequest) (*dto.FormResponse, error)
	GetByID(ctx context.Context, id string) (*dto.FormResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.FormResponse, error)
	List(ctx context.Context) ([]dto.FormResponse, error)
	// Delete removes the form and all its submissions in one transaction.
	Delete(ctx context.Context, id string) error

	Submit(ctx context.Context, formID string, req *dto.SubmitFormRequest) (*dto.SubmissionResponse, error)
	GetSubmission(ctx context.Context, id string) (*dto.SubmissionResponse, error)
	ListSubmissions(ctx context.Context, formID string, req *dto.SubmissionListRequest) ([]dto.SubmissionResponse, int64, error)
}

type formService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFormService creates the FormService.
func NewFormService(repo *repository.Repository, logger *zap.Logger) FormService {
	return &formService{repo: repo, logger: logger}
}

func (s *formService) Create(ctx context.Context, req *dto.CreateFormRequest) (*dto.FormResponse, error) {
	if _, err := s.repo.Form.GetBySlug(ctx, req.Slug); err == nil {
		return nil, ErrFormSlugExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	form := &model.Form{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Schema:      datatypes.JSON(req.Schema),
	}
	if err := s.repo.Form.Create(ctx, form); err != nil {
		s.logger.Error("create form failed", zap.String("slug", req.Slug), zap.Error(err))
		return nil, err
	}

	return toFormResponse(form), nil
}

func (s *formService) GetByID(ctx context.Context, id string) (*dto.FormResponse, error) {
	form, err := s.repo.Form.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return toFormResponse(form), nil
}

func (s *formService) GetBySlug(ctx context.Context, slug string) (*dto.FormResponse, error) {
	form, err := s.repo.Form.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return toFormResponse(form), nil
}

func (s *formService) List(ctx context.Context) ([]dto.FormResponse, error) {
	forms, err := s.repo.Form.List(ctx)
	if err != nil {
		s.logger.Error("list forms failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FormResponse, 0, len(forms))
	for i := range forms {
		result = append(result, *toFormResponse(&forms[i]))
	}
	return result, nil
}

func (s *formService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Form.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFormNotFound
		}
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Form.DeleteSubmissionsByForm(ctx, id); err != nil {
		tx.Rollback()
		s.logger.Error("delete submissions failed", zap.String("form_id", id), zap.Error(err))
		return err
	}
	if err := txRepo.Form.Delete(ctx, id); err != nil {
		tx.Rollback()
		s.logger.Error("delete form failed", zap.String("form_id", id), zap.Error(err))
		return err
	}

	return tx.Commit().Error
}

func (s *formService) Submit(ctx context.Context, formID string, req *dto.SubmitFormRequest) (*dto.SubmissionResponse, error) {
	if _, err := s.repo.Form.GetByID(ctx, formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	sub := &model.FormSubmission{
		FormID: formID,
		Data:   datatypes.JSON(req.Data),
		Status: model.SubmissionPending,
	}
	if err := s.repo.Form.CreateSubmission(ctx, sub); err != nil {
		s.logger.Error("create submission failed", zap.String("form_id", formID), zap.Error(err))
		return nil, err
	}

	return toSubmissionResponse(sub), nil
}

func (s *formService) GetSubmission(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	sub, err := s.repo.Form.GetSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return toSubmissionResponse(sub), nil
}

func (s *formService) ListSubmissions(ctx context.Context, formID string, req *dto.SubmissionListRequest) ([]dto.SubmissionResponse, int64, error) {
	if formID != "" {
		if _, err := s.repo.Form.GetByID(ctx, formID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, ErrFormNotFound
			}
			return nil, 0, err
		}
	}

	subs, total, err := s.repo.Form.ListSubmissions(ctx, formID, req.Status, req.GetOffset(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.SubmissionResponse, 0, len(subs))
	for i := range subs {
		result = append(result, *toSubmissionResponse(&subs[i]))
	}
	return result, total, nil
}

// ── helpers ──

func toFormResponse(form *model.Form) *dto.FormResponse {
	return &dto.FormResponse{
		ID:          form.FormID,
		Title:       form.Title,
		Slug:        form.Slug,
		Description: form.Description,
		Schema:      json.RawMessage(form.Schema),
	}
}

func toSubmissionResponse(sub *model.FormSubmission) *dto.SubmissionResponse {
	resp := &dto.SubmissionResponse{
		ID:        sub.SubmissionID,
		FormID:    sub.FormID,
		Data:      json.RawMessage(sub.Data),
		Status:    sub.Status,
		CreatedAt: sub.CreatedAt.Format(time.RFC3339),
	}
	if sub.UserID != nil {
		resp.UserID = *sub.UserID
	}
	return resp
}
