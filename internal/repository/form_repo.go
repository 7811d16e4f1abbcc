package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
)

// FormRepository is the form and submission data-access interface.
type FormRepository interface {
	Create(ctx context.Context, form *model.Form) error
	GetByID(ctx context.Context, id string) (*model.Form, error)
	GetBySlug(ctx context.Context, slug string) (*model.Form, error)
	List(ctx context.Context) ([]model.Form, error)
	Update(ctx context.Context, form *model.Form) error
	Delete(ctx context.Context, id string) error

	CreateSubmission(ctx context.Context, sub *model.FormSubmission) error
	GetSubmission(ctx context.Context, id string) (*model.FormSubmission, error)
	ListSubmissions(ctx context.Context, formID, status string, offset, limit int) ([]model.FormSubmission, int64, error)
	UpdateSubmission(ctx context.Context, sub *model.FormSubmission) error
	DeleteSubmissionsByForm(ctx context.Context, formID string) error
}

type formRepo struct {
	db *gorm.DB
}

// NewFormRepo creates the GORM-backed FormRepository.
func NewFormRepo(db *gorm.DB) FormRepository {
	return &formRepo{db: db}
}

func (r *formRepo) Create(ctx context.Context, form *model.Form) error {
	return r.db.WithContext(ctx).Create(form).Error
}

func (r *formRepo) GetByID(ctx context.Context, id string) (*model.Form, error) {
	var form model.Form
	err := r.db.WithContext(ctx).
		Where("form_id = ?", id).
		First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepo) GetBySlug(ctx context.Context, slug string) (*model.Form, error) {
	var form model.Form
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepo) List(ctx context.Context) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&forms).Error
	return forms, err
}

func (r *formRepo) Update(ctx context.Context, form *model.Form) error {
	return r.db.WithContext(ctx).Save(form).Error
}

func (r *formRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("form_id = ?", id).
		Delete(&model.Form{}).Error
}

func (r *formRepo) CreateSubmission(ctx context.Context, sub *model.FormSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *formRepo) GetSubmission(ctx context.Context, id string) (*model.FormSubmission, error) {
	var sub model.FormSubmission
	err := r.db.WithContext(ctx).
		Preload("Form").
		Where("submission_id = ?", id).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *formRepo) ListSubmissions(ctx context.Context, formID, status string, offset, limit int) ([]model.FormSubmission, int64, error) {
	var subs []model.FormSubmission
	var total int64

	db := r.db.WithContext(ctx).Model(&model.FormSubmission{})
	if formID != "" {
		db = db.Where("form_id = ?", formID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

func (r *formRepo) UpdateSubmission(ctx context.Context, sub *model.FormSubmission) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *formRepo) DeleteSubmissionsByForm(ctx context.Context, formID string) error {
	return r.db.WithContext(ctx).
		Where("form_id = ?", formID).
		Delete(&model.FormSubmission{}).Error
}
