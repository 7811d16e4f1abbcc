package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
)

// FieldRepository is the field data-access interface.
type FieldRepository interface {
	Create(ctx context.Context, field *model.Field) error
	GetByID(ctx context.Context, id string) (*model.Field, error)
	GetByName(ctx context.Context, name string) (*model.Field, error)
	List(ctx context.Context, teamID string) ([]model.Field, error)
	Update(ctx context.Context, field *model.Field) error
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, member *model.FieldMember) error
	GetMember(ctx context.Context, fieldID, userID string) (*model.FieldMember, error)
	ListMembers(ctx context.Context, fieldID string) ([]model.FieldMember, error)
}

type fieldRepo struct {
	db *gorm.DB
}

// NewFieldRepo creates the GORM-backed FieldRepository.
func NewFieldRepo(db *gorm.DB) FieldRepository {
	return &fieldRepo{db: db}
}

func (r *fieldRepo) Create(ctx context.Context, field *model.Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *fieldRepo) GetByID(ctx context.Context, id string) (*model.Field, error) {
	var field model.Field
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("field_id = ?", id).
		First(&field).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *fieldRepo) GetByName(ctx context.Context, name string) (*model.Field, error) {
	var field model.Field
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("name = ?", name).
		First(&field).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *fieldRepo) List(ctx context.Context, teamID string) ([]model.Field, error) {
	var fields []model.Field
	db := r.db.WithContext(ctx).Preload("Team")
	if teamID != "" {
		db = db.Where("team_id = ?", teamID)
	}
	err := db.Order("name ASC").Find(&fields).Error
	return fields, err
}

func (r *fieldRepo) Update(ctx context.Context, field *model.Field) error {
	return r.db.WithContext(ctx).Save(field).Error
}

func (r *fieldRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("field_id = ?", id).
		Delete(&model.Field{}).Error
}

func (r *fieldRepo) AddMember(ctx context.Context, member *model.FieldMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *fieldRepo) GetMember(ctx context.Context, fieldID, userID string) (*model.FieldMember, error) {
	var member model.FieldMember
	err := r.db.WithContext(ctx).
		Where("field_id = ? AND user_id = ?", fieldID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *fieldRepo) ListMembers(ctx context.Context, fieldID string) ([]model.FieldMember, error) {
	var members []model.FieldMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("field_id = ?", fieldID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}
