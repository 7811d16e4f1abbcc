package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
)

// AnnouncementRepository is the announcement data-access interface.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	List(ctx context.Context, offset, limit int) ([]model.Announcement, int64, error)
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id string) error
}

type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo creates the GORM-backed AnnouncementRepository.
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("announcement_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) List(ctx context.Context, offset, limit int) ([]model.Announcement, int64, error) {
	var items []model.Announcement
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Announcement{})

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// pinned first, then newest
	if err := db.Preload("Author").
		Offset(offset).Limit(limit).
		Order("pinned DESC, created_at DESC").
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *announcementRepo) Update(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		Delete(&model.Announcement{}).Error
}
