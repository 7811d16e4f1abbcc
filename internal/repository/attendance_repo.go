package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
)

// AttendanceRepository is the attendance data-access interface.
type AttendanceRepository interface {
	Create(ctx context.Context, att *model.Attendance) error
	Update(ctx context.Context, att *model.Attendance) error
	// GetOpenSession returns the single open (left_at IS NULL) record for
	// the pair, or gorm.ErrRecordNotFound.
	GetOpenSession(ctx context.Context, classID, userID string) (*model.Attendance, error)
	// GetLatest returns the most recent record for the pair regardless of
	// session state.
	GetLatest(ctx context.Context, classID, userID string) (*model.Attendance, error)
	ListByClass(ctx context.Context, classID string) ([]model.Attendance, error)
	ListByUser(ctx context.Context, userID string) ([]model.Attendance, error)
	CountByStatus(ctx context.Context, classID string) (map[string]int64, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepo) Update(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Save(att).Error
}

func (r *attendanceRepo) GetOpenSession(ctx context.Context, classID, userID string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND user_id = ? AND left_at IS NULL", classID, userID).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepo) GetLatest(ctx context.Context, classID, userID string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("class_id = ? AND user_id = ?", classID, userID).
		Order("joined_at DESC").
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepo) ListByClass(ctx context.Context, classID string) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("class_id = ?", classID).
		Order("joined_at ASC").
		Find(&atts).Error
	return atts, err
}

func (r *attendanceRepo) ListByUser(ctx context.Context, userID string) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Class").
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&atts).Error
	return atts, err
}

func (r *attendanceRepo) CountByStatus(ctx context.Context, classID string) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Select("status, COUNT(*) AS count").
		Where("class_id = ?", classID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
