package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all data-access interfaces.
type Repository struct {
	db *gorm.DB

	User         UserRepository
	Team         TeamRepository
	Field        FieldRepository
	Class        ClassRepository
	Attendance   AttendanceRepository
	Form         FormRepository
	Announcement AnnouncementRepository
	Event        EventRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepo(db),
		Team:         NewTeamRepo(db),
		Field:        NewFieldRepo(db),
		Class:        NewClassRepo(db),
		Attendance:   NewAttendanceRepo(db),
		Form:         NewFormRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Event:        NewEventRepo(db),
	}
}

// BeginTx starts a database transaction.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
