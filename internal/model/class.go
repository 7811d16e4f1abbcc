package model

import "time"

// DefaultClassDuration is assumed when a class has no duration set.
const DefaultClassDuration = 60

// Class is a scheduled session owned by a field.
type Class struct {
	ClassID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	Title           string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Description     string    `gorm:"type:text"                                      json:"description,omitempty"`
	FieldID         *string   `gorm:"type:uuid"                                      json:"field_id,omitempty"`
	InstructorID    *string   `gorm:"type:uuid"                                      json:"instructor_id,omitempty"`
	ScheduledAt     time.Time `gorm:"not null"                                       json:"scheduled_at"`
	DurationMinutes int       `gorm:"not null;default:60"                            json:"duration_minutes"`
	BaseModel

	Field      *Field `gorm:"foreignKey:FieldID;references:FieldID"     json:"field,omitempty"`
	Instructor *User  `gorm:"foreignKey:InstructorID;references:UserID" json:"instructor,omitempty"`
}

// TableName pins the table name.
func (Class) TableName() string { return "classes" }

// EffectiveDuration returns the class duration, defaulting when unset.
func (c *Class) EffectiveDuration() int {
	if c.DurationMinutes <= 0 {
		return DefaultClassDuration
	}
	return c.DurationMinutes
}
