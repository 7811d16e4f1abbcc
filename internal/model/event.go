package model

import "time"

// Event is a scheduled society event.
type Event struct {
	EventID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string    `gorm:"type:text"                                      json:"description,omitempty"`
	Location    string    `gorm:"type:varchar(200)"                              json:"location,omitempty"`
	StartsAt    time.Time `gorm:"not null"                                       json:"starts_at"`
	EndsAt      time.Time `gorm:"not null"                                       json:"ends_at"`
	CreatedBy   *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
	BaseModel
}

// TableName pins the table name.
func (Event) TableName() string { return "events" }
