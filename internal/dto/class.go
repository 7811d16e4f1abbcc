package dto

import "time"

// CreateClassRequest schedules a class session.
type CreateClassRequest struct {
	Title           string    `json:"title"            binding:"required,min=2,max=200"`
	Description     string    `json:"description"      binding:"omitempty,max=2000"`
	FieldID         string    `json:"field_id"         binding:"omitempty,uuid"`
	ScheduledAt     time.Time `json:"scheduled_at"     binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,min=1,max=600"`
}

// UpdateClassRequest partially updates a class.
type UpdateClassRequest struct {
	Title           *string    `json:"title"            binding:"omitempty,min=2,max=200"`
	Description     *string    `json:"description"      binding:"omitempty,max=2000"`
	FieldID         *string    `json:"field_id"         binding:"omitempty,uuid"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=1,max=600"`
}

// ClassListRequest filters the class listing.
type ClassListRequest struct {
	PaginationRequest
	FieldID string `form:"field_id" binding:"omitempty,uuid"`
}

// ClassResponse is the class view.
type ClassResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	FieldID         string    `json:"field_id,omitempty"`
	FieldName       string    `json:"field_name,omitempty"`
	InstructorID    string    `json:"instructor_id,omitempty"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
}
