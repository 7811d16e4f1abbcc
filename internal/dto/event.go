package dto

import "time"

// CreateEventRequest schedules an event.
type CreateEventRequest struct {
	Title       string    `json:"title"       binding:"required,min=2,max=200"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	Location    string    `json:"location"    binding:"omitempty,max=200"`
	StartsAt    time.Time `json:"starts_at"   binding:"required"`
	EndsAt      time.Time `json:"ends_at"     binding:"required"`
}

// UpdateEventRequest partially updates an event.
type UpdateEventRequest struct {
	Title       *string    `json:"title"       binding:"omitempty,min=2,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Location    *string    `json:"location"    binding:"omitempty,max=200"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// EventResponse is the event view.
type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}
