package dto

import "encoding/json"

// CreateFormRequest defines a new form schema.
type CreateFormRequest struct {
	Title       string          `json:"title"       binding:"required,min=2,max=200"`
	Slug        string          `json:"slug"        binding:"required,min=2,max=100"`
	Description string          `json:"description" binding:"omitempty,max=2000"`
	Schema      json.RawMessage `json:"schema"      binding:"required"`
}

// SubmitFormRequest carries the freeform structured answers.
type SubmitFormRequest struct {
	Data json.RawMessage `json:"data" binding:"required"`
}

// ApproveSubmissionRequest is the direct single-field approval.
type ApproveSubmissionRequest struct {
	FieldID string `json:"field_id" binding:"required,uuid"`
}

// UpdateSubmissionStatusRequest is the raw status override.
type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING VERIFIED APPROVED"`
}

// SubmissionListRequest filters the submission listing.
type SubmissionListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=PENDING VERIFIED APPROVED"`
}

// FormResponse is the form view.
type FormResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	Schema      json.RawMessage `json:"schema"`
}

// SubmissionResponse is the submission view.
type SubmissionResponse struct {
	ID        string          `json:"id"`
	FormID    string          `json:"form_id"`
	Data      json.RawMessage `json:"data"`
	Status    string          `json:"status"`
	UserID    string          `json:"user_id,omitempty"`
	CreatedAt string          `json:"created_at"`
}
