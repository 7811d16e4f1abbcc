package dto

// CreateFieldRequest creates a field under a team.
type CreateFieldRequest struct {
	Name   string `json:"name"    binding:"required,min=2,max=100"`
	TeamID string `json:"team_id" binding:"required,uuid"`
}

// UpdateFieldRequest partially updates a field.
type UpdateFieldRequest struct {
	Name   *string `json:"name"    binding:"omitempty,min=2,max=100"`
	TeamID *string `json:"team_id" binding:"omitempty,uuid"`
}

// AddFieldMemberRequest assigns a user to a field.
type AddFieldMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// FieldResponse is the field view.
type FieldResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name,omitempty"`
}

// FieldMemberResponse is one field membership row.
type FieldMemberResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
