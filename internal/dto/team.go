package dto

// CreateTeamRequest creates a team.
type CreateTeamRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// UpdateTeamRequest partially updates a team.
type UpdateTeamRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// AddTeamMemberRequest adds a user to a team.
type AddTeamMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role"    binding:"omitempty,oneof=GENERAL_MEMBER TEAM_MEMBER CO_LEAD TEAM_LEAD"`
}

// TeamResponse is the team view.
type TeamResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Fields      []FieldResponse `json:"fields,omitempty"`
}

// TeamMemberResponse is one membership row.
type TeamMemberResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
