package dto

// UserListRequest filters the user listing.
type UserListRequest struct {
	PaginationRequest
	Status  string `form:"status"  binding:"omitempty,oneof=APPLICANT VERIFIED MEMBER AUTHENTICATED GUEST"`
	Role    string `form:"role"    binding:"omitempty,oneof=GENERAL_MEMBER TEAM_MEMBER CO_LEAD TEAM_LEAD PRESIDENT FACULTY_HEAD"`
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
}

// UpdateUserRequest partially updates a user; nil fields are untouched.
type UpdateUserRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=100"`
	Email     *string `json:"email"      binding:"omitempty,email"`
	RegNumber *string `json:"reg_number" binding:"omitempty,max=50"`
}

// AssignRoleRequest changes a user's role.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=GENERAL_MEMBER TEAM_MEMBER CO_LEAD TEAM_LEAD PRESIDENT FACULTY_HEAD"`
}
