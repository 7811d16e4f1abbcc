package model

// User statuses.
const (
	StatusApplicant     = "APPLICANT"
	StatusVerified      = "VERIFIED"
	StatusMember        = "MEMBER"
	StatusAuthenticated = "AUTHENTICATED"
	StatusGuest         = "GUEST"
)

// User roles, lowest to highest.
const (
	RoleGeneralMember = "GENERAL_MEMBER"
	RoleTeamMember    = "TEAM_MEMBER"
	RoleCoLead        = "CO_LEAD"
	RoleTeamLead      = "TEAM_LEAD"
	RolePresident     = "PRESIDENT"
	RoleFacultyHead   = "FACULTY_HEAD"
)

// roleRank orders roles for privilege comparisons.
var roleRank = map[string]int{
	RoleGeneralMember: 0,
	RoleTeamMember:    1,
	RoleCoLead:        2,
	RoleTeamLead:      3,
	RolePresident:     4,
	RoleFacultyHead:   5,
}

// RoleAtLeast reports whether role has at least the privilege of min.
func RoleAtLeast(role, min string) bool {
	return roleRank[role] >= roleRank[min]
}

// User maps to the users table.
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Status       string  `gorm:"type:varchar(20);not null;default:'GUEST'"      json:"status"`
	Role         string  `gorm:"type:varchar(20);not null;default:'GENERAL_MEMBER'" json:"role"`
	MembershipID *string `gorm:"type:varchar(10)"                               json:"membership_id,omitempty"`
	RegNumber    string  `gorm:"type:varchar(50)"                               json:"reg_number,omitempty"`
	SoftDeleteModel
}

// TableName pins the table name.
func (User) TableName() string { return "users" }
