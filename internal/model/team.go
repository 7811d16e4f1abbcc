package model

// Team is a top-level grouping of fields and members.
type Team struct {
	TeamID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Description string `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel

	Fields  []Field      `gorm:"foreignKey:TeamID;references:TeamID" json:"fields,omitempty"`
	Members []TeamMember `gorm:"foreignKey:TeamID;references:TeamID" json:"members,omitempty"`
}

// TableName pins the table name.
func (Team) TableName() string { return "teams" }

// TeamMember is the join record carrying a user's role within a team.
type TeamMember struct {
	TeamMemberID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_member_id"`
	TeamID       string `gorm:"type:uuid;not null;index:idx_team_user,unique"  json:"team_id"`
	UserID       string `gorm:"type:uuid;not null;index:idx_team_user,unique"  json:"user_id"`
	Role         string `gorm:"type:varchar(20);not null;default:'TEAM_MEMBER'" json:"role"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName pins the table name.
func (TeamMember) TableName() string { return "team_members" }
