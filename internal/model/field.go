package model

// Field is a department/track nested under exactly one team.
type Field struct {
	FieldID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"field_id"`
	Name    string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	TeamID  string `gorm:"type:uuid;not null"                             json:"team_id"`
	BaseModel

	Team    *Team         `gorm:"foreignKey:TeamID;references:TeamID"   json:"team,omitempty"`
	Members []FieldMember `gorm:"foreignKey:FieldID;references:FieldID" json:"members,omitempty"`
}

// TableName pins the table name.
func (Field) TableName() string { return "fields" }

// FieldMember is the join record for field membership.
type FieldMember struct {
	FieldMemberID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"field_member_id"`
	FieldID       string `gorm:"type:uuid;not null;index:idx_field_user,unique" json:"field_id"`
	UserID        string `gorm:"type:uuid;not null;index:idx_field_user,unique" json:"user_id"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName pins the table name.
func (FieldMember) TableName() string { return "field_members" }
