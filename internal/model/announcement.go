package model

// Announcement is a society-wide notice.
type Announcement struct {
	AnnouncementID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	Title          string  `gorm:"type:varchar(200);not null"                     json:"title"`
	Content        string  `gorm:"type:text;not null"                             json:"content"`
	AuthorID       *string `gorm:"type:uuid"                                      json:"author_id,omitempty"`
	Pinned         bool    `gorm:"not null;default:false"                         json:"pinned"`
	BaseModel

	Author *User `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

// TableName pins the table name.
func (Announcement) TableName() string { return "announcements" }
