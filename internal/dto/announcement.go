package dto

// CreateAnnouncementRequest publishes an announcement.
type CreateAnnouncementRequest struct {
	Title   string `json:"title"   binding:"required,min=2,max=200"`
	Content string `json:"content" binding:"required"`
	Pinned  bool   `json:"pinned"`
}

// UpdateAnnouncementRequest partially updates an announcement.
type UpdateAnnouncementRequest struct {
	Title   *string `json:"title"   binding:"omitempty,min=2,max=200"`
	Content *string `json:"content"`
	Pinned  *bool   `json:"pinned"`
}

// AnnouncementResponse is the announcement view.
type AnnouncementResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   string `json:"author_id,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	Pinned     bool   `json:"pinned"`
	CreatedAt  string `json:"created_at"`
}
