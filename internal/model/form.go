package model

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// Submission statuses.
const (
	SubmissionPending  = "PENDING"
	SubmissionVerified = "VERIFIED"
	SubmissionApproved = "APPROVED"
)

// Form defines a schema of ordered field descriptors rendered by the SPA.
type Form struct {
	FormID      string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"form_id"`
	Title       string         `gorm:"type:varchar(200);not null"                     json:"title"`
	Slug        string         `gorm:"type:varchar(100);not null;uniqueIndex"         json:"slug"`
	Description string         `gorm:"type:text"                                      json:"description,omitempty"`
	Schema      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"               json:"schema"`
	BaseModel
}

// TableName pins the table name.
func (Form) TableName() string { return "forms" }

// FormSubmission is a filled-in instance of a form awaiting review.
type FormSubmission struct {
	SubmissionID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"submission_id"`
	FormID       string         `gorm:"type:uuid;not null;index"                       json:"form_id"`
	Data         datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"               json:"data"`
	Status       string         `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`
	UserID       *string        `gorm:"type:uuid"                                      json:"user_id,omitempty"`
	BaseModel

	Form *Form `gorm:"foreignKey:FormID;references:FormID" json:"form,omitempty"`
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName pins the table name.
func (FormSubmission) TableName() string { return "form_submissions" }

// SubmissionPayload is the structured answer data the approval pipeline
// reads out of a submission's freeform JSON.
type SubmissionPayload struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	RegNumber          string   `json:"reg_number"`
	Role               string   `json:"role"` // optional lead-application hint
	TechnicalFields    []string `json:"technical_fields"`
	NonTechnicalFields []string `json:"non_technical_fields"`
	PreferredField     string   `json:"preferred_field"`
}

// Payload decodes the submission data. Unknown keys are ignored.
func (s *FormSubmission) Payload() (*SubmissionPayload, error) {
	var p SubmissionPayload
	if err := json.Unmarshal(s.Data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// AllFieldNames lists every field name selected in the payload.
func (p *SubmissionPayload) AllFieldNames() []string {
	names := make([]string, 0, len(p.TechnicalFields)+len(p.NonTechnicalFields))
	names = append(names, p.TechnicalFields...)
	names = append(names, p.NonTechnicalFields...)
	return names
}

// IsLeadApplication reports whether the payload represents a team-lead
// application, from either the role hint or the form slug.
func (p *SubmissionPayload) IsLeadApplication(formSlug string) bool {
	if strings.EqualFold(p.Role, "lead") || strings.EqualFold(p.Role, RoleTeamLead) {
		return true
	}
	return strings.Contains(strings.ToLower(formSlug), "lead")
}
