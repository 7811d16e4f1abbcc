package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
)

// ── Test helpers ──

func setupTestApprovalService() (ApprovalService, *mockRepos) {
	repo, mocks := newMockRepository()
	logger := zap.NewNop()
	membership := NewMembershipService(repo, logger)
	svc := NewApprovalService(repo, membership, logger)
	return svc, mocks
}

func seedOrgStructure(mocks *mockRepos) {
	mocks.team.teams["team-tech"] = &model.Team{TeamID: "team-tech", Name: "Technical"}
	mocks.team.teams["team-ops"] = &model.Team{TeamID: "team-ops", Name: "Operations"}
	mocks.field.fields["field-web"] = &model.Field{FieldID: "field-web", Name: "Web Development", TeamID: "team-tech"}
	mocks.field.fields["field-ml"] = &model.Field{FieldID: "field-ml", Name: "Machine Learning", TeamID: "team-tech"}
	mocks.field.fields["field-pr"] = &model.Field{FieldID: "field-pr", Name: "Public Relations", TeamID: "team-ops"}
}

func seedSubmission(mocks *mockRepos, id, formSlug, data string) *model.FormSubmission {
	form := &model.Form{FormID: "form-" + id, Slug: formSlug, Title: formSlug}
	mocks.form.forms[form.FormID] = form
	sub := &model.FormSubmission{
		SubmissionID: id,
		FormID:       form.FormID,
		Data:         datatypes.JSON([]byte(data)),
		Status:       model.SubmissionPending,
	}
	mocks.form.submissions[id] = sub
	return sub
}

// ── Verify, general path ──

func TestApprovalService_Verify_GeneralPath(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedOrgStructure(mocks)
	sub := seedSubmission(mocks, "sub-1", "membership-application", `{
		"name": "Ada Lovelace",
		"email": "ada@nexus.dev",
		"reg_number": "REG-042",
		"technical_fields": ["Web Development", "Machine Learning"],
		"non_technical_fields": ["Public Relations"]
	}`)

	if err := svc.Verify(context.Background(), "sub-1"); err != nil {
		t.Fatalf("Verify should succeed: %v", err)
	}

	user, err := mocks.user.GetByEmail(context.Background(), "ada@nexus.dev")
	if err != nil {
		t.Fatal("user should have been created from the submission")
	}
	if user.MembershipID == nil || *user.MembershipID != "001" {
		t.Error("membership ID 001 should be issued")
	}
	if user.Status != model.StatusMember {
		t.Errorf("status should be MEMBER, got %s", user.Status)
	}

	// Three fields joined.
	for _, fieldID := range []string{"field-web", "field-ml", "field-pr"} {
		if _, err := mocks.field.GetMember(context.Background(), fieldID, user.UserID); err != nil {
			t.Errorf("user should be a member of %s", fieldID)
		}
	}

	// Two distinct parent teams, one membership each.
	for _, teamID := range []string{"team-tech", "team-ops"} {
		if _, err := mocks.team.GetMember(context.Background(), teamID, user.UserID); err != nil {
			t.Errorf("field membership should imply membership of %s", teamID)
		}
	}
	if got := len(mocks.team.members); got != 2 {
		t.Errorf("expected 2 team memberships, got %d", got)
	}

	if sub.Status != model.SubmissionApproved {
		t.Errorf("submission should be APPROVED, got %s", sub.Status)
	}
	if sub.UserID == nil || *sub.UserID != user.UserID {
		t.Error("submission should be linked to the resolved user")
	}
}

func TestApprovalService_Verify_UnknownFieldSkipped(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedOrgStructure(mocks)
	seedSubmission(mocks, "sub-1", "membership-application", `{
		"email": "ada@nexus.dev",
		"technical_fields": ["Web Development", "Quantum Computing"]
	}`)

	if err := svc.Verify(context.Background(), "sub-1"); err != nil {
		t.Fatalf("an unknown field name must not abort the approval: %v", err)
	}

	user, _ := mocks.user.GetByEmail(context.Background(), "ada@nexus.dev")
	if _, err := mocks.field.GetMember(context.Background(), "field-web", user.UserID); err != nil {
		t.Error("the known field should still be assigned")
	}
	if got := len(mocks.field.members); got != 1 {
		t.Errorf("expected 1 field membership, got %d", got)
	}
}

func TestApprovalService_Verify_ExistingUserReused(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedOrgStructure(mocks)
	existing := &model.User{
		UserID: "user-9",
		Name:   "Ada Lovelace",
		Email:  "ada@nexus.dev",
		Status: model.StatusAuthenticated,
		Role:   model.RoleGeneralMember,
	}
	mocks.user.put(existing)
	seedSubmission(mocks, "sub-1", "membership-application", `{
		"email": "ada@nexus.dev",
		"technical_fields": ["Web Development"]
	}`)

	if err := svc.Verify(context.Background(), "sub-1"); err != nil {
		t.Fatalf("Verify should succeed: %v", err)
	}

	if existing.MembershipID == nil {
		t.Error("the existing account should receive the membership ID")
	}
	// No duplicate account under a generated ID.
	count := 0
	for key := range mocks.user.users {
		if key == "user-9" || key == "email:ada@nexus.dev" {
			count++
		}
	}
	if count != 2 || len(mocks.user.users) != 2 {
		t.Error("verification must reuse the account matched by email")
	}
}

func TestApprovalService_Verify_Idempotent(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedOrgStructure(mocks)
	seedSubmission(mocks, "sub-1", "membership-application", `{
		"email": "ada@nexus.dev",
		"technical_fields": ["Web Development"]
	}`)

	if err := svc.Verify(context.Background(), "sub-1"); err != nil {
		t.Fatalf("first Verify should succeed: %v", err)
	}

	err := svc.Verify(context.Background(), "sub-1")
	if !errors.Is(err, ErrSubmissionAlreadyProcessed) {
		t.Errorf("re-verifying an approved submission should be rejected, got %v", err)
	}
}

func TestApprovalService_Verify_NoEmail(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedSubmission(mocks, "sub-1", "membership-application", `{"name": "Anonymous"}`)

	err := svc.Verify(context.Background(), "sub-1")
	if !errors.Is(err, ErrSubmissionNoEmail) {
		t.Errorf("expected ErrSubmissionNoEmail, got %v", err)
	}
}

func TestApprovalService_Verify_NotFound(t *testing.T) {
	svc, _ := setupTestApprovalService()

	err := svc.Verify(context.Background(), "missing")
	if !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("expected ErrSubmissionNotFound, got %v", err)
	}
}

// ── Verify, lead path ──

func TestApprovalService_Verify_LeadByRoleHint(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedOrgStructure(mocks)
	seedSubmission(mocks, "sub-1", "membership-application", `{
		"email": "lead@nexus.dev",
		"role": "lead",
		"preferred_field": "Machine Learning",
		"technical_fields": ["Web Development", "Machine Learning"]
	}`)

	if err := svc.Verify(context.Background(), "sub-1"); err != nil {
		t.Fatalf("Verify should succeed: %v", err)
	}

	user, _ := mocks.user.GetByEmail(context.Background(), "lead@nexus.dev")
	if user.Role != model.RoleTeamLead {
		t.Errorf("lead applicant should end up TEAM_LEAD, got %s", user.Role)
	}
	if user.MembershipID == nil {
		t.Error("lead applicant still gets a membership ID")
	}

	// Only the preferred field, not the whole selection.
	if _, err := mocks.field.GetMember(context.Background(), "field-ml", user.UserID); err != nil {
		t.Error("preferred field should be assigned")
	}
	if got := len(mocks.field.members); got != 1 {
		t.Errorf("lead path assigns only the preferred field, got %d memberships", got)
	}
}

func TestApprovalService_Verify_LeadByFormSlug(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedOrgStructure(mocks)
	seedSubmission(mocks, "sub-1", "team-lead-application", `{
		"email": "lead@nexus.dev",
		"preferred_field": "Web Development"
	}`)

	if err := svc.Verify(context.Background(), "sub-1"); err != nil {
		t.Fatalf("Verify should succeed: %v", err)
	}

	user, _ := mocks.user.GetByEmail(context.Background(), "lead@nexus.dev")
	if user.Role != model.RoleTeamLead {
		t.Errorf("a lead form slug should route to the lead path, got role %s", user.Role)
	}
}

// ── Approve ──

func TestApprovalService_Approve_SingleField(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedOrgStructure(mocks)
	sub := seedSubmission(mocks, "sub-1", "membership-application", `{"email": "ada@nexus.dev"}`)

	if err := svc.Approve(context.Background(), "sub-1", "field-web"); err != nil {
		t.Fatalf("Approve should succeed: %v", err)
	}

	user, _ := mocks.user.GetByEmail(context.Background(), "ada@nexus.dev")
	if _, err := mocks.field.GetMember(context.Background(), "field-web", user.UserID); err != nil {
		t.Error("the approved field should be assigned")
	}
	if _, err := mocks.team.GetMember(context.Background(), "team-tech", user.UserID); err != nil {
		t.Error("the parent team should be joined")
	}
	if sub.Status != model.SubmissionApproved {
		t.Errorf("submission should be APPROVED, got %s", sub.Status)
	}
}

func TestApprovalService_Approve_FieldNotFound(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	seedSubmission(mocks, "sub-1", "membership-application", `{"email": "ada@nexus.dev"}`)

	err := svc.Approve(context.Background(), "sub-1", "missing-field")
	if !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("expected ErrFieldNotFound, got %v", err)
	}
}

// ── UpdateStatus ──

func TestApprovalService_UpdateStatus(t *testing.T) {
	svc, mocks := setupTestApprovalService()
	sub := seedSubmission(mocks, "sub-1", "membership-application", `{"email": "ada@nexus.dev"}`)

	if err := svc.UpdateStatus(context.Background(), "sub-1", model.SubmissionVerified); err != nil {
		t.Fatalf("UpdateStatus should succeed: %v", err)
	}
	if sub.Status != model.SubmissionVerified {
		t.Errorf("expected VERIFIED, got %s", sub.Status)
	}
}

// ── Shared field assignment ──

func TestAssignFieldMembership_Idempotent(t *testing.T) {
	repo, mocks := newMockRepository()
	seedOrgStructure(mocks)

	field := mocks.field.fields["field-web"]
	for i := 0; i < 3; i++ {
		if err := assignFieldMembership(context.Background(), repo, "user-1", field); err != nil {
			t.Fatalf("assignment %d should succeed: %v", i, err)
		}
	}

	if got := len(mocks.field.members); got != 1 {
		t.Errorf("expected 1 field membership, got %d", got)
	}
	if got := len(mocks.team.members); got != 1 {
		t.Errorf("expected 1 team membership, got %d", got)
	}
}
