package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
)

// ── Approval module errors ──

var (
	ErrSubmissionNotFound         = errors.New("submission not found")
	ErrSubmissionAlreadyProcessed = errors.New("submission already approved")
	ErrSubmissionNoEmail          = errors.New("submission has no email")
	ErrSubmissionBadPayload       = errors.New("submission payload is not valid")
	ErrFieldNotFound              = errors.New("field not found")
)

// defaultMemberPassword is hashed into accounts the pipeline creates;
// members are expected to reset it on first login.
const defaultMemberPassword = "GdscNexus@2024"

// ApprovalService runs submissions through the verification workflow.
type ApprovalService interface {
	// Verify is the stage-1 approval: it resolves or creates the user,
	// issues a membership ID and assigns every selected field (general
	// path), or forces the TEAM_LEAD role and assigns the single
	// preferred field (lead path).
	Verify(ctx context.Context, submissionID string) error
	// Approve is the direct path: one explicit field, same user
	// resolution and membership-ID issuance.
	Approve(ctx context.Context, submissionID, fieldID string) error
	// UpdateStatus is the raw status override.
	UpdateStatus(ctx context.Context, submissionID, status string) error
}

type approvalService struct {
	repo       *repository.Repository
	membership MembershipService
	logger     *zap.Logger
}

// NewApprovalService creates the approval pipeline.
func NewApprovalService(repo *repository.Repository, membership MembershipService, logger *zap.Logger) ApprovalService {
	return &approvalService{repo: repo, membership: membership, logger: logger}
}

func (s *approvalService) Verify(ctx context.Context, submissionID string) error {
	sub, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub.Status == model.SubmissionApproved {
		return ErrSubmissionAlreadyProcessed
	}

	payload, err := sub.Payload()
	if err != nil {
		return ErrSubmissionBadPayload
	}
	if payload.Email == "" {
		return ErrSubmissionNoEmail
	}

	user, err := s.resolveUser(ctx, payload)
	if err != nil {
		return err
	}

	formSlug := ""
	if sub.Form != nil {
		formSlug = sub.Form.Slug
	}

	if payload.IsLeadApplication(formSlug) {
		if err := s.verifyLead(ctx, user, payload); err != nil {
			return err
		}
	} else {
		if err := s.verifyGeneral(ctx, user, payload); err != nil {
			return err
		}
	}

	sub.Status = model.SubmissionApproved
	sub.UserID = &user.UserID
	if err := s.repo.Form.UpdateSubmission(ctx, sub); err != nil {
		s.logger.Error("update submission failed",
			zap.String("submission_id", submissionID), zap.Error(err))
		return err
	}

	s.logger.Info("submission verified",
		zap.String("submission_id", submissionID),
		zap.String("user_id", user.UserID),
		zap.Bool("lead", payload.IsLeadApplication(formSlug)))

	return nil
}

// verifyGeneral handles the general-membership path: membership ID,
// then every selected field. Unknown field names are logged and
// skipped; they never abort the approval.
func (s *approvalService) verifyGeneral(ctx context.Context, user *model.User, payload *model.SubmissionPayload) error {
	if _, err := s.membership.Assign(ctx, user.UserID); err != nil {
		return err
	}

	for _, name := range payload.AllFieldNames() {
		field, err := s.repo.Field.GetByName(ctx, name)
		if err != nil {
			s.logger.Warn("field lookup failed during approval, skipping",
				zap.String("field_name", name), zap.Error(err))
			continue
		}
		if err := assignFieldMembership(ctx, s.repo, user.UserID, field); err != nil {
			s.logger.Warn("field assignment failed during approval, skipping",
				zap.String("field_name", name), zap.Error(err))
		}
	}

	return nil
}

// verifyLead handles the lead path: membership ID, role forced to
// TEAM_LEAD, only the preferred field assigned.
func (s *approvalService) verifyLead(ctx context.Context, user *model.User, payload *model.SubmissionPayload) error {
	if _, err := s.membership.Assign(ctx, user.UserID); err != nil {
		return err
	}

	// Assign resets the role to TEAM_MEMBER; the lead upgrade goes last.
	fresh, err := s.repo.User.GetByID(ctx, user.UserID)
	if err != nil {
		return err
	}
	fresh.Role = model.RoleTeamLead
	if err := s.repo.User.Update(ctx, fresh); err != nil {
		return err
	}

	if payload.PreferredField == "" {
		return nil
	}
	field, err := s.repo.Field.GetByName(ctx, payload.PreferredField)
	if err != nil {
		s.logger.Warn("preferred field lookup failed, skipping",
			zap.String("field_name", payload.PreferredField), zap.Error(err))
		return nil
	}
	if err := assignFieldMembership(ctx, s.repo, fresh.UserID, field); err != nil {
		s.logger.Warn("preferred field assignment failed, skipping",
			zap.String("field_name", payload.PreferredField), zap.Error(err))
	}

	return nil
}

func (s *approvalService) Approve(ctx context.Context, submissionID, fieldID string) error {
	sub, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub.Status == model.SubmissionApproved {
		return ErrSubmissionAlreadyProcessed
	}

	payload, err := sub.Payload()
	if err != nil {
		return ErrSubmissionBadPayload
	}
	if payload.Email == "" {
		return ErrSubmissionNoEmail
	}

	field, err := s.repo.Field.GetByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFieldNotFound
		}
		return err
	}

	user, err := s.resolveUser(ctx, payload)
	if err != nil {
		return err
	}

	if _, err := s.membership.Assign(ctx, user.UserID); err != nil {
		return err
	}

	if err := assignFieldMembership(ctx, s.repo, user.UserID, field); err != nil {
		return err
	}

	sub.Status = model.SubmissionApproved
	sub.UserID = &user.UserID
	return s.repo.Form.UpdateSubmission(ctx, sub)
}

func (s *approvalService) UpdateStatus(ctx context.Context, submissionID, status string) error {
	sub, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	sub.Status = status
	return s.repo.Form.UpdateSubmission(ctx, sub)
}

// ── helpers ──

func (s *approvalService) getSubmission(ctx context.Context, id string) (*model.FormSubmission, error) {
	sub, err := s.repo.Form.GetSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

// resolveUser finds the applicant by email or creates a new member
// account with the hashed default password.
func (s *approvalService) resolveUser(ctx context.Context, payload *model.SubmissionPayload) (*model.User, error) {
	user, err := s.repo.User.GetByEmail(ctx, payload.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultMemberPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := payload.Name
	if name == "" {
		name = payload.Email
	}

	user = &model.User{
		Name:         name,
		Email:        payload.Email,
		PasswordHash: string(hash),
		Status:       model.StatusMember,
		Role:         model.RoleGeneralMember,
		RegNumber:    payload.RegNumber,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created from submission",
		zap.String("user_id", user.UserID), zap.String("email", user.Email))

	return user, nil
}

// assignFieldMembership adds a user to a field, and to the field's
// parent team when they are not yet a member of it. Both inserts are
// guarded by existence checks, so repeated assignment is a no-op.
func assignFieldMembership(ctx context.Context, repo *repository.Repository, userID string, field *model.Field) error {
	if _, err := repo.Field.GetMember(ctx, field.FieldID, userID); err == nil {
		return nil // already a member
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := repo.Field.AddMember(ctx, &model.FieldMember{
		FieldID: field.FieldID,
		UserID:  userID,
	}); err != nil {
		return err
	}

	// field membership implies team membership
	if _, err := repo.Team.GetMember(ctx, field.TeamID, userID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return repo.Team.AddMember(ctx, &model.TeamMember{
		TeamID: field.TeamID,
		UserID: userID,
		Role:   model.RoleTeamMember,
	})
}
