package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
)

// ── Membership module errors ──

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBadMembershipID    = errors.New("existing membership id is not numeric")
	errNoMembershipIDsYet = errors.New("no membership ids issued yet")
)

// membershipIDWidth is the zero-padded width of issued IDs. The
// max-ID query orders by descending string value, which is only
// correct while every issued ID has this exact width; IDs past 999
// would sort below "999" and break the sequence.
const membershipIDWidth = 3

// MembershipService issues sequential membership identifiers.
type MembershipService interface {
	// Generate computes the next membership ID without assigning it.
	Generate(ctx context.Context) (string, error)
	// Assign issues the next ID to the user and promotes them to a
	// full member (status MEMBER, role TEAM_MEMBER). Not safe against
	// concurrent assignment; two simultaneous calls can compute the
	// same next ID.
	Assign(ctx context.Context, userID string) (string, error)
}

type membershipService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMembershipService creates the membership-ID issuer.
func NewMembershipService(repo *repository.Repository, logger *zap.Logger) MembershipService {
	return &membershipService{repo: repo, logger: logger}
}

func (s *membershipService) Generate(ctx context.Context) (string, error) {
	last, err := s.highestIssued(ctx)
	if err != nil {
		if errors.Is(err, errNoMembershipIDsYet) {
			return fmt.Sprintf("%0*d", membershipIDWidth, 1), nil
		}
		return "", err
	}

	n, err := strconv.Atoi(last)
	if err != nil {
		s.logger.Error("membership id not numeric", zap.String("membership_id", last))
		return "", ErrBadMembershipID
	}

	return fmt.Sprintf("%0*d", membershipIDWidth, n+1), nil
}

func (s *membershipService) Assign(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	id, err := s.Generate(ctx)
	if err != nil {
		return "", err
	}

	user.MembershipID = &id
	user.Status = model.StatusMember
	user.Role = model.RoleTeamMember

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("assign membership id failed",
			zap.String("user_id", userID), zap.Error(err))
		return "", err
	}

	s.logger.Info("membership id assigned",
		zap.String("user_id", userID), zap.String("membership_id", id))

	return id, nil
}

func (s *membershipService) highestIssued(ctx context.Context) (string, error) {
	user, err := s.repo.User.GetMaxMembershipID(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errNoMembershipIDsYet
		}
		return "", err
	}
	if user.MembershipID == nil {
		return "", errNoMembershipIDsYet
	}
	return *user.MembershipID, nil
}
