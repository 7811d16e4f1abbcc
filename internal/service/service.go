package service

import (
	"go.uber.org/zap"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/config"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/jwt"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/redis"
)

// Service is the aggregate entry point for all services.
type Service struct {
	Auth         AuthService
	User         UserService
	Team         TeamService
	Field        FieldService
	Class        ClassService
	Attendance   AttendanceService
	Membership   MembershipService
	Approval     ApprovalService
	Form         FormService
	Announcement AnnouncementService
	Event        EventService
	Export       ExportService
}

// NewService creates the Service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	membership := NewMembershipService(repo, logger)
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Team:         NewTeamService(repo, logger),
		Field:        NewFieldService(repo, logger),
		Class:        NewClassService(repo, logger),
		Attendance:   NewAttendanceService(repo, logger),
		Membership:   membership,
		Approval:     NewApprovalService(repo, membership, logger),
		Form:         NewFormService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Event:        NewEventService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
