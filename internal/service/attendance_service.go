package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/dto"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/model"
	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
)

// ── Attendance module errors ──

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrNotInClass         = errors.New("not in class")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// AttendanceService runs the join/heartbeat/leave session lifecycle.
type AttendanceService interface {
	Join(ctx context.Context, classID, userID string) (*dto.AttendanceResponse, error)
	Heartbeat(ctx context.Context, classID, userID string) (*dto.AttendanceResponse, error)
	Leave(ctx context.Context, classID, userID string) (*dto.AttendanceResponse, error)
	Mark(ctx context.Context, classID string, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, error)
	ClassSummary(ctx context.Context, classID string) (*dto.ClassAttendanceSummary, error)
	MyAttendance(ctx context.Context, classID, userID string) (*dto.AttendanceResponse, error)
	UserHistory(ctx context.Context, userID string) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewAttendanceService creates the attendance tracker.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger, now: time.Now}
}

// Join opens a session for the (class, user) pair. A second join while a
// session is already open returns the existing record unchanged.
func (s *attendanceService) Join(ctx context.Context, classID, userID string) (*dto.AttendanceResponse, error) {
	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	if open, err := s.repo.Attendance.GetOpenSession(ctx, classID, userID); err == nil {
		return toAttendanceResponse(open), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := s.now()
	att := &model.Attendance{
		ClassID:             classID,
		UserID:              userID,
		JoinedAt:            now,
		LastHeartbeat:       now,
		TotalMinutesPresent: 0,
		Status:              model.InitialStatus(now, class.ScheduledAt),
	}

	if err := s.repo.Attendance.Create(ctx, att); err != nil {
		s.logger.Error("create attendance failed",
			zap.String("class_id", classID), zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return toAttendanceResponse(att), nil
}

// Heartbeat accrues presence time for an open session. Gaps of
// HeartbeatGap or more are credited as zero so reconnects after a
// disconnect do not inflate attendance.
func (s *attendanceService) Heartbeat(ctx context.Context, classID, userID string) (*dto.AttendanceResponse, error) {
	att, err := s.openSession(ctx, classID, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	elapsed := now.Sub(att.LastHeartbeat)
	if elapsed < model.HeartbeatGap {
		att.TotalMinutesPresent += elapsed.Minutes()
	}
	att.LastHeartbeat = now

	if err := s.repo.Attendance.Update(ctx, att); err != nil {
		return nil, err
	}

	return toAttendanceResponse(att), nil
}

// Leave closes the session and computes the final status. The interval
// since the last heartbeat is credited in full here, without the gap
// guard Heartbeat applies.
func (s *attendanceService) Leave(ctx context.Context, classID, userID string) (*dto.AttendanceResponse, error) {
	att, err := s.openSession(ctx, classID, userID)
	if err != nil {
		return nil, err
	}

	class, err := s.getClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	att.TotalMinutesPresent += now.Sub(att.LastHeartbeat).Minutes()
	att.LastHeartbeat = now

	percentage := att.TotalMinutesPresent / float64(class.EffectiveDuration()) * 100
	att.Status = model.ResolveFinalStatus(percentage, att.Status)
	att.TotalMinutesPresent = math.Round(att.TotalMinutesPresent)
	att.AttendancePercentage = math.Round(percentage)
	att.LeftAt = &now

	if err := s.repo.Attendance.Update(ctx, att); err != nil {
		s.logger.Error("close attendance failed",
			zap.String("attendance_id", att.AttendanceID), zap.Error(err))
		return nil, err
	}

	return toAttendanceResponse(att), nil
}

// Mark is the instructor override. It bypasses the percentage
// computation entirely, creating a record when none exists.
func (s *attendanceService) Mark(ctx context.Context, classID string, req *dto.MarkAttendanceRequest) (*dto.AttendanceResponse, error) {
	if _, err := s.getClass(ctx, classID); err != nil {
		return nil, err
	}

	att, err := s.repo.Attendance.GetLatest(ctx, classID, req.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		now := s.now()
		att = &model.Attendance{
			ClassID:       classID,
			UserID:        req.UserID,
			JoinedAt:      now,
			LastHeartbeat: now,
			Status:        req.Status,
		}
		if err := s.repo.Attendance.Create(ctx, att); err != nil {
			return nil, err
		}
		return toAttendanceResponse(att), nil
	}

	att.Status = req.Status
	if err := s.repo.Attendance.Update(ctx, att); err != nil {
		return nil, err
	}

	return toAttendanceResponse(att), nil
}

// ClassSummary returns the per-class rollup with per-status counts.
func (s *attendanceService) ClassSummary(ctx context.Context, classID string) (*dto.ClassAttendanceSummary, error) {
	if _, err := s.getClass(ctx, classID); err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance.ListByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Attendance.CountByStatus(ctx, classID)
	if err != nil {
		return nil, err
	}

	summary := &dto.ClassAttendanceSummary{
		ClassID: classID,
		Total:   int64(len(records)),
		Counts:  counts,
		Records: make([]dto.AttendanceResponse, 0, len(records)),
	}
	for i := range records {
		summary.Records = append(summary.Records, *toAttendanceResponse(&records[i]))
	}

	return summary, nil
}

// MyAttendance returns the caller's latest record for a class.
func (s *attendanceService) MyAttendance(ctx context.Context, classID, userID string) (*dto.AttendanceResponse, error) {
	if _, err := s.getClass(ctx, classID); err != nil {
		return nil, err
	}

	att, err := s.repo.Attendance.GetLatest(ctx, classID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}

	return toAttendanceResponse(att), nil
}

// UserHistory returns a user's attendance across all classes.
func (s *attendanceService) UserHistory(ctx context.Context, userID string) ([]dto.AttendanceResponse, error) {
	records, err := s.repo.Attendance.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, *toAttendanceResponse(&records[i]))
	}
	return result, nil
}

// ── helpers ──

func (s *attendanceService) getClass(ctx context.Context, classID string) (*model.Class, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return class, nil
}

func (s *attendanceService) openSession(ctx context.Context, classID, userID string) (*model.Attendance, error) {
	att, err := s.repo.Attendance.GetOpenSession(ctx, classID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInClass
		}
		return nil, err
	}
	return att, nil
}

func toAttendanceResponse(att *model.Attendance) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:                   att.AttendanceID,
		ClassID:              att.ClassID,
		UserID:               att.UserID,
		JoinedAt:             att.JoinedAt,
		LastHeartbeat:        att.LastHeartbeat,
		LeftAt:               att.LeftAt,
		TotalMinutesPresent:  att.TotalMinutesPresent,
		AttendancePercentage: att.AttendancePercentage,
		Status:               att.Status,
	}
	if att.User != nil {
		resp.UserName = att.User.Name
	}
	if att.Class != nil {
		resp.ClassTitle = att.Class.Title
	}
	return resp
}
