package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/repository"
)

// ── Export module errors ──

var (
	ErrExportNoRecords    = errors.New("class has no attendance records")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// ExportService produces downloadable artifacts.
//
// Design notes:
//   - The attendance sheet is returned as a bytes.Buffer; the handler sets
//     the content headers and streams it.
//   - The calendar feed covers classes scheduled from calendarLookback
//     before now onward, so recently finished classes stay visible.
type ExportService interface {
	// ExportClassAttendance renders the per-class attendance sheet as
	// an Excel workbook. Returns buffer, suggested filename, error.
	ExportClassAttendance(ctx context.Context, classID string) (*bytes.Buffer, string, error)

	// ClassCalendar renders the upcoming class schedule as an
	// iCalendar (RFC 5545) feed.
	ClassCalendar(ctx context.Context) ([]byte, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

const calendarLookback = 7 * 24 * time.Hour

// attendanceSheetHeader is the fixed column layout of the export.
var attendanceSheetHeader = []string{
	"#", "Member", "Email", "Membership ID", "Joined At", "Left At",
	"Minutes Present", "Attendance %", "Status",
}

func (s *exportService) ExportClassAttendance(ctx context.Context, classID string) (*bytes.Buffer, string, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrClassNotFound
		}
		s.logger.Error("failed to load class for export", zap.Error(err))
		return nil, "", err
	}

	records, err := s.repo.Attendance.ListByClass(ctx, classID)
	if err != nil {
		s.logger.Error("failed to list attendance for export", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Attendance"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// Title rows.
	f.SetCellValue(sheetName, "A1", class.Title)
	f.SetCellValue(sheetName, "A2", "Scheduled: "+class.ScheduledAt.Format("2006-01-02 15:04"))

	// Header row.
	for col, title := range attendanceSheetHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 4)
		f.SetCellValue(sheetName, cell, title)
	}

	for i, rec := range records {
		row := 5 + i
		name, email, memberID := "", "", ""
		if rec.User != nil {
			name = rec.User.Name
			email = rec.User.Email
			if rec.User.MembershipID != nil {
				memberID = *rec.User.MembershipID
			}
		}
		leftAt := ""
		if rec.LeftAt != nil {
			leftAt = rec.LeftAt.Format("15:04:05")
		}

		values := []interface{}{
			i + 1, name, email, memberID,
			rec.JoinedAt.Format("15:04:05"), leftAt,
			rec.TotalMinutesPresent,
			fmt.Sprintf("%.0f%%", rec.AttendancePercentage),
			rec.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	// Column widths tuned for the header layout.
	f.SetColWidth(sheetName, "B", "D", 22)
	f.SetColWidth(sheetName, "E", "H", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.logger.Error("failed to write attendance workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance_%s_%s.xlsx",
		classID[:8], class.ScheduledAt.Format("20060102"))
	return &buf, filename, nil
}

func (s *exportService) ClassCalendar(ctx context.Context) ([]byte, error) {
	from := s.now().Add(-calendarLookback)
	classes, err := s.repo.Class.ListFrom(ctx, from)
	if err != nil {
		s.logger.Error("failed to list classes for calendar", zap.Error(err))
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//GDSC Nexus//Class Schedule//EN")
	cal.SetXWRCalName("GDSC Nexus Classes")

	for i := range classes {
		class := &classes[i]
		ev := cal.AddEvent(class.ClassID + "@gdsc-nexus")
		ev.SetCreatedTime(class.CreatedAt)
		ev.SetDtStampTime(class.UpdatedAt)
		ev.SetStartAt(class.ScheduledAt)
		ev.SetEndAt(class.ScheduledAt.Add(time.Duration(class.EffectiveDuration()) * time.Minute))
		ev.SetSummary(class.Title)
		if class.Description != "" {
			ev.SetDescription(class.Description)
		}
		if class.Field != nil {
			ev.SetLocation(class.Field.Name)
		}
	}

	return []byte(cal.Serialize()), nil
}
