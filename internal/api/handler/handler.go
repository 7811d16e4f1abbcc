package handler

import "github.com/Tayyab2344/GDSC-NEXUX-sub001/internal/service"

// Handler is the aggregate entry point for all handlers.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Team         *TeamHandler
	Field        *FieldHandler
	Class        *ClassHandler
	Attendance   *AttendanceHandler
	Form         *FormHandler
	Announcement *AnnouncementHandler
	Event        *EventHandler
	Export       *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Team:         NewTeamHandler(svc.Team),
		Field:        NewFieldHandler(svc.Field),
		Class:        NewClassHandler(svc.Class),
		Attendance:   NewAttendanceHandler(svc.Attendance),
		Form:         NewFormHandler(svc.Form, svc.Approval),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Event:        NewEventHandler(svc.Event),
		Export:       NewExportHandler(svc.Export),
	}
}
