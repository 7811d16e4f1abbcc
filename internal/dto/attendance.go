package dto

import "time"

// MarkAttendanceRequest is the instructor's manual status override.
type MarkAttendanceRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Status string `json:"status"  binding:"required,oneof=PRESENT LATE EXCUSED ABSENT"`
}

// AttendanceResponse is one session record.
type AttendanceResponse struct {
	ID                   string     `json:"id"`
	ClassID              string     `json:"class_id"`
	UserID               string     `json:"user_id"`
	UserName             string     `json:"user_name,omitempty"`
	ClassTitle           string     `json:"class_title,omitempty"`
	JoinedAt             time.Time  `json:"joined_at"`
	LastHeartbeat        time.Time  `json:"last_heartbeat"`
	LeftAt               *time.Time `json:"left_at,omitempty"`
	TotalMinutesPresent  float64    `json:"total_minutes_present"`
	AttendancePercentage float64    `json:"attendance_percentage"`
	Status               string     `json:"status"`
}

// ClassAttendanceSummary is the per-class rollup.
type ClassAttendanceSummary struct {
	ClassID string               `json:"class_id"`
	Total   int64                `json:"total"`
	Counts  map[string]int64     `json:"counts"`
	Records []AttendanceResponse `json:"records"`
}
