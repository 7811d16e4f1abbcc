package model

import "time"

// Attendance statuses.
const (
	AttendancePresent = "PRESENT"
	AttendanceLate    = "LATE"
	AttendanceExcused = "EXCUSED"
	AttendanceAbsent  = "ABSENT"
)

// Session timing rules.
const (
	// LateJoinGrace is how long after the scheduled start a join still
	// counts as on time.
	LateJoinGrace = 10 * time.Minute

	// HeartbeatGap is the maximum interval credited between heartbeats.
	// Assumes a 30-second heartbeat with tolerance for two missed beats;
	// anything longer is treated as a disconnect and credited as zero.
	HeartbeatGap = 2 * time.Minute
)

// Attendance is one session record per (class, user) pair.
// At most one row per pair may have a null LeftAt (an open session).
type Attendance struct {
	AttendanceID         string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	ClassID              string     `gorm:"type:uuid;not null"                             json:"class_id"`
	UserID               string     `gorm:"type:uuid;not null"                             json:"user_id"`
	JoinedAt             time.Time  `gorm:"not null"                                       json:"joined_at"`
	LastHeartbeat        time.Time  `gorm:"not null"                                       json:"last_heartbeat"`
	LeftAt               *time.Time `json:"left_at,omitempty"`
	TotalMinutesPresent  float64    `gorm:"not null;default:0" json:"total_minutes_present"`
	AttendancePercentage float64    `gorm:"not null;default:0" json:"attendance_percentage"`
	Status               string     `gorm:"type:varchar(10);not null;default:'PRESENT'"    json:"status"`
	BaseModel

	User  *User  `gorm:"foreignKey:UserID;references:UserID"    json:"user,omitempty"`
	Class *Class `gorm:"foreignKey:ClassID;references:ClassID"  json:"class,omitempty"`
}

// TableName pins the table name.
func (Attendance) TableName() string { return "attendances" }

// Open reports whether the session is still active.
func (a *Attendance) Open() bool { return a.LeftAt == nil }

// InitialStatus returns the status assigned at join time.
func InitialStatus(joinedAt, scheduledAt time.Time) string {
	if joinedAt.After(scheduledAt.Add(LateJoinGrace)) {
		return AttendanceLate
	}
	return AttendancePresent
}

// ResolveFinalStatus is the single authority for the status computed at
// leave time from the presence percentage and the status held so far.
func ResolveFinalStatus(percentage float64, prior string) string {
	switch {
	case percentage < 30:
		return AttendanceAbsent
	case percentage < 80:
		return AttendanceExcused
	case prior == AttendanceLate:
		return AttendanceLate
	default:
		return AttendancePresent
	}
}
