package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel represents the attendance table. (session_id, student_id)
// is unique; marking writes go through ON CONFLICT DO UPDATE so re-marking
// replaces rather than duplicates.
type AttendanceModel struct {
	AttendanceID              uuid.UUID  `json:"attendance_id" gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AttendanceSessionID       uuid.UUID  `json:"attendance_session_id" gorm:"column:attendance_session_id;type:uuid;not null"`
	AttendanceStudentID       uuid.UUID  `json:"attendance_student_id" gorm:"column:attendance_student_id;type:uuid;not null"`
	AttendanceIsPresent       bool       `json:"attendance_is_present" gorm:"column:attendance_is_present;not null"`
	AttendanceMarkedBySelf    bool       `json:"attendance_marked_by_self" gorm:"column:attendance_marked_by_self;not null;default:false"`
	AttendanceMarkedByTeacher bool       `json:"attendance_marked_by_teacher" gorm:"column:attendance_marked_by_teacher;not null;default:false"`
	AttendanceMarkedAt        time.Time  `json:"attendance_marked_at" gorm:"column:attendance_marked_at;not null"`
	AttendanceUpdatedBy       *uuid.UUID `json:"attendance_updated_by,omitempty" gorm:"column:attendance_updated_by;type:uuid"`
	AttendanceCreatedAt       time.Time  `json:"attendance_created_at" gorm:"column:attendance_created_at;not null;autoCreateTime"`
	AttendanceUpdatedAt       *time.Time `json:"attendance_updated_at,omitempty" gorm:"column:attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
