package dto

import (
	"github.com/google/uuid"
)

type MarkAttendanceRequest struct {
	AttendanceSessionID uuid.UUID `json:"attendance_session_id" validate:"required"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceIsPresent *bool     `json:"attendance_is_present" validate:"required"`
}

type UpdateAttendanceRequest struct {
	AttendanceIsPresent *bool `json:"attendance_is_present" validate:"required"`
}

// BulkAttendanceRequest marks a whole session in one call. Items are applied
// independently; a bad row never blocks the good ones.
type BulkAttendanceRequest struct {
	AttendanceSessionID uuid.UUID            `json:"attendance_session_id" validate:"required"`
	Items               []BulkAttendanceItem `json:"items" validate:"required,min=1"`
}

// BulkAttendanceItem is validated per row in the controller so a malformed
// item is skipped instead of sinking the batch.
type BulkAttendanceItem struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id"`
	AttendanceIsPresent *bool     `json:"attendance_is_present"`
}

// ActiveSessionResponse is one row of a student's self-marking feed: a
// session happening today for a unit of the student's class.
type ActiveSessionResponse struct {
	UnitSessionID        uuid.UUID `json:"unit_session_id"`
	UnitSessionDate      string    `json:"unit_session_date"`
	UnitSessionStartTime string    `json:"unit_session_start_time"`
	UnitSessionEndTime   string    `json:"unit_session_end_time"`
	UnitSessionLocation  string    `json:"unit_session_location"`
	UnitName             string    `json:"unit_name"`
	UnitCode             string    `json:"unit_code"`
	AlreadyMarked        bool      `json:"already_marked"`
}
