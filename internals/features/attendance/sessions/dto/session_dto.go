package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/attendance/sessions/model"
)

// CreateSessionRequest creates a one-off session that is not backed by a
// weekly schedule.
type CreateSessionRequest struct {
	UnitSessionDate       string    `json:"unit_session_date" validate:"required,datetime=2006-01-02"`
	UnitSessionStartTime  string    `json:"unit_session_start_time" validate:"required,datetime=15:04"`
	UnitSessionEndTime    string    `json:"unit_session_end_time" validate:"required,datetime=15:04"`
	UnitSessionLocation   string    `json:"unit_session_location" validate:"omitempty,max=120"`
	UnitSessionWeekNumber int       `json:"unit_session_week_number" validate:"omitempty,min=0"`
	UnitSessionTermID     uuid.UUID `json:"unit_session_term_id" validate:"required"`
}

func (r *CreateSessionRequest) ToModel(unitID uuid.UUID) *model.UnitSessionModel {
	date, _ := time.Parse("2006-01-02", r.UnitSessionDate)
	return &model.UnitSessionModel{
		UnitSessionUnitID:     unitID,
		UnitSessionDate:       date,
		UnitSessionStartTime:  r.UnitSessionStartTime,
		UnitSessionEndTime:    r.UnitSessionEndTime,
		UnitSessionLocation:   r.UnitSessionLocation,
		UnitSessionWeekNumber: r.UnitSessionWeekNumber,
		UnitSessionTermID:     r.UnitSessionTermID,
		UnitSessionIsActive:   true,
	}
}

// SessionStudentResponse is one roster row for a session: the students of the
// classes the unit is assigned to, with their attendance for the session if
// already marked.
type SessionStudentResponse struct {
	StudentID              uuid.UUID  `json:"student_id"`
	StudentFullName        string     `json:"student_full_name"`
	StudentAdmissionNumber *string    `json:"student_admission_number,omitempty"`
	AttendanceID           *uuid.UUID `json:"attendance_id,omitempty"`
	AttendanceIsPresent    *bool      `json:"attendance_is_present,omitempty"`
}
