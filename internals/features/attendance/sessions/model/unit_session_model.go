package model

import (
	"time"

	"github.com/google/uuid"
)

// UnitSessionModel is a concrete calendar occurrence of a unit. Rows come
// from two sources: materialization of a weekly schedule (ScheduleID set,
// (schedule_id, date) unique) and explicitly created one-offs (ScheduleID
// nil). Attendance and records of work reference only these rows.
type UnitSessionModel struct {
	UnitSessionID          uuid.UUID  `json:"unit_session_id" gorm:"column:unit_session_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UnitSessionScheduleID  *uuid.UUID `json:"unit_session_schedule_id,omitempty" gorm:"column:unit_session_schedule_id;type:uuid"`
	UnitSessionUnitID      uuid.UUID  `json:"unit_session_unit_id" gorm:"column:unit_session_unit_id;type:uuid;not null"`
	UnitSessionDate        time.Time  `json:"unit_session_date" gorm:"column:unit_session_date;type:date;not null"`
	UnitSessionStartTime   string     `json:"unit_session_start_time" gorm:"column:unit_session_start_time;size:5;not null"`
	UnitSessionEndTime     string     `json:"unit_session_end_time" gorm:"column:unit_session_end_time;size:5;not null"`
	UnitSessionLocation    string     `json:"unit_session_location" gorm:"column:unit_session_location;size:120"`
	UnitSessionWeekNumber  int        `json:"unit_session_week_number" gorm:"column:unit_session_week_number;not null;default:0"`
	UnitSessionTermID      uuid.UUID  `json:"unit_session_term_id" gorm:"column:unit_session_term_id;type:uuid;not null"`
	UnitSessionIsActive    bool       `json:"unit_session_is_active" gorm:"column:unit_session_is_active;not null;default:true"`
	UnitSessionIsCancelled bool       `json:"unit_session_is_cancelled" gorm:"column:unit_session_is_cancelled;not null;default:false"`
	UnitSessionCreatedAt   time.Time  `json:"unit_session_created_at" gorm:"column:unit_session_created_at;not null;autoCreateTime"`
	UnitSessionUpdatedAt   *time.Time `json:"unit_session_updated_at,omitempty" gorm:"column:unit_session_updated_at"`
}

func (UnitSessionModel) TableName() string {
	return "unit_sessions"
}
