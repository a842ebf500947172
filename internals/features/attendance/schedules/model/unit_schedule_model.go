package model

import (
	"time"

	"github.com/google/uuid"
)

// UnitScheduleModel is a weekly recurring slot for a unit within a term.
// Concrete dated sessions are materialized from it; the schedule itself never
// carries attendance.
type UnitScheduleModel struct {
	UnitScheduleID        uuid.UUID  `json:"unit_schedule_id" gorm:"column:unit_schedule_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UnitScheduleUnitID    uuid.UUID  `json:"unit_schedule_unit_id" gorm:"column:unit_schedule_unit_id;type:uuid;not null"`
	UnitScheduleDayOfWeek int        `json:"unit_schedule_day_of_week" gorm:"column:unit_schedule_day_of_week;not null"` // 0 = Sunday .. 6 = Saturday
	UnitScheduleStartTime string     `json:"unit_schedule_start_time" gorm:"column:unit_schedule_start_time;size:5;not null"` // HH:MM
	UnitScheduleEndTime   string     `json:"unit_schedule_end_time" gorm:"column:unit_schedule_end_time;size:5;not null"`
	UnitScheduleLocation  string     `json:"unit_schedule_location" gorm:"column:unit_schedule_location;size:120"`
	UnitScheduleIsActive  bool       `json:"unit_schedule_is_active" gorm:"column:unit_schedule_is_active;not null;default:true"`
	UnitScheduleTermID    uuid.UUID  `json:"unit_schedule_term_id" gorm:"column:unit_schedule_term_id;type:uuid;not null"`
	UnitScheduleCreatedAt time.Time  `json:"unit_schedule_created_at" gorm:"column:unit_schedule_created_at;not null;autoCreateTime"`
	UnitScheduleUpdatedAt *time.Time `json:"unit_schedule_updated_at,omitempty" gorm:"column:unit_schedule_updated_at"`
}

func (UnitScheduleModel) TableName() string {
	return "unit_schedules"
}
