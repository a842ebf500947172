package dto

import (
	"github.com/google/uuid"

	"kampusku_backend/internals/features/attendance/schedules/model"
)

type CreateScheduleRequest struct {
	UnitScheduleUnitID    uuid.UUID `json:"unit_schedule_unit_id" validate:"required"`
	UnitScheduleDayOfWeek *int      `json:"unit_schedule_day_of_week" validate:"required,min=0,max=6"`
	UnitScheduleStartTime string    `json:"unit_schedule_start_time" validate:"required,datetime=15:04"`
	UnitScheduleEndTime   string    `json:"unit_schedule_end_time" validate:"required,datetime=15:04"`
	UnitScheduleLocation  string    `json:"unit_schedule_location" validate:"omitempty,max=120"`
	UnitScheduleTermID    uuid.UUID `json:"unit_schedule_term_id" validate:"required"`
}

func (r *CreateScheduleRequest) ToModel() *model.UnitScheduleModel {
	return &model.UnitScheduleModel{
		UnitScheduleUnitID:    r.UnitScheduleUnitID,
		UnitScheduleDayOfWeek: *r.UnitScheduleDayOfWeek,
		UnitScheduleStartTime: r.UnitScheduleStartTime,
		UnitScheduleEndTime:   r.UnitScheduleEndTime,
		UnitScheduleLocation:  r.UnitScheduleLocation,
		UnitScheduleTermID:    r.UnitScheduleTermID,
		UnitScheduleIsActive:  true,
	}
}
