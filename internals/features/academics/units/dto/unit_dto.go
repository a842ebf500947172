package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/units/model"
)

type CreateUnitRequest struct {
	UnitName      string     `json:"unit_name" validate:"required,min=2,max=160"`
	UnitCode      string     `json:"unit_code" validate:"required,min=2,max=20"`
	UnitCourseID  uuid.UUID  `json:"unit_course_id" validate:"required"`
	UnitTeacherID *uuid.UUID `json:"unit_teacher_id"`
}

type UpdateUnitRequest struct {
	UnitName      *string    `json:"unit_name" validate:"omitempty,min=2,max=160"`
	UnitCode      *string    `json:"unit_code" validate:"omitempty,min=2,max=20"`
	UnitCourseID  *uuid.UUID `json:"unit_course_id"`
	UnitTeacherID *uuid.UUID `json:"unit_teacher_id"`
}

type AssignUnitsRequest struct {
	UnitIDs []uuid.UUID `json:"unit_ids" validate:"required,min=1,dive,required"`
}

// UnitResponse enrichment (course/level/teacher names) is resolved at read
// time from the referenced rows, never cached from creation time.
type UnitResponse struct {
	UnitID          uuid.UUID  `json:"unit_id"`
	UnitName        string     `json:"unit_name"`
	UnitCode        string     `json:"unit_code"`
	UnitCourseID    uuid.UUID  `json:"unit_course_id"`
	UnitCourseName  string     `json:"unit_course_name,omitempty"`
	UnitLevelName   string     `json:"unit_level_name,omitempty"`
	UnitTeacherID   *uuid.UUID `json:"unit_teacher_id,omitempty"`
	UnitTeacherName *string    `json:"unit_teacher_name,omitempty"`
	UnitCreatedAt   time.Time  `json:"unit_created_at"`
	UnitUpdatedAt   *time.Time `json:"unit_updated_at,omitempty"`
}

func (r *CreateUnitRequest) ToModel() *model.UnitModel {
	return &model.UnitModel{
		UnitName:      r.UnitName,
		UnitCode:      r.UnitCode,
		UnitCourseID:  r.UnitCourseID,
		UnitTeacherID: r.UnitTeacherID,
	}
}
