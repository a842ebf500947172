package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	CourseName         string     `json:"course_name" validate:"required,min=2,max=160"`
	CourseCode         string     `json:"course_code" validate:"required,min=2,max=20"`
	CourseLevelID      uuid.UUID  `json:"course_level_id" validate:"required"`
	CourseDepartmentID uuid.UUID  `json:"course_department_id" validate:"required"`
	CourseSectionID    *uuid.UUID `json:"course_section_id"`
}

type UpdateCourseRequest struct {
	CourseName         *string    `json:"course_name" validate:"omitempty,min=2,max=160"`
	CourseCode         *string    `json:"course_code" validate:"omitempty,min=2,max=20"`
	CourseLevelID      *uuid.UUID `json:"course_level_id"`
	CourseDepartmentID *uuid.UUID `json:"course_department_id"`
	CourseSectionID    *uuid.UUID `json:"course_section_id"`
}

// CourseResponse carries the joined names, resolved at read time.
type CourseResponse struct {
	CourseID             uuid.UUID  `json:"course_id"`
	CourseName           string     `json:"course_name"`
	CourseCode           string     `json:"course_code"`
	CourseLevelID        uuid.UUID  `json:"course_level_id"`
	CourseLevelName      string     `json:"course_level_name,omitempty"`
	CourseDepartmentID   uuid.UUID  `json:"course_department_id"`
	CourseDepartmentName string     `json:"course_department_name,omitempty"`
	CourseSectionID      *uuid.UUID `json:"course_section_id,omitempty"`
	CourseCreatedAt      time.Time  `json:"course_created_at"`
	CourseUpdatedAt      *time.Time `json:"course_updated_at,omitempty"`
}

func (r *CreateCourseRequest) ToModel() *model.CourseModel {
	return &model.CourseModel{
		CourseName:         r.CourseName,
		CourseCode:         r.CourseCode,
		CourseLevelID:      r.CourseLevelID,
		CourseDepartmentID: r.CourseDepartmentID,
		CourseSectionID:    r.CourseSectionID,
	}
}
