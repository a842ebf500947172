package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	ClassName         string     `json:"class_name" validate:"required,min=2,max=120"`
	ClassCode         string     `json:"class_code" validate:"required,min=2,max=20"`
	ClassCourseID     uuid.UUID  `json:"class_course_id" validate:"required"`
	ClassDepartmentID uuid.UUID  `json:"class_department_id" validate:"required"`
	ClassSectionID    *uuid.UUID `json:"class_section_id"`
	ClassLevelID      uuid.UUID  `json:"class_level_id" validate:"required"`
	ClassTermID       uuid.UUID  `json:"class_term_id" validate:"required"`
	ClassStartDate    string     `json:"class_start_date" validate:"required,datetime=2006-01-02"`
	ClassEndDate      string     `json:"class_end_date" validate:"required,datetime=2006-01-02"`
	ClassDescription  *string    `json:"class_description"`
}

type UpdateClassRequest struct {
	ClassName        *string `json:"class_name" validate:"omitempty,min=2,max=120"`
	ClassCode        *string `json:"class_code" validate:"omitempty,min=2,max=20"`
	ClassStartDate   *string `json:"class_start_date" validate:"omitempty,datetime=2006-01-02"`
	ClassEndDate     *string `json:"class_end_date" validate:"omitempty,datetime=2006-01-02"`
	ClassDescription *string `json:"class_description"`
	ClassIsCancelled *bool   `json:"class_is_cancelled"`
}

// ClassResponse adds the two derived fields and the joined names.
type ClassResponse struct {
	ClassID              uuid.UUID  `json:"class_id"`
	ClassName            string     `json:"class_name"`
	ClassCode            string     `json:"class_code"`
	ClassCourseID        uuid.UUID  `json:"class_course_id"`
	ClassCourseName      string     `json:"class_course_name,omitempty"`
	ClassDepartmentID    uuid.UUID  `json:"class_department_id"`
	ClassDepartmentName  string     `json:"class_department_name,omitempty"`
	ClassSectionID       *uuid.UUID `json:"class_section_id,omitempty"`
	ClassLevelID         uuid.UUID  `json:"class_level_id"`
	ClassLevelName       string     `json:"class_level_name,omitempty"`
	ClassTermID          uuid.UUID  `json:"class_term_id"`
	ClassStartDate       time.Time  `json:"class_start_date"`
	ClassEndDate         time.Time  `json:"class_end_date"`
	ClassDescription     *string    `json:"class_description,omitempty"`
	ClassIsCancelled     bool       `json:"class_is_cancelled"`
	ClassStatus          string     `json:"class_status"`
	ClassCurrentStudents int64      `json:"class_current_students"`
	ClassCreatedAt       time.Time  `json:"class_created_at"`
	ClassUpdatedAt       *time.Time `json:"class_updated_at,omitempty"`
}

func (r *CreateClassRequest) ToModel() (*model.ClassModel, error) {
	start, err := time.Parse("2006-01-02", r.ClassStartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", r.ClassEndDate)
	if err != nil {
		return nil, err
	}
	return &model.ClassModel{
		ClassName:         r.ClassName,
		ClassCode:         r.ClassCode,
		ClassCourseID:     r.ClassCourseID,
		ClassDepartmentID: r.ClassDepartmentID,
		ClassSectionID:    r.ClassSectionID,
		ClassLevelID:      r.ClassLevelID,
		ClassTermID:       r.ClassTermID,
		ClassStartDate:    start,
		ClassEndDate:      end,
		ClassDescription:  r.ClassDescription,
	}, nil
}
