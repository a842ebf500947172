package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel represents the courses table.
type CourseModel struct {
	CourseID           uuid.UUID  `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CourseName         string     `json:"course_name" gorm:"column:course_name;size:160;not null"`
	CourseCode         string     `json:"course_code" gorm:"column:course_code;size:20;uniqueIndex;not null"`
	CourseLevelID      uuid.UUID  `json:"course_level_id" gorm:"column:course_level_id;type:uuid;not null"`
	CourseDepartmentID uuid.UUID  `json:"course_department_id" gorm:"column:course_department_id;type:uuid;not null"`
	CourseSectionID    *uuid.UUID `json:"course_section_id,omitempty" gorm:"column:course_section_id;type:uuid"`

	CourseCreatedAt time.Time  `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt *time.Time `json:"course_updated_at,omitempty" gorm:"column:course_updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
