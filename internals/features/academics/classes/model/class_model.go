package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel represents the classes table. Status and the student count are
// never stored; both derive at read time.
type ClassModel struct {
	ClassID           uuid.UUID  `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassName         string     `json:"class_name" gorm:"column:class_name;size:120;not null"`
	ClassCode         string     `json:"class_code" gorm:"column:class_code;size:20;uniqueIndex;not null"`
	ClassCourseID     uuid.UUID  `json:"class_course_id" gorm:"column:class_course_id;type:uuid;not null"`
	ClassDepartmentID uuid.UUID  `json:"class_department_id" gorm:"column:class_department_id;type:uuid;not null"`
	ClassSectionID    *uuid.UUID `json:"class_section_id,omitempty" gorm:"column:class_section_id;type:uuid"`
	ClassLevelID      uuid.UUID  `json:"class_level_id" gorm:"column:class_level_id;type:uuid;not null"`
	ClassTermID       uuid.UUID  `json:"class_term_id" gorm:"column:class_term_id;type:uuid;not null"`
	ClassStartDate    time.Time  `json:"class_start_date" gorm:"column:class_start_date;type:date;not null"`
	ClassEndDate      time.Time  `json:"class_end_date" gorm:"column:class_end_date;type:date;not null"`
	ClassDescription  *string    `json:"class_description,omitempty" gorm:"column:class_description;type:text"`
	// manual override; when set the derived status is always "cancelled"
	ClassIsCancelled bool `json:"class_is_cancelled" gorm:"column:class_is_cancelled;not null;default:false"`

	ClassCreatedAt time.Time  `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt *time.Time `json:"class_updated_at,omitempty" gorm:"column:class_updated_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}
