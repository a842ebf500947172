package model

import (
	"time"

	"github.com/google/uuid"
)

// UnitModel: a teachable subject within a course.
type UnitModel struct {
	UnitID        uuid.UUID  `json:"unit_id" gorm:"column:unit_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UnitName      string     `json:"unit_name" gorm:"column:unit_name;size:160;not null"`
	UnitCode      string     `json:"unit_code" gorm:"column:unit_code;size:20;uniqueIndex;not null"`
	UnitCourseID  uuid.UUID  `json:"unit_course_id" gorm:"column:unit_course_id;type:uuid;not null"`
	UnitTeacherID *uuid.UUID `json:"unit_teacher_id,omitempty" gorm:"column:unit_teacher_id;type:uuid"`

	UnitCreatedAt time.Time  `json:"unit_created_at" gorm:"column:unit_created_at;not null;autoCreateTime"`
	UnitUpdatedAt *time.Time `json:"unit_updated_at,omitempty" gorm:"column:unit_updated_at"`
}

func (UnitModel) TableName() string {
	return "units"
}
