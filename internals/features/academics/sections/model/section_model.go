package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionModel: optional subdivision of a department.
type SectionModel struct {
	SectionID           uuid.UUID  `json:"section_id" gorm:"column:section_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SectionName         string     `json:"section_name" gorm:"column:section_name;size:120;not null" validate:"required,min=2,max=120"`
	SectionDepartmentID uuid.UUID  `json:"section_department_id" gorm:"column:section_department_id;type:uuid;not null" validate:"required"`
	SectionCreatedAt    time.Time  `json:"section_created_at" gorm:"column:section_created_at;not null;autoCreateTime"`
	SectionUpdatedAt    *time.Time `json:"section_updated_at,omitempty" gorm:"column:section_updated_at"`
}

func (SectionModel) TableName() string {
	return "sections"
}
