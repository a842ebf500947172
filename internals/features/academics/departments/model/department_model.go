package model

import (
	"time"

	"github.com/google/uuid"
)

// DepartmentModel represents the departments table.
type DepartmentModel struct {
	DepartmentID     uuid.UUID  `json:"department_id" gorm:"column:department_id;type:uuid;default:gen_random_uuid();primaryKey"`
	DepartmentName   string     `json:"department_name" gorm:"column:department_name;size:120;not null"`
	DepartmentCode   string     `json:"department_code" gorm:"column:department_code;size:20;uniqueIndex;not null"`
	DepartmentHeadID *uuid.UUID `json:"department_head_id,omitempty" gorm:"column:department_head_id;type:uuid"` // FK -> users(user_id), role hod

	DepartmentCreatedAt time.Time  `json:"department_created_at" gorm:"column:department_created_at;not null;autoCreateTime"`
	DepartmentUpdatedAt *time.Time `json:"department_updated_at,omitempty" gorm:"column:department_updated_at"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
