package model

import (
	"time"

	"github.com/google/uuid"
)

// UnitClassAssignmentModel joins units to the classes they are taught in.
// (unit_id, class_id) is unique; bulk assignment inserts with ON CONFLICT DO
// NOTHING over that index.
type UnitClassAssignmentModel struct {
	UnitClassAssignmentID        uuid.UUID `json:"unit_class_assignment_id" gorm:"column:unit_class_assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UnitClassAssignmentUnitID    uuid.UUID `json:"unit_class_assignment_unit_id" gorm:"column:unit_class_assignment_unit_id;type:uuid;not null"`
	UnitClassAssignmentClassID   uuid.UUID `json:"unit_class_assignment_class_id" gorm:"column:unit_class_assignment_class_id;type:uuid;not null"`
	UnitClassAssignmentCreatedAt time.Time `json:"unit_class_assignment_created_at" gorm:"column:unit_class_assignment_created_at;not null;autoCreateTime"`
}

func (UnitClassAssignmentModel) TableName() string {
	return "unit_class_assignments"
}
