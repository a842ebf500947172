package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordOfWorkModel captures what was actually taught in a session. One row
// per session, backed by a unique index on record_session_id.
type RecordOfWorkModel struct {
	RecordID          uuid.UUID      `json:"record_id" gorm:"column:record_id;type:uuid;default:gen_random_uuid();primaryKey"`
	RecordSessionID   uuid.UUID      `json:"record_session_id" gorm:"column:record_session_id;type:uuid;not null"`
	RecordTeacherID   uuid.UUID      `json:"record_teacher_id" gorm:"column:record_teacher_id;type:uuid;not null"`
	RecordTopic       string         `json:"record_topic" gorm:"column:record_topic;size:200;not null"`
	RecordSubtopics   datatypes.JSON `json:"record_subtopics,omitempty" gorm:"column:record_subtopics;type:jsonb"`
	RecordDescription *string        `json:"record_description,omitempty" gorm:"column:record_description;type:text"`
	RecordResources   datatypes.JSON `json:"record_resources,omitempty" gorm:"column:record_resources;type:jsonb"`
	RecordAssignment  *string        `json:"record_assignment,omitempty" gorm:"column:record_assignment;type:text"`
	RecordNotes       *string        `json:"record_notes,omitempty" gorm:"column:record_notes;type:text"`
	RecordCreatedAt   time.Time      `json:"record_created_at" gorm:"column:record_created_at;not null;autoCreateTime"`
	RecordUpdatedAt   *time.Time     `json:"record_updated_at,omitempty" gorm:"column:record_updated_at"`
}

func (RecordOfWorkModel) TableName() string {
	return "records_of_work"
}
