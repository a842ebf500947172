package dto

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kampusku_backend/internals/features/attendance/records/model"
)

type CreateRecordRequest struct {
	RecordSessionID   uuid.UUID `json:"record_session_id" validate:"required"`
	RecordTopic       string    `json:"record_topic" validate:"required,max=200"`
	RecordSubtopics   []string  `json:"record_subtopics" validate:"omitempty,dive,max=200"`
	RecordDescription *string   `json:"record_description"`
	RecordResources   []string  `json:"record_resources" validate:"omitempty,dive,max=300"`
	RecordAssignment  *string   `json:"record_assignment"`
	RecordNotes       *string   `json:"record_notes"`
}

func (r *CreateRecordRequest) ToModel(teacherID uuid.UUID) *model.RecordOfWorkModel {
	return &model.RecordOfWorkModel{
		RecordSessionID:   r.RecordSessionID,
		RecordTeacherID:   teacherID,
		RecordTopic:       r.RecordTopic,
		RecordSubtopics:   ToJSONList(r.RecordSubtopics),
		RecordDescription: r.RecordDescription,
		RecordResources:   ToJSONList(r.RecordResources),
		RecordAssignment:  r.RecordAssignment,
		RecordNotes:       r.RecordNotes,
	}
}

type UpdateRecordRequest struct {
	RecordTopic       *string  `json:"record_topic" validate:"omitempty,max=200"`
	RecordSubtopics   []string `json:"record_subtopics" validate:"omitempty,dive,max=200"`
	RecordDescription *string  `json:"record_description"`
	RecordResources   []string `json:"record_resources" validate:"omitempty,dive,max=300"`
	RecordAssignment  *string  `json:"record_assignment"`
	RecordNotes       *string  `json:"record_notes"`
}

// ToJSONList marshals a string list into a jsonb column value; nil stays nil.
func ToJSONList(items []string) datatypes.JSON {
	if items == nil {
		return nil
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}
