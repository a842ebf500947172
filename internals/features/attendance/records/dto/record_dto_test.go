package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSONList(t *testing.T) {
	assert.Nil(t, ToJSONList(nil))
	assert.Equal(t, "[]", string(ToJSONList([]string{})))
	assert.JSONEq(t, `["loops","slices"]`, string(ToJSONList([]string{"loops", "slices"})))
}

func TestCreateRecordRequestToModel(t *testing.T) {
	teacherID := uuid.New()
	req := CreateRecordRequest{
		RecordSessionID: uuid.New(),
		RecordTopic:     "Control flow",
		RecordSubtopics: []string{"loops", "branches"},
	}

	m := req.ToModel(teacherID)
	require.NotNil(t, m)
	assert.Equal(t, teacherID, m.RecordTeacherID)
	assert.Equal(t, "Control flow", m.RecordTopic)
	assert.JSONEq(t, `["loops","branches"]`, string(m.RecordSubtopics))
	assert.Nil(t, m.RecordResources)
	assert.Nil(t, m.RecordAssignment)
}
