package service

import (
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kampusku_backend/internals/features/academics/enrollments/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.EnrollmentModel{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM enrollments")
	})
	return db
}

func TestEnrollStudentsAllNew(t *testing.T) {
	db := testDB(t)

	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	res, err := EnrollStudents(db, students, uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.Len(t, res.Created, 3)
	assert.Empty(t, res.Errors)
	for _, e := range res.Created {
		assert.Equal(t, model.StatusActive, e.EnrollmentStatus)
	}
}

func TestEnrollStudentsRejectsSecondActive(t *testing.T) {
	db := testDB(t)

	student := uuid.New()
	_, err := EnrollStudents(db, []uuid.UUID{student}, uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	// same student into a different class while still active elsewhere
	res, err := EnrollStudents(db, []uuid.UUID{student}, uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.Empty(t, res.Created)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "active enrollment")
}

func TestEnrollStudentsRejectsDuplicateInClass(t *testing.T) {
	db := testDB(t)

	student := uuid.New()
	classID := uuid.New()
	courseID := uuid.New()
	termID := uuid.New()

	_, err := EnrollStudents(db, []uuid.UUID{student}, classID, courseID, termID)
	require.NoError(t, err)

	// drop the active one so the already-in-class check is what fires
	require.NoError(t, db.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ?", student).
		Update("enrollment_status", model.StatusDropped).Error)

	res, err := EnrollStudents(db, []uuid.UUID{student}, classID, courseID, termID)
	require.NoError(t, err)

	assert.Empty(t, res.Created)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "already enrolled in this class")
}

func TestEnrollStudentsMixedOutcome(t *testing.T) {
	db := testDB(t)

	blocked := uuid.New()
	_, err := EnrollStudents(db, []uuid.UUID{blocked}, uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	fresh := uuid.New()
	res, err := EnrollStudents(db, []uuid.UUID{blocked, fresh}, uuid.New(), uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.Len(t, res.Created, 1)
	assert.Equal(t, fresh, res.Created[0].EnrollmentStudentID)
	assert.Len(t, res.Errors, 1)
}
