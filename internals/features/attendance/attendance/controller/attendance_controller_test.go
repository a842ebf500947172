package controller

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kampusku_backend/internals/features/attendance/attendance/model"
)

// testDB opens TEST_DATABASE_URL or skips. The (session_id, student_id)
// unique index is created too since the upsert targets it.
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
	require.NoError(t, db.AutoMigrate(&model.AttendanceModel{}))
	require.NoError(t, db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_session_student
		ON attendance (attendance_session_id, attendance_student_id)`).Error)

	t.Cleanup(func() {
		db.Exec("DELETE FROM attendance")
	})
	return db
}

func mark(sessionID, studentID uuid.UUID, isPresent bool, at time.Time) *model.AttendanceModel {
	return &model.AttendanceModel{
		AttendanceSessionID:       sessionID,
		AttendanceStudentID:       studentID,
		AttendanceIsPresent:       isPresent,
		AttendanceMarkedByTeacher: true,
		AttendanceMarkedAt:        at,
	}
}

func TestUpsertMarkKeepsOneRowWithLatestValue(t *testing.T) {
	db := testDB(t)

	sessionID := uuid.New()
	studentID := uuid.New()

	require.NoError(t, upsertMark(db, mark(sessionID, studentID, true, time.Now())))
	require.NoError(t, upsertMark(db, mark(sessionID, studentID, false, time.Now())))

	var rows []model.AttendanceModel
	require.NoError(t, db.
		Where("attendance_session_id = ? AND attendance_student_id = ?", sessionID, studentID).
		Find(&rows).Error)

	require.Len(t, rows, 1)
	assert.False(t, rows[0].AttendanceIsPresent)
}

func TestUpdateAttendanceRequiresCaller(t *testing.T) {
	// no claims in Locals: the handler must refuse before touching storage
	ctl := NewAttendanceController(nil)
	app := fiber.New()
	app.Patch("/attendance/:id", ctl.UpdateAttendance)

	req := httptest.NewRequest(http.MethodPatch, "/attendance/"+uuid.NewString(),
		strings.NewReader(`{"attendance_is_present":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpsertMarkSeparatePairsStaySeparate(t *testing.T) {
	db := testDB(t)

	sessionID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, upsertMark(db, mark(sessionID, alice, true, time.Now())))
	require.NoError(t, upsertMark(db, mark(sessionID, bob, false, time.Now())))
	require.NoError(t, upsertMark(db, mark(uuid.New(), alice, true, time.Now())))

	var count int64
	require.NoError(t, db.Model(&model.AttendanceModel{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
