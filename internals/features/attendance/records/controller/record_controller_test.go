package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kampusku_backend/internals/features/attendance/records/model"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
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
	require.NoError(t, db.AutoMigrate(&sessionModel.UnitSessionModel{}, &model.RecordOfWorkModel{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM records_of_work")
		db.Exec("DELETE FROM unit_sessions")
	})
	return db
}

func makeSession(t *testing.T, db *gorm.DB) sessionModel.UnitSessionModel {
	t.Helper()
	s := sessionModel.UnitSessionModel{
		UnitSessionUnitID:    uuid.New(),
		UnitSessionDate:      time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		UnitSessionStartTime: "08:00",
		UnitSessionEndTime:   "10:00",
		UnitSessionTermID:    uuid.New(),
		UnitSessionIsActive:  true,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

// recordApp mounts CreateRecord behind a stub that seeds the teacher claims.
func recordApp(db *gorm.DB, teacherID uuid.UUID) *fiber.App {
	ctl := NewRecordController(db)
	app := fiber.New()
	app.Post("/record-of-work", func(c *fiber.Ctx) error {
		c.Locals("user_id", teacherID.String())
		c.Locals("user_role", "teacher")
		return c.Next()
	}, ctl.CreateRecord)
	return app
}

func postRecord(t *testing.T, app *fiber.App, sessionID uuid.UUID, topic string) *http.Response {
	t.Helper()
	body, err := json.Marshal(fiber.Map{
		"record_session_id": sessionID,
		"record_topic":      topic,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/record-of-work", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateRecordRejectsSecondForSameSession(t *testing.T) {
	db := testDB(t)
	app := recordApp(db, uuid.New())
	sess := makeSession(t, db)

	first := postRecord(t, app, sess.UnitSessionID, "Control flow")
	assert.Equal(t, fiber.StatusCreated, first.StatusCode)

	second := postRecord(t, app, sess.UnitSessionID, "Control flow revisited")
	assert.Equal(t, fiber.StatusBadRequest, second.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.RecordOfWorkModel{}).
		Where("record_session_id = ?", sess.UnitSessionID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateRecordAllowsOnePerSession(t *testing.T) {
	db := testDB(t)
	app := recordApp(db, uuid.New())

	a := makeSession(t, db)
	b := makeSession(t, db)

	assert.Equal(t, fiber.StatusCreated, postRecord(t, app, a.UnitSessionID, "Pointers").StatusCode)
	assert.Equal(t, fiber.StatusCreated, postRecord(t, app, b.UnitSessionID, "Slices").StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.RecordOfWorkModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
