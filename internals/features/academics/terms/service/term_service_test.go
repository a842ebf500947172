package service

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kampusku_backend/internals/features/academics/terms/model"
)

// testDB opens TEST_DATABASE_URL or skips. Tables are migrated fresh and
// cleaned per test.
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
	require.NoError(t, db.AutoMigrate(&model.AcademicTermModel{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM academic_terms")
	})
	return db
}

func makeTerm(t *testing.T, db *gorm.DB, name string, active bool) model.AcademicTermModel {
	t.Helper()
	term := model.AcademicTermModel{
		TermName:      name,
		TermStartDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		TermEndDate:   time.Date(2026, 4, 24, 0, 0, 0, 0, time.UTC),
		TermWeekCount: 14,
		TermIsActive:  active,
	}
	require.NoError(t, db.Create(&term).Error)
	return term
}

func TestActivateTermDeactivatesOthers(t *testing.T) {
	db := testDB(t)

	a := makeTerm(t, db, "Term A", true)
	b := makeTerm(t, db, "Term B", false)

	activated, err := ActivateTerm(db, b.TermID)
	require.NoError(t, err)
	assert.True(t, activated.TermIsActive)

	var count int64
	require.NoError(t, db.Model(&model.AcademicTermModel{}).
		Where("term_is_active = TRUE").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var oldActive model.AcademicTermModel
	require.NoError(t, db.First(&oldActive, "term_id = ?", a.TermID).Error)
	assert.False(t, oldActive.TermIsActive)
}

func TestActivateTermRepairsDrift(t *testing.T) {
	db := testDB(t)

	// two actives at once should never happen, but activation must still
	// converge to one
	makeTerm(t, db, "Drift A", true)
	makeTerm(t, db, "Drift B", true)
	target := makeTerm(t, db, "Target", false)

	_, err := ActivateTerm(db, target.TermID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.AcademicTermModel{}).
		Where("term_is_active = TRUE").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestActivateTermNotFound(t *testing.T) {
	db := testDB(t)

	_, err := ActivateTerm(db, uuid.New())
	assert.ErrorIs(t, err, ErrTermNotFound)
}

func TestActiveTerm(t *testing.T) {
	db := testDB(t)

	got, err := ActiveTerm(db)
	require.NoError(t, err)
	assert.Nil(t, got)

	term := makeTerm(t, db, "Current", true)
	got, err = ActiveTerm(db)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, term.TermID, got.TermID)
}
