package controller

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kampusku_backend/internals/features/academics/departments/model"
)

// testDB opens TEST_DATABASE_URL or skips, pinned to a private schema on a
// single connection so the absence of the users relation is guaranteed
// without touching other packages' tables.
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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("CREATE SCHEMA IF NOT EXISTS dept_ctl_test").Error)
	require.NoError(t, db.Exec("SET search_path TO dept_ctl_test").Error)
	require.NoError(t, db.AutoMigrate(&model.DepartmentModel{}))

	t.Cleanup(func() {
		db.Exec("DROP SCHEMA IF EXISTS dept_ctl_test CASCADE")
	})
	return db
}

func TestListDepartmentsSurfacesHeadJoinFailure(t *testing.T) {
	db := testDB(t)

	// no users relation in this schema: the head-name join must turn into a
	// 500, not an empty head on every row
	require.NoError(t, db.Create(&model.DepartmentModel{
		DepartmentName: "Computer Science",
		DepartmentCode: "CS",
	}).Error)

	ctl := NewDepartmentController(db)
	app := fiber.New()
	app.Get("/departments", ctl.ListDepartments)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/departments", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
