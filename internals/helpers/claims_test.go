package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
)

// runWithLocals executes check inside a handler after seeding Locals.
func runWithLocals(t *testing.T, locals map[string]interface{}, check func(c *fiber.Ctx)) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		for k, v := range locals {
			c.Locals(k, v)
		}
		check(c)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetUserIDFromToken(t *testing.T) {
	id := uuid.New()

	runWithLocals(t, map[string]interface{}{"user_id": id.String()}, func(c *fiber.Ctx) {
		got, err := GetUserIDFromToken(c)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})

	runWithLocals(t, nil, func(c *fiber.Ctx) {
		_, err := GetUserIDFromToken(c)
		assert.Error(t, err)
	})

	runWithLocals(t, map[string]interface{}{"user_id": "not-a-uuid"}, func(c *fiber.Ctx) {
		_, err := GetUserIDFromToken(c)
		assert.Error(t, err)
	})
}

func TestGetRoleFromToken(t *testing.T) {
	runWithLocals(t, map[string]interface{}{"user_role": constants.RoleTeacher}, func(c *fiber.Ctx) {
		role, err := GetRoleFromToken(c)
		assert.NoError(t, err)
		assert.Equal(t, constants.RoleTeacher, role)
	})

	runWithLocals(t, nil, func(c *fiber.Ctx) {
		_, err := GetRoleFromToken(c)
		assert.Error(t, err)
	})
}

func TestGetDepartmentIDFromToken(t *testing.T) {
	dept := uuid.New()

	runWithLocals(t, map[string]interface{}{"department_id": dept.String()}, func(c *fiber.Ctx) {
		got := GetDepartmentIDFromToken(c)
		require.NotNil(t, got)
		assert.Equal(t, dept, *got)
	})

	// admins carry no department claim
	runWithLocals(t, nil, func(c *fiber.Ctx) {
		assert.Nil(t, GetDepartmentIDFromToken(c))
	})
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{constants.RoleSuperAdmin, true},
		{constants.RoleAdmin, true},
		{constants.RoleHOD, false},
		{constants.RoleTeacher, false},
		{constants.RoleStudent, false},
	}
	for _, tt := range tests {
		runWithLocals(t, map[string]interface{}{"user_role": tt.role}, func(c *fiber.Ctx) {
			assert.Equal(t, tt.want, IsAdmin(c), tt.role)
		})
	}
}
