package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
)

func requestWithRole(t *testing.T, role string, handler fiber.Handler) int {
	t.Helper()

	app := fiber.New()
	app.Get("/guarded",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("user_role", role)
			}
			return c.Next()
		},
		handler,
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestOnlyRoles(t *testing.T) {
	guard := OnlyRoles("staff only", constants.StaffAndAbove...)

	tests := []struct {
		name string
		role string
		want int
	}{
		{"super admin passes", constants.RoleSuperAdmin, fiber.StatusOK},
		{"admin passes", constants.RoleAdmin, fiber.StatusOK},
		{"hod passes", constants.RoleHOD, fiber.StatusOK},
		{"teacher passes", constants.RoleTeacher, fiber.StatusOK},
		{"student blocked", constants.RoleStudent, fiber.StatusForbidden},
		{"unknown role blocked", "visitor", fiber.StatusForbidden},
		{"missing role unauthorized", "", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requestWithRole(t, tt.role, guard))
		})
	}
}

func TestRoleMiddlewareDefaultMessage(t *testing.T) {
	guard := RoleMiddlewareWithCustomError([]string{constants.RoleAdmin}, "")
	assert.Equal(t, fiber.StatusForbidden, requestWithRole(t, constants.RoleStudent, guard))
}
