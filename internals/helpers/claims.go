package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
)

// Claims accessors. The auth middleware stores user_id, user_role and
// department_id in Locals; everything here reads from there only.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user ID")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("user_role").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role")
	}
	return role, nil
}

// GetDepartmentIDFromToken returns nil for roles without a department (admins).
func GetDepartmentIDFromToken(c *fiber.Ctx) *uuid.UUID {
	raw, ok := c.Locals("department_id").(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// IsAdmin reports whether the caller holds an admin-level role.
func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("user_role").(string)
	return role == constants.RoleSuperAdmin || role == constants.RoleAdmin
}
