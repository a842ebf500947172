package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// storeClaimsToLocals copies the identity claims into the request Locals.
// department_id may be absent (admins have none).
func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) error {
	rawID, ok := claims["user_id"].(string)
	if !ok || rawID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
	}
	if _, err := uuid.Parse(rawID); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid user ID")
	}
	c.Locals("user_id", rawID)

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role claim")
	}
	c.Locals("user_role", role)

	if dept, ok := claims["department_id"].(string); ok && dept != "" {
		c.Locals("department_id", dept)
	}
	return nil
}
