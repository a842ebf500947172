package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	sessctrl "kampusku_backend/internals/features/attendance/sessions/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func SessionRoutes(api fiber.Router, db *gorm.DB) {
	h := sessctrl.NewSessionController(db)

	staffOnly := authMiddleware.OnlyRoles("Only staff may manage sessions", constants.StaffAndAbove...)

	api.Get("/units/:id/sessions", h.ListSessionsByUnit)
	api.Post("/units/:id/sessions", staffOnly, h.CreateSession)

	sessions := api.Group("/sessions")
	sessions.Patch("/:id/status", staffOnly, h.ToggleSessionStatus)
	sessions.Patch("/:id/cancel", staffOnly, h.CancelSession)
	sessions.Get("/:id/students", authMiddleware.OnlyRoles("Only staff may view the roster", constants.StaffAndAbove...), h.ListSessionStudents)

	// Legacy path kept for older clients.
	api.Patch("/unit-sessions/:id/status", staffOnly, h.ToggleSessionStatus)
}
