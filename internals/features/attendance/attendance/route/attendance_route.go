package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	attctrl "kampusku_backend/internals/features/attendance/attendance/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	h := attctrl.NewAttendanceController(db)

	staffOnly := authMiddleware.OnlyRoles("Only staff may manage attendance", constants.StaffAndAbove...)

	attendance := api.Group("/attendance")
	// Single mark is open to all roles; the controller restricts students to
	// self-marking.
	attendance.Post("/", h.MarkAttendance)
	attendance.Post("/bulk", staffOnly, h.BulkMarkAttendance)
	attendance.Patch("/:id", staffOnly, h.UpdateAttendance)
	attendance.Get("/student/:id", h.ListAttendanceByStudent)

	api.Get("/sessions/:id/attendance", staffOnly, h.ListAttendanceBySession)
	api.Get("/students/:id/active-sessions", h.ListActiveSessionsForStudent)
}
