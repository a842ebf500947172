package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	schedctrl "kampusku_backend/internals/features/attendance/schedules/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func ScheduleRoutes(api fiber.Router, db *gorm.DB) {
	h := schedctrl.NewScheduleController(db)

	schedules := api.Group("/schedules")
	schedules.Get("/", h.ListSchedules)

	staffOnly := authMiddleware.OnlyRoles("Only staff may manage schedules", constants.StaffAndAbove...)
	schedules.Post("/", staffOnly, h.CreateSchedule)
	schedules.Patch("/:id/status", staffOnly, h.ToggleScheduleStatus)
	schedules.Post("/:id/generate", staffOnly, h.GenerateSession)
	schedules.Delete("/:id", staffOnly, h.DeleteSchedule)

	api.Get("/units/:id/schedules", h.ListSchedulesByUnit)
}
