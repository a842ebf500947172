package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	recctrl "kampusku_backend/internals/features/attendance/records/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func RecordRoutes(api fiber.Router, db *gorm.DB) {
	h := recctrl.NewRecordController(db)

	staffOnly := authMiddleware.OnlyRoles("Only staff may manage records of work", constants.StaffAndAbove...)

	records := api.Group("/record-of-work")
	records.Post("/", staffOnly, h.CreateRecord)
	records.Patch("/:id", staffOnly, h.UpdateRecord)

	api.Get("/sessions/:id/record", staffOnly, h.GetRecordBySession)
}
