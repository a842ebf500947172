package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	unitctrl "kampusku_backend/internals/features/academics/units/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func UnitRoutes(api fiber.Router, db *gorm.DB) {
	h := unitctrl.NewUnitController(db)

	units := api.Group("/units")
	units.Get("/", h.ListUnits)
	units.Get("/:id", h.GetUnitByID)

	staffOnly := authMiddleware.OnlyRoles("Only staff may manage units", constants.StaffAndAbove...)
	units.Post("/", staffOnly, h.CreateUnit)
	units.Put("/:id", staffOnly, h.UpdateUnit)
	units.Delete("/:id",
		authMiddleware.OnlyRoles("Only admins may delete units", constants.AdminAndAbove...),
		h.DeleteUnit)

	// unit ↔ class assignment lives under /classes/:id/units
	api.Get("/classes/:id/units", h.ListUnitsByClass)
	api.Post("/classes/:id/units",
		authMiddleware.OnlyRoles("Only admins may assign units", constants.AdminAndAbove...),
		h.AssignUnitsToClass)
}
