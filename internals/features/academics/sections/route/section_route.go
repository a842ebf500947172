package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	sectionctrl "kampusku_backend/internals/features/academics/sections/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func SectionRoutes(api fiber.Router, db *gorm.DB) {
	h := sectionctrl.NewSectionController(db)

	sections := api.Group("/sections")
	sections.Get("/", h.ListSections)
	sections.Get("/:id", h.GetSectionByID)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage sections", constants.AdminAndAbove...)
	sections.Post("/", adminOnly, h.CreateSection)
	sections.Put("/:id", adminOnly, h.UpdateSection)
	sections.Delete("/:id", adminOnly, h.DeleteSection)
}
