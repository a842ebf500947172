package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	termctrl "kampusku_backend/internals/features/academics/terms/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func TermRoutes(api fiber.Router, db *gorm.DB) {
	h := termctrl.NewTermController(db)

	terms := api.Group("/academic-terms")
	terms.Get("/", h.ListTerms)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage academic terms", constants.AdminAndAbove...)
	terms.Post("/", adminOnly, h.CreateTerm)
	terms.Patch("/:id", adminOnly, h.UpdateTerm)
}
