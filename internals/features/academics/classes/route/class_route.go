package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	classctrl "kampusku_backend/internals/features/academics/classes/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	h := classctrl.NewClassController(db)

	classes := api.Group("/classes")
	classes.Get("/", h.ListClasses)
	classes.Get("/:id", h.GetClassByID)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage classes", constants.AdminAndAbove...)
	classes.Post("/", adminOnly, h.CreateClass)
	classes.Patch("/:id", adminOnly, h.UpdateClass)
	classes.Delete("/:id", adminOnly, h.DeleteClass)
}
