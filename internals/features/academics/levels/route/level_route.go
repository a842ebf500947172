package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	levelctrl "kampusku_backend/internals/features/academics/levels/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func LevelRoutes(api fiber.Router, db *gorm.DB) {
	h := levelctrl.NewLevelController(db)

	levels := api.Group("/levels")
	levels.Get("/", h.ListLevels)
	levels.Get("/:id", h.GetLevelByID)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage levels", constants.AdminAndAbove...)
	levels.Post("/", adminOnly, h.CreateLevel)
	levels.Put("/:id", adminOnly, h.UpdateLevel)
	levels.Delete("/:id", adminOnly, h.DeleteLevel)
}
