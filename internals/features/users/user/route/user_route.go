package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	userctrl "kampusku_backend/internals/features/users/user/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	h := userctrl.NewUserController(db)

	users := api.Group("/users",
		authMiddleware.OnlyRoles("Only admins may manage users", constants.AdminAndAbove...))

	users.Get("/", h.ListUsers)
	users.Post("/", h.CreateUser)
	users.Get("/:id", h.GetUserByID)
	users.Patch("/:id", h.UpdateUser)
	users.Delete("/:id",
		authMiddleware.OnlyRoles("Only the super admin may delete users", constants.RoleSuperAdmin),
		h.DeleteUser)
}
