package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authctrl "kampusku_backend/internals/features/users/auth/controller"
	"kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

// AuthRoutes: login/refresh are public (rate-limited), logout/me require auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := authctrl.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	auth.Post("/refresh", h.Refresh)

	auth.Post("/logout", authMiddleware.AuthMiddleware(db), h.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(db), h.Me)
}
