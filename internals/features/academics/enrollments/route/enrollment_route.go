package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	enrollctrl "kampusku_backend/internals/features/academics/enrollments/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	h := enrollctrl.NewEnrollmentController(db)

	staffOnly := authMiddleware.OnlyRoles("Only staff may manage enrollments", constants.StaffAndAbove...)

	enrollments := api.Group("/enrollments")
	enrollments.Get("/", h.ListEnrollments)
	enrollments.Post("/", staffOnly, h.CreateEnrollments)
	enrollments.Patch("/:id", staffOnly, h.UpdateEnrollment)
	enrollments.Delete("/:id",
		authMiddleware.OnlyRoles("Only admins may delete enrollments", constants.AdminAndAbove...),
		h.DeleteEnrollment)

	api.Get("/classes/:id/enrollments", h.ListEnrollmentsByClass)
}
