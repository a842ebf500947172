package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	coursectrl "kampusku_backend/internals/features/academics/courses/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	h := coursectrl.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", h.ListCourses)
	courses.Get("/:id", h.GetCourseByID)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage courses", constants.AdminAndAbove...)
	courses.Post("/", adminOnly, h.CreateCourse)
	courses.Put("/:id", adminOnly, h.UpdateCourse)
	courses.Delete("/:id", adminOnly, h.DeleteCourse)
}
