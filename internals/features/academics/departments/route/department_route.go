package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	deptctrl "kampusku_backend/internals/features/academics/departments/controller"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func DepartmentRoutes(api fiber.Router, db *gorm.DB) {
	h := deptctrl.NewDepartmentController(db)

	depts := api.Group("/departments")
	depts.Get("/", h.ListDepartments)
	depts.Get("/:id", h.GetDepartmentByID)

	adminOnly := authMiddleware.OnlyRoles("Only admins may manage departments", constants.AdminAndAbove...)
	depts.Post("/", adminOnly, h.CreateDepartment)
	depts.Put("/:id", adminOnly, h.UpdateDepartment)
	depts.Delete("/:id", adminOnly, h.DeleteDepartment)
}
