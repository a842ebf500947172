package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	classRoute "kampusku_backend/internals/features/academics/classes/route"
	courseRoute "kampusku_backend/internals/features/academics/courses/route"
	deptRoute "kampusku_backend/internals/features/academics/departments/route"
	enrollRoute "kampusku_backend/internals/features/academics/enrollments/route"
	levelRoute "kampusku_backend/internals/features/academics/levels/route"
	sectionRoute "kampusku_backend/internals/features/academics/sections/route"
	termRoute "kampusku_backend/internals/features/academics/terms/route"
	unitRoute "kampusku_backend/internals/features/academics/units/route"
	attendanceRoute "kampusku_backend/internals/features/attendance/attendance/route"
	exportCtrl "kampusku_backend/internals/features/attendance/export/controller"
	recordRoute "kampusku_backend/internals/features/attendance/records/route"
	scheduleRoute "kampusku_backend/internals/features/attendance/schedules/route"
	sessionRoute "kampusku_backend/internals/features/attendance/sessions/route"
	statsCtrl "kampusku_backend/internals/features/stats/controller"
	authRoute "kampusku_backend/internals/features/users/auth/route"
	userRoute "kampusku_backend/internals/features/users/user/route"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature. /api/auth/login and /api/auth/refresh are
// the only endpoints outside the auth middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(api, db)

	deptRoute.DepartmentRoutes(api, db)
	sectionRoute.SectionRoutes(api, db)
	levelRoute.LevelRoutes(api, db)
	courseRoute.CourseRoutes(api, db)
	termRoute.TermRoutes(api, db)
	unitRoute.UnitRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	enrollRoute.EnrollmentRoutes(api, db)

	scheduleRoute.ScheduleRoutes(api, db)
	sessionRoute.SessionRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	recordRoute.RecordRoutes(api, db)

	staffOnly := authMiddleware.OnlyRoles("Only staff may export registers", constants.StaffAndAbove...)
	export := exportCtrl.NewExportController(db)
	api.Get("/units/:id/attendance-register", staffOnly, export.AttendanceRegister)

	stats := statsCtrl.NewStatsController(db)
	api.Get("/dashboard/summary", authMiddleware.OnlyRoles("Only staff may view the dashboard", constants.StaffAndAbove...), stats.DashboardSummary)
}
