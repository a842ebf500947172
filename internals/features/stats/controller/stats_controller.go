package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	classModel "kampusku_backend/internals/features/academics/classes/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	deptModel "kampusku_backend/internals/features/academics/departments/model"
	enrollModel "kampusku_backend/internals/features/academics/enrollments/model"
	termService "kampusku_backend/internals/features/academics/terms/service"
	unitModel "kampusku_backend/internals/features/academics/units/model"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type dashboardSummary struct {
	Departments       int64   `json:"departments"`
	Courses           int64   `json:"courses"`
	Units             int64   `json:"units"`
	Classes           int64   `json:"classes"`
	Students          int64   `json:"students"`
	Teachers          int64   `json:"teachers"`
	ActiveEnrollments int64   `json:"active_enrollments"`
	SessionsToday     int64   `json:"sessions_today"`
	ActiveTermName    *string `json:"active_term_name"`
}

// GET /api/dashboard/summary
func (ctl *StatsController) DashboardSummary(c *fiber.Ctx) error {
	var out dashboardSummary

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&out.Departments, ctl.DB.Model(&deptModel.DepartmentModel{})},
		{&out.Courses, ctl.DB.Model(&courseModel.CourseModel{})},
		{&out.Units, ctl.DB.Model(&unitModel.UnitModel{})},
		{&out.Classes, ctl.DB.Model(&classModel.ClassModel{})},
		{&out.Students, ctl.DB.Model(&userModel.UserModel{}).Where("user_role = ? AND user_is_active = TRUE", constants.RoleStudent)},
		{&out.Teachers, ctl.DB.Model(&userModel.UserModel{}).Where("user_role = ? AND user_is_active = TRUE", constants.RoleTeacher)},
		{&out.ActiveEnrollments, ctl.DB.Model(&enrollModel.EnrollmentModel{}).Where("enrollment_status = ?", enrollModel.StatusActive)},
		{&out.SessionsToday, ctl.DB.Model(&sessionModel.UnitSessionModel{}).Where("unit_session_date = ? AND unit_session_is_cancelled = FALSE", time.Now().Format("2006-01-02"))},
	}
	for _, q := range counts {
		if err := q.query.Count(q.dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard summary")
		}
	}

	term, err := termService.ActiveTerm(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve active term")
	}
	if term != nil {
		out.ActiveTermName = &term.TermName
	}

	return helper.JsonOK(c, "OK", out)
}
