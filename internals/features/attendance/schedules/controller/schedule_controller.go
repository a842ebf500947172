package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	termModel "kampusku_backend/internals/features/academics/terms/model"
	"kampusku_backend/internals/features/attendance/schedules/dto"
	"kampusku_backend/internals/features/attendance/schedules/model"
	"kampusku_backend/internals/features/attendance/schedules/service"
	helper "kampusku_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

// POST /api/schedules
func (ctl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.UnitScheduleEndTime <= req.UnitScheduleStartTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "end time must be after start time")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create schedule")
	}
	return helper.JsonCreated(c, "Schedule created", m)
}

// GET /api/schedules?term_id=
func (ctl *ScheduleController) ListSchedules(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.UnitScheduleModel{})
	if term := c.Query("term_id"); term != "" {
		termID, err := uuid.Parse(term)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term_id")
		}
		q = q.Where("unit_schedule_term_id = ?", termID)
	}
	var scheds []model.UnitScheduleModel
	if err := q.Order("unit_schedule_day_of_week ASC, unit_schedule_start_time ASC").Find(&scheds).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}
	return helper.JsonOK(c, "OK", scheds)
}

// GET /api/units/:id/schedules
func (ctl *ScheduleController) ListSchedulesByUnit(c *fiber.Ctx) error {
	unitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}
	var scheds []model.UnitScheduleModel
	if err := ctl.DB.
		Where("unit_schedule_unit_id = ?", unitID).
		Order("unit_schedule_day_of_week ASC, unit_schedule_start_time ASC").
		Find(&scheds).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch unit schedules")
	}
	return helper.JsonOK(c, "OK", scheds)
}

// PATCH /api/schedules/:id/status flips the active flag.
func (ctl *ScheduleController) ToggleScheduleStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var m model.UnitScheduleModel
	if err := ctl.DB.First(&m, "unit_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}

	m.UnitScheduleIsActive = !m.UnitScheduleIsActive
	now := time.Now()
	m.UnitScheduleUpdatedAt = &now
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update schedule")
	}
	return helper.JsonOK(c, "Schedule status updated", m)
}

// DELETE /api/schedules/:id
func (ctl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}
	res := ctl.DB.Delete(&model.UnitScheduleModel{}, "unit_schedule_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	return helper.JsonDeleted(c)
}

// POST /api/schedules/:id/generate materializes this week's session for one
// schedule. Idempotent.
func (ctl *ScheduleController) GenerateSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var sched model.UnitScheduleModel
	if err := ctl.DB.First(&sched, "unit_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedule")
	}
	if !sched.UnitScheduleIsActive {
		return helper.JsonError(c, fiber.StatusBadRequest, "Schedule is inactive")
	}

	var term termModel.AcademicTermModel
	if err := ctl.DB.First(&term, "term_id = ?", sched.UnitScheduleTermID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve term")
	}

	session, err := service.MaterializeSchedule(ctl.DB, &sched, service.WeekStart(time.Now()), term.TermStartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate session")
	}
	return helper.JsonCreated(c, "Session generated", session)
}
