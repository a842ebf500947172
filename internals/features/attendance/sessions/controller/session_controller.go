package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/attendance/sessions/dto"
	"kampusku_backend/internals/features/attendance/sessions/model"
	helper "kampusku_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

var validate = validator.New()

// POST /api/units/:id/sessions creates a one-off session without a schedule
// behind it.
func (ctl *SessionController) CreateSession(c *fiber.Ctx) error {
	unitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.UnitSessionEndTime <= req.UnitSessionStartTime {
		return helper.JsonError(c, fiber.StatusBadRequest, "end time must be after start time")
	}

	m := req.ToModel(unitID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	return helper.JsonCreated(c, "Session created", m)
}

// GET /api/units/:id/sessions?week=&from=&to=
func (ctl *SessionController) ListSessionsByUnit(c *fiber.Ctx) error {
	unitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}

	q := ctl.DB.Model(&model.UnitSessionModel{}).
		Where("unit_session_unit_id = ?", unitID)

	if week := c.QueryInt("week", 0); week > 0 {
		q = q.Where("unit_session_week_number = ?", week)
	}
	if from := c.Query("from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date")
		}
		q = q.Where("unit_session_date >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date")
		}
		q = q.Where("unit_session_date <= ?", d)
	}

	var sessions []model.UnitSessionModel
	if err := q.Order("unit_session_date ASC, unit_session_start_time ASC").Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}
	return helper.JsonOK(c, "OK", sessions)
}

// PATCH /api/sessions/:id/status flips the active flag.
func (ctl *SessionController) ToggleSessionStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var m model.UnitSessionModel
	if err := ctl.DB.First(&m, "unit_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}

	m.UnitSessionIsActive = !m.UnitSessionIsActive
	now := time.Now()
	m.UnitSessionUpdatedAt = &now
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update session")
	}
	return helper.JsonOK(c, "Session status updated", m)
}

// PATCH /api/sessions/:id/cancel. Cancellation is terminal; attendance for a
// cancelled session is refused at marking time.
func (ctl *SessionController) CancelSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var m model.UnitSessionModel
	if err := ctl.DB.First(&m, "unit_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}
	if m.UnitSessionIsCancelled {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session is already cancelled")
	}

	now := time.Now()
	m.UnitSessionIsCancelled = true
	m.UnitSessionIsActive = false
	m.UnitSessionUpdatedAt = &now
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel session")
	}
	return helper.JsonOK(c, "Session cancelled", m)
}

// GET /api/sessions/:id/students returns the session roster. Students come
// from the active enrollments of every class the session's unit is assigned
// to; attendance is LEFT JOINed so unmarked students still appear.
func (ctl *SessionController) ListSessionStudents(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var sess model.UnitSessionModel
	if err := ctl.DB.First(&sess, "unit_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}

	var rows []dto.SessionStudentResponse
	err = ctl.DB.
		Table("unit_class_assignments AS uca").
		Select(`u.user_id AS student_id,
			u.user_full_name AS student_full_name,
			u.user_admission_number AS student_admission_number,
			a.attendance_id,
			a.attendance_is_present`).
		Joins("JOIN enrollments e ON e.enrollment_class_id = uca.unit_class_assignment_class_id AND e.enrollment_status = 'active'").
		Joins("JOIN users u ON u.user_id = e.enrollment_student_id").
		Joins("LEFT JOIN attendance a ON a.attendance_session_id = ? AND a.attendance_student_id = u.user_id", sess.UnitSessionID).
		Where("uca.unit_class_assignment_unit_id = ?", sess.UnitSessionUnitID).
		Order("u.user_full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch session roster")
	}
	return helper.JsonOK(c, "OK", rows)
}
