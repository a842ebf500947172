package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/attendance/attendance/dto"
	"kampusku_backend/internals/features/attendance/attendance/model"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
	helper "kampusku_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

// markableSession loads the session and refuses marking against rows that
// cannot take attendance.
func (ctl *AttendanceController) markableSession(sessionID uuid.UUID) (*sessionModel.UnitSessionModel, string) {
	var sess sessionModel.UnitSessionModel
	if err := ctl.DB.First(&sess, "unit_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "Session not found"
		}
		return nil, "Failed to fetch session"
	}
	if sess.UnitSessionIsCancelled {
		return nil, "Session is cancelled"
	}
	if !sess.UnitSessionIsActive {
		return nil, "Session is inactive"
	}
	return &sess, ""
}

// upsertMark writes one attendance row over the (session_id, student_id)
// unique index. Atomic: concurrent marks for the same pair converge on one
// row holding the latest value.
func upsertMark(tx *gorm.DB, m *model.AttendanceModel) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attendance_session_id"}, {Name: "attendance_student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_is_present",
			"attendance_marked_by_self",
			"attendance_marked_by_teacher",
			"attendance_marked_at",
			"attendance_updated_by",
			"attendance_updated_at",
		}),
	}).Create(m).Error
}

// POST /api/attendance. Teachers mark anyone; students may only mark
// themselves present, and only for a session running today.
func (ctl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sess, msg := ctl.markableSession(req.AttendanceSessionID)
	if sess == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	self := role == constants.RoleStudent
	if self {
		if req.AttendanceStudentID != callerID {
			return helper.JsonError(c, fiber.StatusForbidden, "Students may only mark their own attendance")
		}
		if !*req.AttendanceIsPresent {
			return helper.JsonError(c, fiber.StatusBadRequest, "Self-marking only records presence")
		}
		today := time.Now().Format("2006-01-02")
		if sess.UnitSessionDate.Format("2006-01-02") != today {
			return helper.JsonError(c, fiber.StatusBadRequest, "Session is not running today")
		}
	}

	now := time.Now()
	m := model.AttendanceModel{
		AttendanceSessionID:       req.AttendanceSessionID,
		AttendanceStudentID:       req.AttendanceStudentID,
		AttendanceIsPresent:       *req.AttendanceIsPresent,
		AttendanceMarkedBySelf:    self,
		AttendanceMarkedByTeacher: !self,
		AttendanceMarkedAt:        now,
		AttendanceUpdatedBy:       &callerID,
		AttendanceUpdatedAt:       &now,
	}
	if err := upsertMark(ctl.DB, &m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
	}
	return helper.JsonCreated(c, "Attendance recorded", m)
}

// PATCH /api/attendance/:id
func (ctl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var m model.AttendanceModel
	if err := ctl.DB.First(&m, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance record")
	}

	now := time.Now()
	m.AttendanceIsPresent = *req.AttendanceIsPresent
	m.AttendanceMarkedByTeacher = true
	m.AttendanceUpdatedBy = &callerID
	m.AttendanceUpdatedAt = &now
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance record")
	}
	return helper.JsonOK(c, "Attendance updated", m)
}

// POST /api/attendance/bulk. Per-item outcomes: 201 all good, 207 mixed,
// 400 when nothing went through. Malformed items are skipped and reported.
func (ctl *AttendanceController) BulkMarkAttendance(c *fiber.Ctx) error {
	var req dto.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	callerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sess, msg := ctl.markableSession(req.AttendanceSessionID)
	if sess == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	now := time.Now()
	var created []model.AttendanceModel
	var itemErrors []string
	for i, item := range req.Items {
		if item.AttendanceStudentID == uuid.Nil {
			itemErrors = append(itemErrors, fmt.Sprintf("item %d: missing attendance_student_id", i))
			continue
		}
		if item.AttendanceIsPresent == nil {
			itemErrors = append(itemErrors, fmt.Sprintf("item %d: missing attendance_is_present", i))
			continue
		}
		m := model.AttendanceModel{
			AttendanceSessionID:       req.AttendanceSessionID,
			AttendanceStudentID:       item.AttendanceStudentID,
			AttendanceIsPresent:       *item.AttendanceIsPresent,
			AttendanceMarkedByTeacher: true,
			AttendanceMarkedAt:        now,
			AttendanceUpdatedBy:       &callerID,
			AttendanceUpdatedAt:       &now,
		}
		if err := upsertMark(ctl.DB, &m); err != nil {
			itemErrors = append(itemErrors, fmt.Sprintf("item %d: student %s: write failed", i, item.AttendanceStudentID))
			continue
		}
		created = append(created, m)
	}

	switch {
	case len(itemErrors) == 0:
		return helper.JsonCreated(c, fmt.Sprintf("Attendance recorded for %d students", len(created)), created)
	case len(created) == 0:
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "No attendance recorded", itemErrors)
	default:
		return helper.JsonMultiStatus(c, "Some items failed", created, itemErrors)
	}
}

// GET /api/sessions/:id/attendance
func (ctl *AttendanceController) ListAttendanceBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}
	var records []model.AttendanceModel
	if err := ctl.DB.
		Where("attendance_session_id = ?", sessionID).
		Order("attendance_marked_at ASC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonOK(c, "OK", records)
}

type studentAttendanceRow struct {
	model.AttendanceModel
	UnitSessionDate time.Time `json:"unit_session_date" gorm:"column:unit_session_date"`
	UnitName        string    `json:"unit_name" gorm:"column:unit_name"`
	UnitCode        string    `json:"unit_code" gorm:"column:unit_code"`
}

// GET /api/attendance/student/:id returns the history with session context.
// Students may only read their own.
func (ctl *AttendanceController) ListAttendanceByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	role, _ := helper.GetRoleFromToken(c)
	if role == constants.RoleStudent {
		callerID, err := helper.GetUserIDFromToken(c)
		if err != nil || callerID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Students may only view their own attendance")
		}
	}

	q := ctl.DB.
		Table("attendance AS a").
		Select("a.*, s.unit_session_date, un.unit_name, un.unit_code").
		Joins("JOIN unit_sessions s ON s.unit_session_id = a.attendance_session_id").
		Joins("JOIN units un ON un.unit_id = s.unit_session_unit_id").
		Where("a.attendance_student_id = ?", studentID)

	if term := c.Query("term_id"); term != "" {
		termID, err := uuid.Parse(term)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term_id")
		}
		q = q.Where("s.unit_session_term_id = ?", termID)
	}

	var rows []studentAttendanceRow
	if err := q.Order("s.unit_session_date DESC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance history")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/students/:id/active-sessions lists today's sessions of the units
// assigned to the student's class, flagged when already marked. The
// self-marking screen is built from this.
func (ctl *AttendanceController) ListActiveSessionsForStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	role, _ := helper.GetRoleFromToken(c)
	if role == constants.RoleStudent {
		callerID, err := helper.GetUserIDFromToken(c)
		if err != nil || callerID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "Students may only view their own sessions")
		}
	}

	today := time.Now().Format("2006-01-02")
	var rows []dto.ActiveSessionResponse
	err = ctl.DB.
		Table("unit_sessions AS s").
		Select(`s.unit_session_id,
			to_char(s.unit_session_date, 'YYYY-MM-DD') AS unit_session_date,
			s.unit_session_start_time,
			s.unit_session_end_time,
			s.unit_session_location,
			un.unit_name,
			un.unit_code,
			(a.attendance_id IS NOT NULL) AS already_marked`).
		Joins("JOIN units un ON un.unit_id = s.unit_session_unit_id").
		Joins("JOIN unit_class_assignments uca ON uca.unit_class_assignment_unit_id = s.unit_session_unit_id").
		Joins("JOIN enrollments e ON e.enrollment_class_id = uca.unit_class_assignment_class_id AND e.enrollment_student_id = ? AND e.enrollment_status = 'active'", studentID).
		Joins("LEFT JOIN attendance a ON a.attendance_session_id = s.unit_session_id AND a.attendance_student_id = ?", studentID).
		Where("s.unit_session_date = ? AND s.unit_session_is_active = TRUE AND s.unit_session_is_cancelled = FALSE", today).
		Order("s.unit_session_start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch active sessions")
	}
	return helper.JsonOK(c, "OK", rows)
}
