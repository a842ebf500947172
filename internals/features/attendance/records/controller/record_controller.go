package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/attendance/records/dto"
	"kampusku_backend/internals/features/attendance/records/model"
	sessionModel "kampusku_backend/internals/features/attendance/sessions/model"
	helper "kampusku_backend/internals/helpers"
)

type RecordController struct {
	DB *gorm.DB
}

func NewRecordController(db *gorm.DB) *RecordController {
	return &RecordController{DB: db}
}

var validate = validator.New()

// POST /api/record-of-work. One record per session; a second submit is a 400,
// updates go through PATCH.
func (ctl *RecordController) CreateRecord(c *fiber.Ctx) error {
	var req dto.CreateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var sess sessionModel.UnitSessionModel
	if err := ctl.DB.First(&sess, "unit_session_id = ?", req.RecordSessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch session")
	}
	if sess.UnitSessionIsCancelled {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session is cancelled")
	}

	var count int64
	if err := ctl.DB.Model(&model.RecordOfWorkModel{}).
		Where("record_session_id = ?", req.RecordSessionID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing record")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "A record of work already exists for this session")
	}

	m := req.ToModel(teacherID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create record of work")
	}
	return helper.JsonCreated(c, "Record of work created", m)
}

// GET /api/sessions/:id/record
func (ctl *RecordController) GetRecordBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}
	var m model.RecordOfWorkModel
	if err := ctl.DB.First(&m, "record_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No record of work for this session")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch record of work")
	}
	return helper.JsonOK(c, "OK", m)
}

// PATCH /api/record-of-work/:id. Only the submitting teacher or an admin may
// amend.
func (ctl *RecordController) UpdateRecord(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid record id")
	}

	var req dto.UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.RecordOfWorkModel
	if err := ctl.DB.First(&m, "record_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record of work not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch record of work")
	}

	role, _ := helper.GetRoleFromToken(c)
	if role == constants.RoleTeacher {
		callerID, err := helper.GetUserIDFromToken(c)
		if err != nil || callerID != m.RecordTeacherID {
			return helper.JsonError(c, fiber.StatusForbidden, "Only the submitting teacher may amend this record")
		}
	}

	if req.RecordTopic != nil {
		m.RecordTopic = *req.RecordTopic
	}
	if req.RecordSubtopics != nil {
		m.RecordSubtopics = dto.ToJSONList(req.RecordSubtopics)
	}
	if req.RecordDescription != nil {
		m.RecordDescription = req.RecordDescription
	}
	if req.RecordResources != nil {
		m.RecordResources = dto.ToJSONList(req.RecordResources)
	}
	if req.RecordAssignment != nil {
		m.RecordAssignment = req.RecordAssignment
	}
	if req.RecordNotes != nil {
		m.RecordNotes = req.RecordNotes
	}
	now := time.Now()
	m.RecordUpdatedAt = &now
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update record of work")
	}
	return helper.JsonOK(c, "Record of work updated", m)
}
