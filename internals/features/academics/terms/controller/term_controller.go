package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/terms/dto"
	"kampusku_backend/internals/features/academics/terms/model"
	"kampusku_backend/internals/features/academics/terms/service"
	helper "kampusku_backend/internals/helpers"
)

type TermController struct {
	DB *gorm.DB
}

func NewTermController(db *gorm.DB) *TermController {
	return &TermController{DB: db}
}

var validate = validator.New()

// POST /api/academic-terms
func (ctl *TermController) CreateTerm(c *fiber.Ctx) error {
	var req dto.CreateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.TermName = strings.TrimSpace(req.TermName)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format, want YYYY-MM-DD")
	}
	if !m.TermEndDate.After(m.TermStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "term_end_date must be after term_start_date")
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create term")
	}
	return helper.JsonCreated(c, "Academic term created", m)
}

// GET /api/academic-terms?active=true
func (ctl *TermController) ListTerms(c *fiber.Ctx) error {
	if c.Query("active") == "true" {
		term, err := service.ActiveTerm(ctl.DB)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch active term")
		}
		if term == nil {
			return helper.JsonError(c, fiber.StatusNotFound, "No active term")
		}
		return helper.JsonOK(c, "OK", term)
	}

	var terms []model.AcademicTermModel
	if err := ctl.DB.Order("term_start_date DESC").Find(&terms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch terms")
	}
	return helper.JsonOK(c, "OK", terms)
}

// PATCH /api/academic-terms/:id
func (ctl *TermController) UpdateTerm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term id")
	}

	var req dto.UpdateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// activation first: it owns its own transaction
	if req.TermIsActive != nil && *req.TermIsActive {
		if _, err := service.ActivateTerm(ctl.DB, id); err != nil {
			if errors.Is(err, service.ErrTermNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Term not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to activate term")
		}
	}

	var m model.AcademicTermModel
	if err := ctl.DB.First(&m, "term_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Term not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch term")
	}

	if req.TermName != nil {
		m.TermName = strings.TrimSpace(*req.TermName)
	}
	if req.TermStartDate != nil {
		start, err := time.Parse("2006-01-02", *req.TermStartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term_start_date")
		}
		m.TermStartDate = start
	}
	if req.TermEndDate != nil {
		end, err := time.Parse("2006-01-02", *req.TermEndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term_end_date")
		}
		m.TermEndDate = end
	}
	if req.TermWeekCount != nil {
		m.TermWeekCount = *req.TermWeekCount
	}
	if req.TermIsActive != nil && !*req.TermIsActive {
		m.TermIsActive = false
	}
	now := time.Now()
	m.TermUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update term")
	}
	return helper.JsonOK(c, "Academic term updated", m)
}
