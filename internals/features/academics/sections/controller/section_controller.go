package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/sections/model"
	helper "kampusku_backend/internals/helpers"
)

type SectionController struct {
	DB *gorm.DB
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db}
}

var validate = validator.New()

// POST /api/sections
func (ctl *SectionController) CreateSection(c *fiber.Ctx) error {
	var m model.SectionModel
	if err := c.BodyParser(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	m.SectionID = uuid.Nil
	m.SectionName = strings.TrimSpace(m.SectionName)
	if err := validate.Struct(m); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create section")
	}
	return helper.JsonCreated(c, "Section created", m)
}

// GET /api/sections?department_id=
func (ctl *SectionController) ListSections(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SectionModel{})
	if dept := strings.TrimSpace(c.Query("department_id")); dept != "" {
		deptID, err := uuid.Parse(dept)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id")
		}
		q = q.Where("section_department_id = ?", deptID)
	}
	var sections []model.SectionModel
	if err := q.Order("section_name ASC").Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sections")
	}
	return helper.JsonOK(c, "OK", sections)
}

// GET /api/sections/:id
func (ctl *SectionController) GetSectionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section id")
	}
	var m model.SectionModel
	if err := ctl.DB.First(&m, "section_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch section")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/sections/:id
func (ctl *SectionController) UpdateSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section id")
	}
	var m model.SectionModel
	if err := ctl.DB.First(&m, "section_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Section not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch section")
	}

	var in model.SectionModel
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if name := strings.TrimSpace(in.SectionName); name != "" {
		m.SectionName = name
	}
	if in.SectionDepartmentID != uuid.Nil {
		m.SectionDepartmentID = in.SectionDepartmentID
	}
	now := time.Now()
	m.SectionUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update section")
	}
	return helper.JsonOK(c, "Section updated", m)
}

// DELETE /api/sections/:id
func (ctl *SectionController) DeleteSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section id")
	}
	res := ctl.DB.Delete(&model.SectionModel{}, "section_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section not found")
	}
	return helper.JsonDeleted(c)
}
