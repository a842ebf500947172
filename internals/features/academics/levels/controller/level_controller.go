package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/levels/model"
	helper "kampusku_backend/internals/helpers"
)

type LevelController struct {
	DB *gorm.DB
}

func NewLevelController(db *gorm.DB) *LevelController {
	return &LevelController{DB: db}
}

var validate = validator.New()

// POST /api/levels
func (ctl *LevelController) CreateLevel(c *fiber.Ctx) error {
	var m model.LevelModel
	if err := c.BodyParser(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	m.LevelID = uuid.Nil
	m.LevelName = strings.TrimSpace(m.LevelName)
	if err := validate.Struct(m); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.Model(&model.LevelModel{}).Where("level_name = ?", m.LevelName).Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Level already exists")
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create level")
	}
	return helper.JsonCreated(c, "Level created", m)
}

// GET /api/levels
func (ctl *LevelController) ListLevels(c *fiber.Ctx) error {
	var levels []model.LevelModel
	if err := ctl.DB.Order("level_name ASC").Find(&levels).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch levels")
	}
	return helper.JsonOK(c, "OK", levels)
}

// GET /api/levels/:id
func (ctl *LevelController) GetLevelByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level id")
	}
	var m model.LevelModel
	if err := ctl.DB.First(&m, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch level")
	}
	return helper.JsonOK(c, "OK", m)
}

// PUT /api/levels/:id
func (ctl *LevelController) UpdateLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level id")
	}
	var m model.LevelModel
	if err := ctl.DB.First(&m, "level_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch level")
	}

	var in model.LevelModel
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if name := strings.TrimSpace(in.LevelName); name != "" {
		m.LevelName = name
	}
	now := time.Now()
	m.LevelUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update level")
	}
	return helper.JsonOK(c, "Level updated", m)
}

// DELETE /api/levels/:id
func (ctl *LevelController) DeleteLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level id")
	}
	res := ctl.DB.Delete(&model.LevelModel{}, "level_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete level")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Level not found")
	}
	return helper.JsonDeleted(c)
}
