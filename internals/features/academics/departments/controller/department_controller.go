package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/departments/dto"
	"kampusku_backend/internals/features/academics/departments/model"
	helper "kampusku_backend/internals/helpers"
)

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

var validate = validator.New()

// headNameRow joins the HOD's name for the response enrichment.
type headNameRow struct {
	DepartmentID uuid.UUID `gorm:"column:department_id"`
	HeadName     string    `gorm:"column:head_name"`
}

// POST /api/departments
func (ctl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.DepartmentName = strings.TrimSpace(req.DepartmentName)
	req.DepartmentCode = strings.ToUpper(strings.TrimSpace(req.DepartmentCode))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.Model(&model.DepartmentModel{}).Where("department_code = ?", req.DepartmentCode).Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department code already exists")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create department")
	}
	return helper.JsonCreated(c, "Department created", dto.NewDepartmentResponse(m, nil))
}

// GET /api/departments
func (ctl *DepartmentController) ListDepartments(c *fiber.Ctx) error {
	var depts []model.DepartmentModel
	if err := ctl.DB.Order("department_name ASC").Find(&depts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch departments")
	}

	// resolve HOD names in one joined query
	var rows []headNameRow
	if err := ctl.DB.Table("departments AS d").
		Joins("JOIN users AS u ON u.user_id = d.department_head_id").
		Select("d.department_id, u.user_full_name AS head_name").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch department heads")
	}
	names := make(map[uuid.UUID]string, len(rows))
	for _, r := range rows {
		names[r.DepartmentID] = r.HeadName
	}

	out := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		var headName *string
		if n, ok := names[depts[i].DepartmentID]; ok {
			headName = &n
		}
		out = append(out, *dto.NewDepartmentResponse(&depts[i], headName))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/departments/:id
func (ctl *DepartmentController) GetDepartmentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var m model.DepartmentModel
	if err := ctl.DB.First(&m, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch department")
	}

	var headName *string
	if m.DepartmentHeadID != nil {
		var name string
		if err := ctl.DB.Table("users").
			Select("user_full_name").
			Where("user_id = ?", *m.DepartmentHeadID).
			Scan(&name).Error; err == nil && name != "" {
			headName = &name
		}
	}
	return helper.JsonOK(c, "OK", dto.NewDepartmentResponse(&m, headName))
}

// PUT /api/departments/:id
func (ctl *DepartmentController) UpdateDepartment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.DepartmentModel
	if err := ctl.DB.First(&m, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch department")
	}

	if req.DepartmentCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.DepartmentCode))
		var count int64
		ctl.DB.Model(&model.DepartmentModel{}).
			Where("department_code = ? AND department_id <> ?", code, id).Count(&count)
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Department code already exists")
		}
		m.DepartmentCode = code
	}
	if req.DepartmentName != nil {
		m.DepartmentName = strings.TrimSpace(*req.DepartmentName)
	}
	if req.DepartmentHeadID != nil {
		m.DepartmentHeadID = req.DepartmentHeadID
	}
	now := time.Now()
	m.DepartmentUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update department")
	}
	return helper.JsonOK(c, "Department updated", dto.NewDepartmentResponse(&m, nil))
}

// DELETE /api/departments/:id. No cascade; dependents keep their FKs.
func (ctl *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	res := ctl.DB.Delete(&model.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete department")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
	}
	return helper.JsonDeleted(c)
}
