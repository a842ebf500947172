package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/academics/units/dto"
	"kampusku_backend/internals/features/academics/units/model"
	helper "kampusku_backend/internals/helpers"
)

type UnitController struct {
	DB *gorm.DB
}

func NewUnitController(db *gorm.DB) *UnitController {
	return &UnitController{DB: db}
}

var validate = validator.New()

type unitRow struct {
	model.UnitModel
	CourseName  string  `gorm:"column:course_name"`
	LevelName   string  `gorm:"column:level_name"`
	TeacherName *string `gorm:"column:teacher_name"`
}

func (r *unitRow) toResponse() dto.UnitResponse {
	return dto.UnitResponse{
		UnitID:          r.UnitID,
		UnitName:        r.UnitName,
		UnitCode:        r.UnitCode,
		UnitCourseID:    r.UnitCourseID,
		UnitCourseName:  r.CourseName,
		UnitLevelName:   r.LevelName,
		UnitTeacherID:   r.UnitTeacherID,
		UnitTeacherName: r.TeacherName,
		UnitCreatedAt:   r.UnitCreatedAt,
		UnitUpdatedAt:   r.UnitUpdatedAt,
	}
}

func (ctl *UnitController) joined() *gorm.DB {
	return ctl.DB.Table("units AS un").
		Joins("LEFT JOIN courses AS c ON c.course_id = un.unit_course_id").
		Joins("LEFT JOIN levels AS l ON l.level_id = c.course_level_id").
		Joins("LEFT JOIN users AS t ON t.user_id = un.unit_teacher_id").
		Select("un.*, c.course_name AS course_name, l.level_name AS level_name, t.user_full_name AS teacher_name")
}

// scopeForRole narrows the unit query to what the caller may see. The policy
// is applied before the query runs; no result filtering afterwards.
func (ctl *UnitController) scopeForRole(q *gorm.DB, c *fiber.Ctx) (*gorm.DB, error) {
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return nil, err
	}

	switch role {
	case constants.RoleSuperAdmin, constants.RoleAdmin:
		return q, nil
	case constants.RoleHOD:
		dept := helper.GetDepartmentIDFromToken(c)
		if dept == nil {
			return nil, fiber.NewError(fiber.StatusForbidden, "HOD token carries no department")
		}
		return q.Where("c.course_department_id = ?", *dept), nil
	case constants.RoleTeacher:
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return nil, err
		}
		return q.Where("un.unit_teacher_id = ?", userID), nil
	case constants.RoleStudent:
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return nil, err
		}
		return q.Where(`un.unit_course_id IN (
			SELECT enrollment_course_id FROM enrollments
			WHERE enrollment_student_id = ? AND enrollment_status = 'active')`, userID), nil
	}
	return nil, fiber.NewError(fiber.StatusForbidden, "Unknown role")
}

// POST /api/units
func (ctl *UnitController) CreateUnit(c *fiber.Ctx) error {
	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.UnitName = strings.TrimSpace(req.UnitName)
	req.UnitCode = strings.ToUpper(strings.TrimSpace(req.UnitCode))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.Model(&model.UnitModel{}).Where("unit_code = ?", req.UnitCode).Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unit code already exists")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create unit")
	}
	return helper.JsonCreated(c, "Unit created", m)
}

// GET /api/units returns the role-filtered list.
func (ctl *UnitController) ListUnits(c *fiber.Ctx) error {
	q, err := ctl.scopeForRole(ctl.joined(), c)
	if err != nil {
		return err
	}

	var rows []unitRow
	if err := q.Order("un.unit_code ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch units")
	}
	out := make([]dto.UnitResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toResponse())
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/units/:id
func (ctl *UnitController) GetUnitByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}

	var row unitRow
	res := ctl.joined().Where("un.unit_id = ?", id).Scan(&row)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch unit")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
	}
	return helper.JsonOK(c, "OK", row.toResponse())
}

// PUT /api/units/:id
func (ctl *UnitController) UpdateUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}

	var req dto.UpdateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.UnitModel
	if err := ctl.DB.First(&m, "unit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch unit")
	}

	if req.UnitCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.UnitCode))
		var count int64
		ctl.DB.Model(&model.UnitModel{}).Where("unit_code = ? AND unit_id <> ?", code, id).Count(&count)
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unit code already exists")
		}
		m.UnitCode = code
	}
	if req.UnitName != nil {
		m.UnitName = strings.TrimSpace(*req.UnitName)
	}
	if req.UnitCourseID != nil {
		m.UnitCourseID = *req.UnitCourseID
	}
	if req.UnitTeacherID != nil {
		m.UnitTeacherID = req.UnitTeacherID
	}
	now := time.Now()
	m.UnitUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update unit")
	}
	return helper.JsonOK(c, "Unit updated", m)
}

// DELETE /api/units/:id
func (ctl *UnitController) DeleteUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid unit id")
	}
	res := ctl.DB.Delete(&model.UnitModel{}, "unit_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete unit")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Unit not found")
	}
	return helper.JsonDeleted(c)
}

/* ================= Unit ↔ Class assignment ================= */

// POST /api/classes/:id/units
func (ctl *UnitController) AssignUnitsToClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req dto.AssignUnitsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var classCount int64
	ctl.DB.Table("classes").Where("class_id = ?", classID).Count(&classCount)
	if classCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	rows := make([]model.UnitClassAssignmentModel, 0, len(req.UnitIDs))
	for _, unitID := range req.UnitIDs {
		rows = append(rows, model.UnitClassAssignmentModel{
			UnitClassAssignmentUnitID:  unitID,
			UnitClassAssignmentClassID: classID,
		})
	}

	// duplicates are no-ops thanks to the (unit_id, class_id) unique index
	if err := ctl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign units")
	}
	return helper.JsonCreated(c, "Units assigned to class", rows)
}

// GET /api/classes/:id/units
func (ctl *UnitController) ListUnitsByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var rows []unitRow
	err = ctl.joined().
		Joins("JOIN unit_class_assignments AS uca ON uca.unit_class_assignment_unit_id = un.unit_id").
		Where("uca.unit_class_assignment_class_id = ?", classID).
		Order("un.unit_code ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class units")
	}

	out := make([]dto.UnitResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toResponse())
	}
	return helper.JsonOK(c, "OK", out)
}
