package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/courses/dto"
	"kampusku_backend/internals/features/academics/courses/model"
	helper "kampusku_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

var validate = validator.New()

// courseRow is the joined read shape: course + level/department names.
type courseRow struct {
	model.CourseModel
	LevelName      string `gorm:"column:level_name"`
	DepartmentName string `gorm:"column:department_name"`
}

func (r *courseRow) toResponse() dto.CourseResponse {
	return dto.CourseResponse{
		CourseID:             r.CourseID,
		CourseName:           r.CourseName,
		CourseCode:           r.CourseCode,
		CourseLevelID:        r.CourseLevelID,
		CourseLevelName:      r.LevelName,
		CourseDepartmentID:   r.CourseDepartmentID,
		CourseDepartmentName: r.DepartmentName,
		CourseSectionID:      r.CourseSectionID,
		CourseCreatedAt:      r.CourseCreatedAt,
		CourseUpdatedAt:      r.CourseUpdatedAt,
	}
}

func (ctl *CourseController) joined() *gorm.DB {
	return ctl.DB.Table("courses AS c").
		Joins("LEFT JOIN levels AS l ON l.level_id = c.course_level_id").
		Joins("LEFT JOIN departments AS d ON d.department_id = c.course_department_id").
		Select("c.*, l.level_name AS level_name, d.department_name AS department_name")
}

// POST /api/courses
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.CourseName = strings.TrimSpace(req.CourseName)
	req.CourseCode = strings.ToUpper(strings.TrimSpace(req.CourseCode))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.Model(&model.CourseModel{}).Where("course_code = ?", req.CourseCode).Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course code already exists")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", m)
}

// GET /api/courses?department_id=&level_id=
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	q := ctl.joined()
	if dept := strings.TrimSpace(c.Query("department_id")); dept != "" {
		deptID, err := uuid.Parse(dept)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id")
		}
		q = q.Where("c.course_department_id = ?", deptID)
	}
	if lvl := strings.TrimSpace(c.Query("level_id")); lvl != "" {
		lvlID, err := uuid.Parse(lvl)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid level_id")
		}
		q = q.Where("c.course_level_id = ?", lvlID)
	}

	var rows []courseRow
	if err := q.Order("c.course_name ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	out := make([]dto.CourseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toResponse())
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/courses/:id
func (ctl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	var row courseRow
	res := ctl.joined().Where("c.course_id = ?", id).Scan(&row)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	out := row.toResponse()
	return helper.JsonOK(c, "OK", out)
}

// PUT /api/courses/:id
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.CourseModel
	if err := ctl.DB.First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	if req.CourseCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.CourseCode))
		var count int64
		ctl.DB.Model(&model.CourseModel{}).
			Where("course_code = ? AND course_id <> ?", code, id).Count(&count)
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Course code already exists")
		}
		m.CourseCode = code
	}
	if req.CourseName != nil {
		m.CourseName = strings.TrimSpace(*req.CourseName)
	}
	if req.CourseLevelID != nil {
		m.CourseLevelID = *req.CourseLevelID
	}
	if req.CourseDepartmentID != nil {
		m.CourseDepartmentID = *req.CourseDepartmentID
	}
	if req.CourseSectionID != nil {
		m.CourseSectionID = req.CourseSectionID
	}
	now := time.Now()
	m.CourseUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonOK(c, "Course updated", m)
}

// DELETE /api/courses/:id
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}
	res := ctl.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c)
}
