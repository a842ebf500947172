package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/classes/dto"
	"kampusku_backend/internals/features/academics/classes/model"
	helper "kampusku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// classRow: class columns + joined names + live enrollment count. The count
// is a correlated subquery so it always reflects current enrollment state.
type classRow struct {
	model.ClassModel
	CourseName      string `gorm:"column:course_name"`
	DepartmentName  string `gorm:"column:department_name"`
	LevelName       string `gorm:"column:level_name"`
	CurrentStudents int64  `gorm:"column:current_students"`
}

func (r *classRow) toResponse(now time.Time) dto.ClassResponse {
	return dto.ClassResponse{
		ClassID:              r.ClassID,
		ClassName:            r.ClassName,
		ClassCode:            r.ClassCode,
		ClassCourseID:        r.ClassCourseID,
		ClassCourseName:      r.CourseName,
		ClassDepartmentID:    r.ClassDepartmentID,
		ClassDepartmentName:  r.DepartmentName,
		ClassSectionID:       r.ClassSectionID,
		ClassLevelID:         r.ClassLevelID,
		ClassLevelName:       r.LevelName,
		ClassTermID:          r.ClassTermID,
		ClassStartDate:       r.ClassStartDate,
		ClassEndDate:         r.ClassEndDate,
		ClassDescription:     r.ClassDescription,
		ClassIsCancelled:     r.ClassIsCancelled,
		ClassStatus:          r.Status(now),
		ClassCurrentStudents: r.CurrentStudents,
		ClassCreatedAt:       r.ClassCreatedAt,
		ClassUpdatedAt:       r.ClassUpdatedAt,
	}
}

func (ctl *ClassController) joined() *gorm.DB {
	return ctl.DB.Table("classes AS cl").
		Joins("LEFT JOIN courses AS c ON c.course_id = cl.class_course_id").
		Joins("LEFT JOIN departments AS d ON d.department_id = cl.class_department_id").
		Joins("LEFT JOIN levels AS l ON l.level_id = cl.class_level_id").
		Select(`cl.*, c.course_name AS course_name, d.department_name AS department_name,
			l.level_name AS level_name,
			(SELECT COUNT(*) FROM enrollments e
			  WHERE e.enrollment_class_id = cl.class_id
			    AND e.enrollment_status = 'active') AS current_students`)
}

// POST /api/classes
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.ClassName = strings.TrimSpace(req.ClassName)
	req.ClassCode = strings.ToUpper(strings.TrimSpace(req.ClassCode))
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.Model(&model.ClassModel{}).Where("class_code = ?", req.ClassCode).Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class code already exists")
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format, want YYYY-MM-DD")
	}
	if !m.ClassEndDate.After(m.ClassStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_end_date must be after class_start_date")
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", m)
}

// GET /api/classes?department_id=&term_id=&status=
func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	q := ctl.joined()
	if dept := strings.TrimSpace(c.Query("department_id")); dept != "" {
		deptID, err := uuid.Parse(dept)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id")
		}
		q = q.Where("cl.class_department_id = ?", deptID)
	}
	if term := strings.TrimSpace(c.Query("term_id")); term != "" {
		termID, err := uuid.Parse(term)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid term_id")
		}
		q = q.Where("cl.class_term_id = ?", termID)
	}

	var rows []classRow
	if err := q.Order("cl.class_name ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	now := time.Now()
	statusFilter := strings.TrimSpace(c.Query("status"))
	out := make([]dto.ClassResponse, 0, len(rows))
	for i := range rows {
		resp := rows[i].toResponse(now)
		if statusFilter != "" && resp.ClassStatus != statusFilter {
			continue
		}
		out = append(out, resp)
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/classes/:id
func (ctl *ClassController) GetClassByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var row classRow
	res := ctl.joined().Where("cl.class_id = ?", id).Scan(&row)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonOK(c, "OK", row.toResponse(time.Now()))
}

// PATCH /api/classes/:id
func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.ClassModel
	if err := ctl.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	if req.ClassCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.ClassCode))
		var count int64
		ctl.DB.Model(&model.ClassModel{}).Where("class_code = ? AND class_id <> ?", code, id).Count(&count)
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class code already exists")
		}
		m.ClassCode = code
	}
	if req.ClassName != nil {
		m.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if req.ClassStartDate != nil {
		start, err := time.Parse("2006-01-02", *req.ClassStartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_start_date")
		}
		m.ClassStartDate = start
	}
	if req.ClassEndDate != nil {
		end, err := time.Parse("2006-01-02", *req.ClassEndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_end_date")
		}
		m.ClassEndDate = end
	}
	if req.ClassDescription != nil {
		m.ClassDescription = req.ClassDescription
	}
	if req.ClassIsCancelled != nil {
		m.ClassIsCancelled = *req.ClassIsCancelled
	}
	now := time.Now()
	m.ClassUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}
	return helper.JsonOK(c, "Class updated", m)
}

// DELETE /api/classes/:id
func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	res := ctl.DB.Delete(&model.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonDeleted(c)
}
