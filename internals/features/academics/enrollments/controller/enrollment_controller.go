package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/enrollments/dto"
	"kampusku_backend/internals/features/academics/enrollments/model"
	"kampusku_backend/internals/features/academics/enrollments/service"
	helper "kampusku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validate = validator.New()

// enrollmentRow: enrollment + the student's public identity + class name.
type enrollmentRow struct {
	model.EnrollmentModel
	StudentFullName        string  `gorm:"column:student_full_name"`
	StudentUsername        string  `gorm:"column:student_username"`
	StudentEmail           string  `gorm:"column:student_email"`
	StudentAdmissionNumber *string `gorm:"column:student_admission_number"`
	ClassName              string  `gorm:"column:class_name"`
}

func (r *enrollmentRow) toResponse() dto.EnrollmentResponse {
	out := dto.NewEnrollmentResponse(&r.EnrollmentModel)
	out.StudentFullName = r.StudentFullName
	out.StudentUsername = r.StudentUsername
	out.StudentEmail = r.StudentEmail
	out.StudentAdmissionNumber = r.StudentAdmissionNumber
	out.ClassName = r.ClassName
	return *out
}

func (ctl *EnrollmentController) joined() *gorm.DB {
	return ctl.DB.Table("enrollments AS e").
		Joins("JOIN users AS s ON s.user_id = e.enrollment_student_id").
		Joins("LEFT JOIN classes AS cl ON cl.class_id = e.enrollment_class_id").
		Select(`e.*, s.user_full_name AS student_full_name,
			s.user_username AS student_username, s.user_email AS student_email,
			s.user_admission_number AS student_admission_number,
			cl.class_name AS class_name`)
}

// POST /api/enrollments is a batch with a partial-success protocol:
// all ok 201, mixed 207 with both lists, all failed 400.
func (ctl *EnrollmentController) CreateEnrollments(c *fiber.Ctx) error {
	var req dto.BatchEnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var classCount int64
	ctl.DB.Table("classes").Where("class_id = ?", req.ClassID).Count(&classCount)
	if classCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	res, err := service.EnrollStudents(ctl.DB, req.StudentIDs, req.ClassID, req.CourseID, req.TermID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll students")
	}

	created := make([]dto.EnrollmentResponse, 0, len(res.Created))
	for i := range res.Created {
		created = append(created, *dto.NewEnrollmentResponse(&res.Created[i]))
	}

	switch {
	case len(res.Errors) == 0:
		return helper.JsonCreated(c, "Students enrolled", fiber.Map{"enrollments": created})
	case len(created) == 0:
		return helper.JsonErrorWithDetails(c, fiber.StatusBadRequest, "No students could be enrolled", res.Errors)
	default:
		return helper.JsonMultiStatus(c, "Some students could not be enrolled",
			fiber.Map{"enrollments": created}, res.Errors)
	}
}

// GET /api/enrollments?student_id=&status=
func (ctl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	q := ctl.joined()
	if student := c.Query("student_id"); student != "" {
		studentID, err := uuid.Parse(student)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("e.enrollment_student_id = ?", studentID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("e.enrollment_status = ?", status)
	}

	var rows []enrollmentRow
	if err := q.Order("e.enrollment_created_at DESC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	out := make([]dto.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toResponse())
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/classes/:id/enrollments
func (ctl *EnrollmentController) ListEnrollmentsByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var rows []enrollmentRow
	if err := ctl.joined().
		Where("e.enrollment_class_id = ?", classID).
		Order("student_full_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class enrollments")
	}
	out := make([]dto.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toResponse())
	}
	return helper.JsonOK(c, "OK", out)
}

// PATCH /api/enrollments/:id. Flipping back to active re-checks the
// single-active rule.
func (ctl *EnrollmentController) UpdateEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.EnrollmentModel
	if err := ctl.DB.First(&m, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}

	if req.EnrollmentStatus != nil {
		if *req.EnrollmentStatus == model.StatusActive && m.EnrollmentStatus != model.StatusActive {
			var activeCount int64
			ctl.DB.Model(&model.EnrollmentModel{}).
				Where("enrollment_student_id = ? AND enrollment_status = ? AND enrollment_id <> ?",
					m.EnrollmentStudentID, model.StatusActive, id).
				Count(&activeCount)
			if activeCount > 0 {
				return helper.JsonError(c, fiber.StatusBadRequest,
					"Student already has an active enrollment")
			}
		}
		m.EnrollmentStatus = *req.EnrollmentStatus
	}
	if req.EnrollmentFinalGrade != nil {
		m.EnrollmentFinalGrade = req.EnrollmentFinalGrade
	}
	now := time.Now()
	m.EnrollmentUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}
	return helper.JsonOK(c, "Enrollment updated", dto.NewEnrollmentResponse(&m))
}

// DELETE /api/enrollments/:id
func (ctl *EnrollmentController) DeleteEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}
	res := ctl.DB.Delete(&model.EnrollmentModel{}, "enrollment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonDeleted(c)
}
