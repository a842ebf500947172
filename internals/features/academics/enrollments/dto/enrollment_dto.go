package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/enrollments/model"
)

// BatchEnrollRequest enrolls several students into one class at once.
type BatchEnrollRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	ClassID    uuid.UUID   `json:"class_id" validate:"required"`
	CourseID   uuid.UUID   `json:"course_id" validate:"required"`
	TermID     uuid.UUID   `json:"term_id" validate:"required"`
}

type UpdateEnrollmentRequest struct {
	EnrollmentStatus     *string `json:"enrollment_status" validate:"omitempty,oneof=active completed dropped withdrawn"`
	EnrollmentFinalGrade *string `json:"enrollment_final_grade" validate:"omitempty,max=5"`
}

// EnrollmentResponse embeds only the student's public identity fields, never
// the credential columns.
type EnrollmentResponse struct {
	EnrollmentID           uuid.UUID  `json:"enrollment_id"`
	EnrollmentStudentID    uuid.UUID  `json:"enrollment_student_id"`
	StudentFullName        string     `json:"student_full_name,omitempty"`
	StudentUsername        string     `json:"student_username,omitempty"`
	StudentEmail           string     `json:"student_email,omitempty"`
	StudentAdmissionNumber *string    `json:"student_admission_number,omitempty"`
	EnrollmentClassID      uuid.UUID  `json:"enrollment_class_id"`
	ClassName              string     `json:"class_name,omitempty"`
	EnrollmentCourseID     uuid.UUID  `json:"enrollment_course_id"`
	EnrollmentTermID       uuid.UUID  `json:"enrollment_term_id"`
	EnrollmentDate         time.Time  `json:"enrollment_date"`
	EnrollmentStatus       string     `json:"enrollment_status"`
	EnrollmentFinalGrade   *string    `json:"enrollment_final_grade,omitempty"`
	EnrollmentCreatedAt    time.Time  `json:"enrollment_created_at"`
	EnrollmentUpdatedAt    *time.Time `json:"enrollment_updated_at,omitempty"`
}

func NewEnrollmentResponse(m *model.EnrollmentModel) *EnrollmentResponse {
	if m == nil {
		return nil
	}
	return &EnrollmentResponse{
		EnrollmentID:         m.EnrollmentID,
		EnrollmentStudentID:  m.EnrollmentStudentID,
		EnrollmentClassID:    m.EnrollmentClassID,
		EnrollmentCourseID:   m.EnrollmentCourseID,
		EnrollmentTermID:     m.EnrollmentTermID,
		EnrollmentDate:       m.EnrollmentDate,
		EnrollmentStatus:     m.EnrollmentStatus,
		EnrollmentFinalGrade: m.EnrollmentFinalGrade,
		EnrollmentCreatedAt:  m.EnrollmentCreatedAt,
		EnrollmentUpdatedAt:  m.EnrollmentUpdatedAt,
	}
}
