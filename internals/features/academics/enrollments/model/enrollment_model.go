package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusDropped   = "dropped"
	StatusWithdrawn = "withdrawn"
)

// EnrollmentModel represents the enrollments table. A partial unique index on
// (student_id) WHERE status='active' backs the one-active-enrollment rule.
type EnrollmentModel struct {
	EnrollmentID         uuid.UUID  `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnrollmentStudentID  uuid.UUID  `json:"enrollment_student_id" gorm:"column:enrollment_student_id;type:uuid;not null"`
	EnrollmentClassID    uuid.UUID  `json:"enrollment_class_id" gorm:"column:enrollment_class_id;type:uuid;not null"`
	EnrollmentCourseID   uuid.UUID  `json:"enrollment_course_id" gorm:"column:enrollment_course_id;type:uuid;not null"`
	EnrollmentTermID     uuid.UUID  `json:"enrollment_term_id" gorm:"column:enrollment_term_id;type:uuid;not null"`
	EnrollmentDate       time.Time  `json:"enrollment_date" gorm:"column:enrollment_date;type:date;not null"`
	EnrollmentStatus     string     `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(20);not null;default:'active'"`
	EnrollmentFinalGrade *string    `json:"enrollment_final_grade,omitempty" gorm:"column:enrollment_final_grade;size:5"`
	EnrollmentCreatedAt  time.Time  `json:"enrollment_created_at" gorm:"column:enrollment_created_at;not null;autoCreateTime"`
	EnrollmentUpdatedAt  *time.Time `json:"enrollment_updated_at,omitempty" gorm:"column:enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
