package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/enrollments/model"
)

// BatchResult splits a batch enrollment into what was written and what was
// skipped, with one message per skipped student.
type BatchResult struct {
	Created []model.EnrollmentModel
	Errors  []string
}

// EnrollStudents applies the per-student business checks and inserts inside
// one transaction: (a) no active enrollment anywhere in the system, (b) not
// already enrolled in this class. Failing students are skipped and reported;
// the rest commit.
func EnrollStudents(db *gorm.DB, studentIDs []uuid.UUID, classID, courseID, termID uuid.UUID) (*BatchResult, error) {
	res := &BatchResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, studentID := range studentIDs {
			var name string
			_ = tx.Table("users").Select("user_full_name").
				Where("user_id = ?", studentID).Scan(&name).Error
			label := name
			if label == "" {
				label = studentID.String()
			}

			var activeCount int64
			if err := tx.Model(&model.EnrollmentModel{}).
				Where("enrollment_student_id = ? AND enrollment_status = ?", studentID, model.StatusActive).
				Count(&activeCount).Error; err != nil {
				return err
			}
			if activeCount > 0 {
				res.Errors = append(res.Errors,
					fmt.Sprintf("%s already has an active enrollment", label))
				continue
			}

			var inClassCount int64
			if err := tx.Model(&model.EnrollmentModel{}).
				Where("enrollment_student_id = ? AND enrollment_class_id = ?", studentID, classID).
				Count(&inClassCount).Error; err != nil {
				return err
			}
			if inClassCount > 0 {
				res.Errors = append(res.Errors,
					fmt.Sprintf("%s is already enrolled in this class", label))
				continue
			}

			e := model.EnrollmentModel{
				EnrollmentStudentID: studentID,
				EnrollmentClassID:   classID,
				EnrollmentCourseID:  courseID,
				EnrollmentTermID:    termID,
				EnrollmentDate:      nowDate(),
				EnrollmentStatus:    model.StatusActive,
			}
			if err := tx.Create(&e).Error; err != nil {
				return err
			}
			res.Created = append(res.Created, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func nowDate() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
