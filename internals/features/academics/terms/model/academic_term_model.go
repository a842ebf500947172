package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicTermModel represents the academic_terms table. At most one row has
// TermIsActive = true; activation goes through service.ActivateTerm.
type AcademicTermModel struct {
	TermID        uuid.UUID  `json:"term_id" gorm:"column:term_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TermName      string     `json:"term_name" gorm:"column:term_name;size:120;not null"`
	TermStartDate time.Time  `json:"term_start_date" gorm:"column:term_start_date;type:date;not null"`
	TermEndDate   time.Time  `json:"term_end_date" gorm:"column:term_end_date;type:date;not null"`
	TermWeekCount int        `json:"term_week_count" gorm:"column:term_week_count;not null"`
	TermIsActive  bool       `json:"term_is_active" gorm:"column:term_is_active;not null;default:false"`
	TermCreatedAt time.Time  `json:"term_created_at" gorm:"column:term_created_at;not null;autoCreateTime"`
	TermUpdatedAt *time.Time `json:"term_updated_at,omitempty" gorm:"column:term_updated_at"`
}

func (AcademicTermModel) TableName() string {
	return "academic_terms"
}
