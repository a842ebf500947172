package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/terms/model"
)

var ErrTermNotFound = errors.New("term not found")

// ActivateTerm makes termID the single active term. The deactivate-others +
// activate-target pair runs in one transaction so readers never observe two
// active terms, and the property holds even if data drifted to >1 active.
func ActivateTerm(db *gorm.DB, termID uuid.UUID) (*model.AcademicTermModel, error) {
	var term model.AcademicTermModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&term, "term_id = ?", termID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTermNotFound
			}
			return err
		}

		now := time.Now()
		if err := tx.Model(&model.AcademicTermModel{}).
			Where("term_is_active = TRUE AND term_id <> ?", termID).
			Updates(map[string]interface{}{"term_is_active": false, "term_updated_at": now}).Error; err != nil {
			return err
		}

		term.TermIsActive = true
		term.TermUpdatedAt = &now
		return tx.Save(&term).Error
	})
	if err != nil {
		return nil, err
	}
	return &term, nil
}

// ActiveTerm returns the currently active term, or nil when none is set.
func ActiveTerm(db *gorm.DB) (*model.AcademicTermModel, error) {
	var term model.AcademicTermModel
	err := db.First(&term, "term_is_active = TRUE").Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &term, nil
}
