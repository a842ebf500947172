package dto

import (
	"time"

	"kampusku_backend/internals/features/academics/terms/model"
)

type CreateTermRequest struct {
	TermName      string `json:"term_name" validate:"required,min=2,max=120"`
	TermStartDate string `json:"term_start_date" validate:"required,datetime=2006-01-02"`
	TermEndDate   string `json:"term_end_date" validate:"required,datetime=2006-01-02"`
	TermWeekCount int    `json:"term_week_count" validate:"required,min=1,max=52"`
}

// UpdateTermRequest: PATCH semantics; TermIsActive=true triggers the
// single-active-term activation path.
type UpdateTermRequest struct {
	TermName      *string `json:"term_name" validate:"omitempty,min=2,max=120"`
	TermStartDate *string `json:"term_start_date" validate:"omitempty,datetime=2006-01-02"`
	TermEndDate   *string `json:"term_end_date" validate:"omitempty,datetime=2006-01-02"`
	TermWeekCount *int    `json:"term_week_count" validate:"omitempty,min=1,max=52"`
	TermIsActive  *bool   `json:"term_is_active"`
}

func (r *CreateTermRequest) ToModel() (*model.AcademicTermModel, error) {
	start, err := time.Parse("2006-01-02", r.TermStartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", r.TermEndDate)
	if err != nil {
		return nil, err
	}
	return &model.AcademicTermModel{
		TermName:      r.TermName,
		TermStartDate: start,
		TermEndDate:   end,
		TermWeekCount: r.TermWeekCount,
	}, nil
}
