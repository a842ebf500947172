package dto

import (
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/features/academics/departments/model"
)

type CreateDepartmentRequest struct {
	DepartmentName   string     `json:"department_name" validate:"required,min=2,max=120"`
	DepartmentCode   string     `json:"department_code" validate:"required,min=2,max=20"`
	DepartmentHeadID *uuid.UUID `json:"department_head_id"`
}

type UpdateDepartmentRequest struct {
	DepartmentName   *string    `json:"department_name" validate:"omitempty,min=2,max=120"`
	DepartmentCode   *string    `json:"department_code" validate:"omitempty,min=2,max=20"`
	DepartmentHeadID *uuid.UUID `json:"department_head_id"`
}

type DepartmentResponse struct {
	DepartmentID        uuid.UUID  `json:"department_id"`
	DepartmentName      string     `json:"department_name"`
	DepartmentCode      string     `json:"department_code"`
	DepartmentHeadID    *uuid.UUID `json:"department_head_id,omitempty"`
	DepartmentHeadName  *string    `json:"department_head_name,omitempty"`
	DepartmentCreatedAt time.Time  `json:"department_created_at"`
	DepartmentUpdatedAt *time.Time `json:"department_updated_at,omitempty"`
}

func NewDepartmentResponse(m *model.DepartmentModel, headName *string) *DepartmentResponse {
	if m == nil {
		return nil
	}
	return &DepartmentResponse{
		DepartmentID:        m.DepartmentID,
		DepartmentName:      m.DepartmentName,
		DepartmentCode:      m.DepartmentCode,
		DepartmentHeadID:    m.DepartmentHeadID,
		DepartmentHeadName:  headName,
		DepartmentCreatedAt: m.DepartmentCreatedAt,
		DepartmentUpdatedAt: m.DepartmentUpdatedAt,
	}
}

func (r *CreateDepartmentRequest) ToModel() *model.DepartmentModel {
	return &model.DepartmentModel{
		DepartmentName:   r.DepartmentName,
		DepartmentCode:   r.DepartmentCode,
		DepartmentHeadID: r.DepartmentHeadID,
	}
}
