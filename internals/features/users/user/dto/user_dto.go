package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/users/user/model"
)

/* ========== REQUEST DTOs ========== */

type CreateUserRequest struct {
	UserUsername        string     `json:"user_username" validate:"required,min=3,max=50"`
	UserPassword        string     `json:"user_password" validate:"required,min=8"`
	UserFullName        string     `json:"user_full_name" validate:"required,min=2,max=120"`
	UserEmail           string     `json:"user_email" validate:"required,email"`
	UserRole            string     `json:"user_role" validate:"required,oneof=super_admin admin hod teacher student"`
	UserDepartmentID    *uuid.UUID `json:"user_department_id"`
	UserAdmissionNumber *string    `json:"user_admission_number"`
	UserStaffID         *string    `json:"user_staff_id"`
}

type UpdateUserRequest struct {
	UserFullName        *string    `json:"user_full_name" validate:"omitempty,min=2,max=120"`
	UserEmail           *string    `json:"user_email" validate:"omitempty,email"`
	UserPassword        *string    `json:"user_password" validate:"omitempty,min=8"`
	UserDepartmentID    *uuid.UUID `json:"user_department_id"`
	UserAdmissionNumber *string    `json:"user_admission_number"`
	UserStaffID         *string    `json:"user_staff_id"`
	UserIsActive        *bool      `json:"user_is_active"`
}

// CheckRoleFields enforces the role-conditional required fields: students need
// a department and an admission number, teachers and HODs a department and a
// staff id, admins neither.
func (r *CreateUserRequest) CheckRoleFields() error {
	switch r.UserRole {
	case constants.RoleStudent:
		if r.UserDepartmentID == nil {
			return errors.New("user_department_id is required for students")
		}
		if r.UserAdmissionNumber == nil || *r.UserAdmissionNumber == "" {
			return errors.New("user_admission_number is required for students")
		}
		if r.UserStaffID != nil {
			return errors.New("user_staff_id is not allowed for students")
		}
	case constants.RoleTeacher, constants.RoleHOD:
		if r.UserDepartmentID == nil {
			return errors.New("user_department_id is required for teaching staff")
		}
		if r.UserStaffID == nil || *r.UserStaffID == "" {
			return errors.New("user_staff_id is required for teaching staff")
		}
		if r.UserAdmissionNumber != nil {
			return errors.New("user_admission_number is not allowed for teaching staff")
		}
	case constants.RoleAdmin, constants.RoleSuperAdmin:
		if r.UserAdmissionNumber != nil || r.UserStaffID != nil {
			return errors.New("admins carry neither admission number nor staff id")
		}
	}
	return nil
}

func (r *CreateUserRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		UserUsername:        r.UserUsername,
		UserPassword:        hashedPassword,
		UserFullName:        r.UserFullName,
		UserEmail:           r.UserEmail,
		UserRole:            r.UserRole,
		UserDepartmentID:    r.UserDepartmentID,
		UserAdmissionNumber: r.UserAdmissionNumber,
		UserStaffID:         r.UserStaffID,
		UserIsActive:        true,
	}
}

/* ========== RESPONSE DTO ========== */

// UserResponse deliberately has no password field; every handler that returns
// a user goes through here.
type UserResponse struct {
	UserID              uuid.UUID  `json:"user_id"`
	UserUsername        string     `json:"user_username"`
	UserFullName        string     `json:"user_full_name"`
	UserEmail           string     `json:"user_email"`
	UserRole            string     `json:"user_role"`
	UserDepartmentID    *uuid.UUID `json:"user_department_id,omitempty"`
	UserAdmissionNumber *string    `json:"user_admission_number,omitempty"`
	UserStaffID         *string    `json:"user_staff_id,omitempty"`
	UserIsActive        bool       `json:"user_is_active"`
	UserCreatedAt       time.Time  `json:"user_created_at"`
	UserUpdatedAt       *time.Time `json:"user_updated_at,omitempty"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:              m.UserID,
		UserUsername:        m.UserUsername,
		UserFullName:        m.UserFullName,
		UserEmail:           m.UserEmail,
		UserRole:            m.UserRole,
		UserDepartmentID:    m.UserDepartmentID,
		UserAdmissionNumber: m.UserAdmissionNumber,
		UserStaffID:         m.UserStaffID,
		UserIsActive:        m.UserIsActive,
		UserCreatedAt:       m.UserCreatedAt,
		UserUpdatedAt:       m.UserUpdatedAt,
	}
}

func NewUserResponses(ms []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, *NewUserResponse(&ms[i]))
	}
	return out
}
