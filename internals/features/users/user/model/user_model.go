package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the users table. The password hash never serializes.
type UserModel struct {
	UserID              uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserUsername        string     `json:"user_username" gorm:"column:user_username;size:50;uniqueIndex;not null"`
	UserPassword        string     `json:"-" gorm:"column:user_password;not null"`
	UserFullName        string     `json:"user_full_name" gorm:"column:user_full_name;size:120;not null"`
	UserEmail           string     `json:"user_email" gorm:"column:user_email;size:255;uniqueIndex;not null"`
	UserRole            string     `json:"user_role" gorm:"column:user_role;type:varchar(20);not null"`
	UserDepartmentID    *uuid.UUID `json:"user_department_id,omitempty" gorm:"column:user_department_id;type:uuid"` // FK -> departments(department_id)
	UserAdmissionNumber *string    `json:"user_admission_number,omitempty" gorm:"column:user_admission_number;size:40;uniqueIndex"`
	UserStaffID         *string    `json:"user_staff_id,omitempty" gorm:"column:user_staff_id;size:40;uniqueIndex"`
	UserIsActive        bool       `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time  `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty" gorm:"column:user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
