package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
	"kampusku_backend/internals/features/users/user/model"
)

func strPtr(s string) *string { return &s }

func TestCheckRoleFields(t *testing.T) {
	dept := uuid.New()

	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{
			"student complete",
			CreateUserRequest{UserRole: constants.RoleStudent, UserDepartmentID: &dept, UserAdmissionNumber: strPtr("ADM-001")},
			false,
		},
		{
			"student missing department",
			CreateUserRequest{UserRole: constants.RoleStudent, UserAdmissionNumber: strPtr("ADM-001")},
			true,
		},
		{
			"student missing admission number",
			CreateUserRequest{UserRole: constants.RoleStudent, UserDepartmentID: &dept},
			true,
		},
		{
			"student with staff id",
			CreateUserRequest{UserRole: constants.RoleStudent, UserDepartmentID: &dept, UserAdmissionNumber: strPtr("ADM-001"), UserStaffID: strPtr("STF-1")},
			true,
		},
		{
			"teacher complete",
			CreateUserRequest{UserRole: constants.RoleTeacher, UserDepartmentID: &dept, UserStaffID: strPtr("STF-1")},
			false,
		},
		{
			"teacher missing staff id",
			CreateUserRequest{UserRole: constants.RoleTeacher, UserDepartmentID: &dept},
			true,
		},
		{
			"hod missing department",
			CreateUserRequest{UserRole: constants.RoleHOD, UserStaffID: strPtr("STF-1")},
			true,
		},
		{
			"admin bare",
			CreateUserRequest{UserRole: constants.RoleAdmin},
			false,
		},
		{
			"admin with admission number",
			CreateUserRequest{UserRole: constants.RoleAdmin, UserAdmissionNumber: strPtr("ADM-001")},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.CheckRoleFields()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserResponseOmitsPassword(t *testing.T) {
	m := model.UserModel{
		UserID:       uuid.New(),
		UserUsername: "jdoe",
		UserPassword: "$2a$10$secret-hash",
		UserFullName: "J. Doe",
		UserEmail:    "jdoe@example.edu",
		UserRole:     constants.RoleTeacher,
	}

	b, err := json.Marshal(NewUserResponse(&m))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.NotContains(t, string(b), "password")
}

func TestToModelActivatesUser(t *testing.T) {
	req := CreateUserRequest{
		UserUsername: "jdoe",
		UserFullName: "J. Doe",
		UserEmail:    "jdoe@example.edu",
		UserRole:     constants.RoleAdmin,
	}
	m := req.ToModel("hashed")
	assert.True(t, m.UserIsActive)
	assert.Equal(t, "hashed", m.UserPassword)
}
