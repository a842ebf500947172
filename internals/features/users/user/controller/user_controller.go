package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/users/user/dto"
	"kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

/* ================= Handlers ================= */

// POST /api/users
func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.UserUsername = strings.TrimSpace(req.UserUsername)
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))

	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.CheckRoleFields(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// uniqueness pre-checks so the caller gets a clean 400, not a raw
	// constraint violation
	if msg := ctl.uniquenessConflict(&req); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := req.ToModel(string(hashed))
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created", dto.NewUserResponse(m))
}

func (ctl *UserController) uniquenessConflict(req *dto.CreateUserRequest) string {
	var count int64
	ctl.DB.Model(&model.UserModel{}).Where("user_username = ?", req.UserUsername).Count(&count)
	if count > 0 {
		return "Username is already taken"
	}
	ctl.DB.Model(&model.UserModel{}).Where("user_email = ?", req.UserEmail).Count(&count)
	if count > 0 {
		return "Email is already registered"
	}
	if req.UserAdmissionNumber != nil {
		ctl.DB.Model(&model.UserModel{}).Where("user_admission_number = ?", *req.UserAdmissionNumber).Count(&count)
		if count > 0 {
			return "Admission number is already registered"
		}
	}
	if req.UserStaffID != nil {
		ctl.DB.Model(&model.UserModel{}).Where("user_staff_id = ?", *req.UserStaffID).Count(&count)
		if count > 0 {
			return "Staff ID is already registered"
		}
	}
	return ""
}

// GET /api/users?role=&department_id=
func (ctl *UserController) ListUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if dept := strings.TrimSpace(c.Query("department_id")); dept != "" {
		deptID, err := uuid.Parse(dept)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id")
		}
		q = q.Where("user_department_id = ?", deptID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("user_full_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"users":      dto.NewUserResponses(users),
		"pagination": helper.PagingMeta(p, total),
	})
}

// GET /api/users/:id
func (ctl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var m model.UserModel
	if err := ctl.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "OK", dto.NewUserResponse(&m))
}

// PATCH /api/users/:id
func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.UserModel
	if err := ctl.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if req.UserEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*req.UserEmail))
		var count int64
		ctl.DB.Model(&model.UserModel{}).
			Where("user_email = ? AND user_id <> ?", email, id).Count(&count)
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email is already registered")
		}
		m.UserEmail = email
	}
	if req.UserFullName != nil {
		m.UserFullName = *req.UserFullName
	}
	if req.UserPassword != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		m.UserPassword = string(hashed)
	}
	if req.UserDepartmentID != nil {
		m.UserDepartmentID = req.UserDepartmentID
	}
	if req.UserAdmissionNumber != nil {
		m.UserAdmissionNumber = req.UserAdmissionNumber
	}
	if req.UserStaffID != nil {
		m.UserStaffID = req.UserStaffID
	}
	if req.UserIsActive != nil {
		m.UserIsActive = *req.UserIsActive
	}
	now := time.Now()
	m.UserUpdatedAt = &now

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.JsonOK(c, "User updated", dto.NewUserResponse(&m))
}

// DELETE /api/users/:id
func (ctl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctl.DB.Delete(&model.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonDeleted(c)
}
