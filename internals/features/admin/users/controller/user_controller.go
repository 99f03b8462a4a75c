// file: internals/features/admin/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	auditModel "propertyhub_backend/internals/features/admin/audit_logs/model"
	dto "propertyhub_backend/internals/features/admin/users/dto"
	model "propertyhub_backend/internals/features/admin/users/model"
	"propertyhub_backend/internals/constants"
	helper "propertyhub_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *UserController) Create(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.UserRole == constants.RoleTenant && req.UserTenantID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "tenant accounts require user_tenant_id")
	}

	u := &model.User{
		UserCompanyID: companyID,
		UserName:      strings.TrimSpace(req.UserName),
		UserEmail:     strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserRole:      req.UserRole,
		UserTenantID:  req.UserTenantID,
		UserIsActive:  true,
	}
	if err := u.SetPassword(req.UserPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Create(u).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "user.create", "user", u.UserID, fiber.Map{"role": u.UserRole})
	return helper.JsonCreated(c, "user created", dto.FromModelUser(u))
}

// ========== List ==========
// GET /users?role=&active=&page=&per_page=
func (ctl *UserController) List(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.User{}).
		Scopes(model.ScopeByCompany(companyID))

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if active := strings.TrimSpace(c.Query("active")); active != "" {
		q = q.Where("user_is_active = ?", active == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.User
	if err := q.
		Order("user_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "users", dto.FromModelUsers(rows), &p)
}

// ========== GetByID ==========
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id invalid")
	}

	var u model.User
	if err := ctl.DB.
		Where("user_id = ? AND user_company_id = ?", id, companyID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "user", dto.FromModelUser(&u))
}

// ========== Patch ==========
func (ctl *UserController) Patch(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id invalid")
	}

	var u model.User
	if err := ctl.DB.
		Where("user_id = ? AND user_company_id = ?", id, companyID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.UserRole.Set && !req.UserRole.Null && !constants.IsValidRole(*req.UserRole.Value) {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_role invalid")
	}
	req.ApplyTo(&u)

	if err := ctl.DB.Save(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "user updated", dto.FromModelUser(&u))
}

// ========== ResetPassword ==========
// POST /users/:id/reset-password
func (ctl *UserController) ResetPassword(c *fiber.Ctx) error {
	companyID, err := helper.GetCompanyIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id invalid")
	}

	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var u model.User
	if err := ctl.DB.
		Where("user_id = ? AND user_company_id = ?", id, companyID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := u.SetPassword(req.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Model(&model.User{}).
		Where("user_id = ?", u.UserID).
		Update("user_password_hash", u.UserPasswordHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	auditModel.Record(ctl.DB, c, companyID, "user.reset_password", "user", u.UserID, nil)
	return helper.JsonUpdated(c, "password reset", fiber.Map{"user_id": u.UserID})
}
