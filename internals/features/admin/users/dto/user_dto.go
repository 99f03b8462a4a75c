// file: internals/features/admin/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/admin/users/model"
	helper "propertyhub_backend/internals/helpers"
)

/* =========================
   Request DTO
   ========================= */

type CreateUserRequest struct {
	UserName     string     `json:"user_name"      validate:"required,max=120"`
	UserEmail    string     `json:"user_email"     validate:"required,email"`
	UserPassword string     `json:"user_password"  validate:"required,min=8"`
	UserRole     string     `json:"user_role"      validate:"required,oneof=owner admin staff tenant"`
	UserTenantID *uuid.UUID `json:"user_tenant_id"`
}

type PatchUserRequest struct {
	UserName     helper.PatchField[string] `json:"user_name"`
	UserRole     helper.PatchField[string] `json:"user_role"`
	UserIsActive helper.PatchField[bool]   `json:"user_is_active"`
}

func (r *PatchUserRequest) ApplyTo(u *model.User) {
	if r.UserName.Set && !r.UserName.Null {
		u.UserName = *r.UserName.Value
	}
	if r.UserRole.Set && !r.UserRole.Null {
		u.UserRole = *r.UserRole.Value
	}
	if r.UserIsActive.Set && !r.UserIsActive.Null {
		u.UserIsActive = *r.UserIsActive.Value
	}
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

/* =========================
   Response DTO
   ========================= */

type UserResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	UserCompanyID   uuid.UUID  `json:"user_company_id"`
	UserName        string     `json:"user_name"`
	UserEmail       string     `json:"user_email"`
	UserRole        string     `json:"user_role"`
	UserTenantID    *uuid.UUID `json:"user_tenant_id,omitempty"`
	UserIsActive    bool       `json:"user_is_active"`
	UserLastLoginAt *time.Time `json:"user_last_login_at,omitempty"`
	UserCreatedAt   time.Time  `json:"user_created_at"`
}

func FromModelUser(u *model.User) *UserResponse {
	return &UserResponse{
		UserID:          u.UserID,
		UserCompanyID:   u.UserCompanyID,
		UserName:        u.UserName,
		UserEmail:       u.UserEmail,
		UserRole:        u.UserRole,
		UserTenantID:    u.UserTenantID,
		UserIsActive:    u.UserIsActive,
		UserLastLoginAt: u.UserLastLoginAt,
		UserCreatedAt:   u.UserCreatedAt,
	}
}

func FromModelUsers(rows []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModelUser(&rows[i]))
	}
	return out
}
