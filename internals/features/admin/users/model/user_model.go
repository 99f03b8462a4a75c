// file: internals/features/admin/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

/* =========================
   Model: users
   ========================= */

// User is a back-office account (owner/admin/staff) or a tenant portal login.
// Password hashes never leave the model.
type User struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	UserCompanyID uuid.UUID `json:"user_company_id" gorm:"column:user_company_id;type:uuid;not null;index"`

	UserName  string `json:"user_name"  gorm:"column:user_name;type:varchar(120);not null"`
	UserEmail string `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;uniqueIndex"`

	UserPasswordHash string `json:"-" gorm:"column:user_password_hash;type:text;not null"`

	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'staff'"`

	// set for tenant portal accounts, nil for staff
	UserTenantID *uuid.UUID `json:"user_tenant_id,omitempty" gorm:"column:user_tenant_id;type:uuid;index"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserLastLoginAt *time.Time `json:"user_last_login_at,omitempty" gorm:"column:user_last_login_at;type:timestamptz"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;default:now()"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;default:now()"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.UserUpdatedAt = time.Now().UTC()
	return nil
}
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UserUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Password handling
   ========================= */

func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPasswordHash), []byte(plain)) == nil
}

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_company_id = ?", companyID)
	}
}
func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("user_is_active = TRUE")
}
