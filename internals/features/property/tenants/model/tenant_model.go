// file: internals/features/property/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: tenants (renters)
   ========================= */

type Tenant struct {
	TenantID uuid.UUID `json:"tenant_id" gorm:"column:tenant_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope (the management company)
	TenantCompanyID uuid.UUID `json:"tenant_company_id" gorm:"column:tenant_company_id;type:uuid;not null;index"`

	TenantName             string  `json:"tenant_name"                        gorm:"column:tenant_name;type:text;not null"`
	TenantEmail            *string `json:"tenant_email,omitempty"             gorm:"column:tenant_email;type:varchar(255)"`
	TenantPhone            *string `json:"tenant_phone,omitempty"             gorm:"column:tenant_phone;type:varchar(50)"`
	TenantIDCardNumber     *string `json:"tenant_id_card_number,omitempty"    gorm:"column:tenant_id_card_number;type:varchar(60)"`
	TenantEmergencyContact *string `json:"tenant_emergency_contact,omitempty" gorm:"column:tenant_emergency_contact;type:text"`

	// optional link to the portal login account (managed by the auth service)
	TenantPortalUserID *uuid.UUID `json:"tenant_portal_user_id,omitempty" gorm:"column:tenant_portal_user_id;type:uuid"`

	TenantCreatedAt time.Time  `json:"tenant_created_at"           gorm:"column:tenant_created_at;type:timestamptz;not null;default:now()"`
	TenantUpdatedAt time.Time  `json:"tenant_updated_at"           gorm:"column:tenant_updated_at;type:timestamptz;not null;default:now()"`
	TenantDeletedAt *time.Time `json:"tenant_deleted_at,omitempty" gorm:"column:tenant_deleted_at;type:timestamptz"`
}

func (Tenant) TableName() string { return "tenants" }

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	t.TenantUpdatedAt = time.Now().UTC()
	return nil
}
func (t *Tenant) BeforeUpdate(tx *gorm.DB) error {
	t.TenantUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("tenant_deleted_at IS NULL")
}
func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_company_id = ?", companyID)
	}
}
