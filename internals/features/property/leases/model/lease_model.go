// file: internals/features/property/leases/model/lease_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	tenantModel "propertyhub_backend/internals/features/property/tenants/model"
	unitModel "propertyhub_backend/internals/features/property/units/model"
)

/* =========================
   Enums (Go-side)
   ========================= */

type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusPending    LeaseStatus = "pending"
	LeaseStatusExpired    LeaseStatus = "expired"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

func (s LeaseStatus) Valid() bool {
	switch s {
	case LeaseStatusActive, LeaseStatusPending, LeaseStatusExpired, LeaseStatusTerminated:
		return true
	}
	return false
}

/* =========================
   Model: leases
   ========================= */

// Lease ties a tenant to a unit. Only status=active leases participate in
// billing generation.
type Lease struct {
	LeaseID uuid.UUID `json:"lease_id" gorm:"column:lease_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	LeaseCompanyID uuid.UUID `json:"lease_company_id" gorm:"column:lease_company_id;type:uuid;not null;index"`

	LeaseTenantID uuid.UUID `json:"lease_tenant_id" gorm:"column:lease_tenant_id;type:uuid;not null;index;constraint:OnDelete:RESTRICT"`
	LeaseUnitID   uuid.UUID `json:"lease_unit_id"   gorm:"column:lease_unit_id;type:uuid;not null;index;constraint:OnDelete:RESTRICT"`

	LeaseMonthlyRent float64  `json:"lease_monthly_rent"     gorm:"column:lease_monthly_rent;type:numeric(14,2);not null"`
	LeaseDeposit     *float64 `json:"lease_deposit,omitempty" gorm:"column:lease_deposit;type:numeric(14,2)"`

	LeaseStartDate time.Time  `json:"lease_start_date"         gorm:"column:lease_start_date;type:date;not null"`
	LeaseEndDate   *time.Time `json:"lease_end_date,omitempty" gorm:"column:lease_end_date;type:date"`

	LeaseStatus LeaseStatus `json:"lease_status" gorm:"column:lease_status;type:varchar(20);not null;default:'pending'"`

	LeaseTerminatedAt *time.Time `json:"lease_terminated_at,omitempty" gorm:"column:lease_terminated_at;type:timestamptz"`
	LeaseNotes        *string    `json:"lease_notes,omitempty"         gorm:"column:lease_notes;type:text"`

	LeaseCreatedAt time.Time `json:"lease_created_at" gorm:"column:lease_created_at;type:timestamptz;not null;default:now()"`
	LeaseUpdatedAt time.Time `json:"lease_updated_at" gorm:"column:lease_updated_at;type:timestamptz;not null;default:now()"`

	// joined rows (read path)
	Tenant *tenantModel.Tenant `json:"tenant,omitempty" gorm:"foreignKey:LeaseTenantID;references:TenantID"`
	Unit   *unitModel.Unit     `json:"unit,omitempty"   gorm:"foreignKey:LeaseUnitID;references:UnitID"`
}

func (Lease) TableName() string { return "leases" }

func (l *Lease) BeforeCreate(tx *gorm.DB) error {
	l.LeaseUpdatedAt = time.Now().UTC()
	return nil
}
func (l *Lease) BeforeUpdate(tx *gorm.DB) error {
	l.LeaseUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("lease_company_id = ?", companyID)
	}
}
func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("lease_status = ?", LeaseStatusActive)
}
