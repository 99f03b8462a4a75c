// file: internals/features/finance/fee_types/model/fee_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (Go-side)
   ========================= */

type FeeCalculationType string

const (
	FeeCalcFixed   FeeCalculationType = "fixed"
	FeeCalcPerSqm  FeeCalculationType = "per_sqm"
	FeeCalcMetered FeeCalculationType = "metered"
	FeeCalcCustom  FeeCalculationType = "custom"
)

func (t FeeCalculationType) Valid() bool {
	switch t {
	case FeeCalcFixed, FeeCalcPerSqm, FeeCalcMetered, FeeCalcCustom:
		return true
	}
	return false
}

/* =========================
   Model: fee_types
   ========================= */

// FeeType is a company-scoped catalog entry. A fee type is never hard-deleted
// (billing items keep referencing it); it is only deactivated.
type FeeType struct {
	FeeTypeID uuid.UUID `json:"fee_type_id" gorm:"column:fee_type_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	FeeTypeCompanyID uuid.UUID `json:"fee_type_company_id" gorm:"column:fee_type_company_id;type:uuid;not null;index"`

	FeeTypeName            string             `json:"fee_type_name"             gorm:"column:fee_type_name;type:text;not null"`
	FeeTypeCalculationType FeeCalculationType `json:"fee_type_calculation_type" gorm:"column:fee_type_calculation_type;type:varchar(20);not null"`

	// fixed/custom use the amount; per_sqm/metered use the unit price
	FeeTypeDefaultAmount    float64  `json:"fee_type_default_amount"               gorm:"column:fee_type_default_amount;type:numeric(14,2);not null;default:0"`
	FeeTypeDefaultUnitPrice *float64 `json:"fee_type_default_unit_price,omitempty" gorm:"column:fee_type_default_unit_price;type:numeric(14,2)"`

	FeeTypeIsActive     bool `json:"fee_type_is_active"     gorm:"column:fee_type_is_active;not null;default:true"`
	FeeTypeDisplayOrder int  `json:"fee_type_display_order" gorm:"column:fee_type_display_order;not null;default:0"`

	FeeTypeCreatedAt time.Time `json:"fee_type_created_at" gorm:"column:fee_type_created_at;type:timestamptz;not null;default:now()"`
	FeeTypeUpdatedAt time.Time `json:"fee_type_updated_at" gorm:"column:fee_type_updated_at;type:timestamptz;not null;default:now()"`
}

func (FeeType) TableName() string { return "fee_types" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (f *FeeType) BeforeCreate(tx *gorm.DB) error {
	f.FeeTypeUpdatedAt = time.Now().UTC()
	return nil
}
func (f *FeeType) BeforeUpdate(tx *gorm.DB) error {
	f.FeeTypeUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("fee_type_company_id = ?", companyID)
	}
}
func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("fee_type_is_active = TRUE")
}
