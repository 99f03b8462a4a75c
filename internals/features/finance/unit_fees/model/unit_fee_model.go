// file: internals/features/finance/unit_fees/model/unit_fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feeTypeModel "propertyhub_backend/internals/features/finance/fee_types/model"
)

/* =========================
   Model: unit_fees
   ========================= */

// UnitFee overrides a catalog fee for one unit. The billing engine consults
// the first active override per (unit, fee_type); the catalog default is
// superseded, not merged.
type UnitFee struct {
	UnitFeeID uuid.UUID `json:"unit_fee_id" gorm:"column:unit_fee_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	UnitFeeCompanyID uuid.UUID `json:"unit_fee_company_id" gorm:"column:unit_fee_company_id;type:uuid;not null;index"`

	UnitFeeUnitID    uuid.UUID `json:"unit_fee_unit_id"     gorm:"column:unit_fee_unit_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	UnitFeeFeeTypeID uuid.UUID `json:"unit_fee_fee_type_id" gorm:"column:unit_fee_fee_type_id;type:uuid;not null;constraint:OnDelete:RESTRICT"`

	UnitFeeCustomAmount    *float64 `json:"unit_fee_custom_amount,omitempty"     gorm:"column:unit_fee_custom_amount;type:numeric(14,2)"`
	UnitFeeCustomUnitPrice *float64 `json:"unit_fee_custom_unit_price,omitempty" gorm:"column:unit_fee_custom_unit_price;type:numeric(14,2)"`

	UnitFeeIsActive bool `json:"unit_fee_is_active" gorm:"column:unit_fee_is_active;not null;default:true"`

	UnitFeeCreatedAt time.Time `json:"unit_fee_created_at" gorm:"column:unit_fee_created_at;type:timestamptz;not null;default:now()"`
	UnitFeeUpdatedAt time.Time `json:"unit_fee_updated_at" gorm:"column:unit_fee_updated_at;type:timestamptz;not null;default:now()"`

	// joined fee type (read path)
	FeeType *feeTypeModel.FeeType `json:"fee_type,omitempty" gorm:"foreignKey:UnitFeeFeeTypeID;references:FeeTypeID"`
}

func (UnitFee) TableName() string { return "unit_fees" }

func (u *UnitFee) BeforeCreate(tx *gorm.DB) error {
	u.UnitFeeUpdatedAt = time.Now().UTC()
	return nil
}
func (u *UnitFee) BeforeUpdate(tx *gorm.DB) error {
	u.UnitFeeUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("unit_fee_company_id = ?", companyID)
	}
}
func ScopeByUnit(unitID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("unit_fee_unit_id = ?", unitID)
	}
}
func ScopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("unit_fee_is_active = TRUE")
}
