// file: internals/features/property/units/model/unit_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enums (Go-side)
   ========================= */

type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

func (s UnitStatus) Valid() bool {
	switch s {
	case UnitStatusVacant, UnitStatusOccupied, UnitStatusMaintenance:
		return true
	}
	return false
}

/* =========================
   Floor-plan layout payload (JSONB)
   ========================= */

type UnitLayoutPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

/* =========================
   Model: units
   ========================= */

type Unit struct {
	UnitID uuid.UUID `json:"unit_id" gorm:"column:unit_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	UnitCompanyID uuid.UUID `json:"unit_company_id" gorm:"column:unit_company_id;type:uuid;not null;index"`

	UnitPropertyID uuid.UUID `json:"unit_property_id" gorm:"column:unit_property_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`

	UnitNumber       string   `json:"unit_number"                  gorm:"column:unit_number;type:varchar(40);not null"`
	UnitFloor        *int     `json:"unit_floor,omitempty"         gorm:"column:unit_floor;type:int"`
	UnitAreaSqm      *float64 `json:"unit_area_sqm,omitempty"      gorm:"column:unit_area_sqm;type:numeric(10,2)"`
	UnitBedroomCount *int     `json:"unit_bedroom_count,omitempty" gorm:"column:unit_bedroom_count;type:int"`

	UnitStatus UnitStatus `json:"unit_status" gorm:"column:unit_status;type:varchar(20);not null;default:'vacant'"`

	// floor-plan editor position/size (JSONB, nullable)
	UnitLayout datatypes.JSON `json:"unit_layout,omitempty" gorm:"column:unit_layout;type:jsonb"`

	UnitCreatedAt time.Time  `json:"unit_created_at"           gorm:"column:unit_created_at;type:timestamptz;not null;default:now()"`
	UnitUpdatedAt time.Time  `json:"unit_updated_at"           gorm:"column:unit_updated_at;type:timestamptz;not null;default:now()"`
	UnitDeletedAt *time.Time `json:"unit_deleted_at,omitempty" gorm:"column:unit_deleted_at;type:timestamptz"`
}

func (Unit) TableName() string { return "units" }

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	u.UnitUpdatedAt = time.Now().UTC()
	return nil
}
func (u *Unit) BeforeUpdate(tx *gorm.DB) error {
	u.UnitUpdatedAt = time.Now().UTC()
	return nil
}

func (u *Unit) SetUnitLayout(v *UnitLayoutPayload) error {
	if v == nil {
		u.UnitLayout = nil
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	u.UnitLayout = datatypes.JSON(b)
	return nil
}

// AreaOrZero: per-sqm billing treats a missing area as 0.
func (u *Unit) AreaOrZero() float64 {
	if u.UnitAreaSqm == nil {
		return 0
	}
	return *u.UnitAreaSqm
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("unit_deleted_at IS NULL")
}
func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("unit_company_id = ?", companyID)
	}
}
func ScopeByProperty(propertyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("unit_property_id = ?", propertyID)
	}
}
