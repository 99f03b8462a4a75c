// file: internals/features/property/properties/model/property_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: properties
   ========================= */

type Property struct {
	PropertyID uuid.UUID `json:"property_id" gorm:"column:property_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	PropertyCompanyID uuid.UUID `json:"property_company_id" gorm:"column:property_company_id;type:uuid;not null;index"`

	PropertyName        string  `json:"property_name"                  gorm:"column:property_name;type:text;not null"`
	PropertyAddress     *string `json:"property_address,omitempty"     gorm:"column:property_address;type:text"`
	PropertyCity        *string `json:"property_city,omitempty"        gorm:"column:property_city;type:varchar(120)"`
	PropertyPostalCode  *string `json:"property_postal_code,omitempty" gorm:"column:property_postal_code;type:varchar(20)"`
	PropertyTotalFloors *int    `json:"property_total_floors,omitempty" gorm:"column:property_total_floors;type:int"`
	PropertyNotes       *string `json:"property_notes,omitempty"       gorm:"column:property_notes;type:text"`

	PropertyIsActive bool `json:"property_is_active" gorm:"column:property_is_active;not null;default:true"`

	// timestamps (manual soft delete, not gorm.DeletedAt)
	PropertyCreatedAt time.Time  `json:"property_created_at"           gorm:"column:property_created_at;type:timestamptz;not null;default:now()"`
	PropertyUpdatedAt time.Time  `json:"property_updated_at"           gorm:"column:property_updated_at;type:timestamptz;not null;default:now()"`
	PropertyDeletedAt *time.Time `json:"property_deleted_at,omitempty" gorm:"column:property_deleted_at;type:timestamptz"`
}

func (Property) TableName() string { return "properties" }

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	p.PropertyUpdatedAt = time.Now().UTC()
	return nil
}
func (p *Property) BeforeUpdate(tx *gorm.DB) error {
	p.PropertyUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("property_deleted_at IS NULL")
}
func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("property_company_id = ?", companyID)
	}
}
