// file: internals/features/finance/meter_readings/model/meter_reading_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: meter_readings
   ========================= */

// MeterReading is an immutable record of one utility reading for one unit and
// one metered fee type. The "latest" reading per (unit, fee_type) is the one
// with the maximum reading_date.
type MeterReading struct {
	MeterReadingID uuid.UUID `json:"meter_reading_id" gorm:"column:meter_reading_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	MeterReadingCompanyID uuid.UUID `json:"meter_reading_company_id" gorm:"column:meter_reading_company_id;type:uuid;not null;index"`

	MeterReadingUnitID    uuid.UUID `json:"meter_reading_unit_id"     gorm:"column:meter_reading_unit_id;type:uuid;not null;index:idx_meter_readings_unit_fee"`
	MeterReadingFeeTypeID uuid.UUID `json:"meter_reading_fee_type_id" gorm:"column:meter_reading_fee_type_id;type:uuid;not null;index:idx_meter_readings_unit_fee"`

	MeterReadingDate time.Time `json:"meter_reading_date" gorm:"column:meter_reading_date;type:date;not null"`

	MeterReadingPrevious    float64 `json:"meter_reading_previous"     gorm:"column:meter_reading_previous;type:numeric(14,3);not null;default:0"`
	MeterReadingCurrent     float64 `json:"meter_reading_current"      gorm:"column:meter_reading_current;type:numeric(14,3);not null"`
	MeterReadingConsumption float64 `json:"meter_reading_consumption"  gorm:"column:meter_reading_consumption;type:numeric(14,3);not null"`
	MeterReadingUnitPrice   float64 `json:"meter_reading_unit_price"   gorm:"column:meter_reading_unit_price;type:numeric(14,2);not null;default:0"`
	MeterReadingTotalAmount float64 `json:"meter_reading_total_amount" gorm:"column:meter_reading_total_amount;type:numeric(14,2);not null;default:0"`

	MeterReadingCreatedAt time.Time `json:"meter_reading_created_at" gorm:"column:meter_reading_created_at;type:timestamptz;not null;default:now()"`
}

func (MeterReading) TableName() string { return "meter_readings" }

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("meter_reading_company_id = ?", companyID)
	}
}
func ScopeByUnit(unitID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("meter_reading_unit_id = ?", unitID)
	}
}
func ScopeMonthWindow(monthStart time.Time) func(*gorm.DB) *gorm.DB {
	next := monthStart.AddDate(0, 1, 0)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("meter_reading_date >= ? AND meter_reading_date < ?", monthStart, next)
	}
}

/* =========================
   Queries
   ========================= */

// LatestReading returns the most recent reading for one (unit, fee_type),
// or nil when the unit has never been read.
func LatestReading(db *gorm.DB, companyID, unitID, feeTypeID uuid.UUID) (*MeterReading, error) {
	var row MeterReading
	err := db.
		Scopes(ScopeByCompany(companyID)).
		Where("meter_reading_unit_id = ? AND meter_reading_fee_type_id = ?", unitID, feeTypeID).
		Order("meter_reading_date DESC, meter_reading_created_at DESC").
		Limit(1).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
