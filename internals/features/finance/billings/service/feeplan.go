// file: internals/features/finance/billings/service/feeplan.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feeTypeModel "propertyhub_backend/internals/features/finance/fee_types/model"
	readingModel "propertyhub_backend/internals/features/finance/meter_readings/model"
	unitFeeModel "propertyhub_backend/internals/features/finance/unit_fees/model"
)

/* =========================
   Fee plan (batched lookups)
   ========================= */

type readingKey struct {
	UnitID    uuid.UUID
	FeeTypeID uuid.UUID
}

// FeePlan holds everything the per-lease assembly needs, fetched in bulk
// before the lease loop starts. The maps are built once and read-only after.
type FeePlan struct {
	// active catalog fee types, display order
	FeeTypes []feeTypeModel.FeeType

	// active overrides grouped per unit, each carrying its FeeType
	OverridesByUnit map[uuid.UUID][]unitFeeModel.UnitFee

	// most recent in-window reading per (unit, fee_type)
	Readings map[readingKey]*readingModel.MeterReading
}

// BuildFeePlan runs the two bulk queries (unit fees joined with fee types,
// month-window meter readings) plus the catalog fetch, and reduces the flat
// result sets into lookup maps.
func BuildFeePlan(db *gorm.DB, companyID uuid.UUID, unitIDs []uuid.UUID, monthStart time.Time) (*FeePlan, error) {
	var feeTypes []feeTypeModel.FeeType
	if err := db.
		Scopes(feeTypeModel.ScopeByCompany(companyID), feeTypeModel.ScopeActive).
		Order("fee_type_display_order ASC, fee_type_created_at ASC").
		Find(&feeTypes).Error; err != nil {
		return nil, err
	}

	var overrides []unitFeeModel.UnitFee
	if len(unitIDs) > 0 {
		if err := db.
			Preload("FeeType").
			Scopes(unitFeeModel.ScopeByCompany(companyID), unitFeeModel.ScopeActive).
			Where("unit_fee_unit_id IN ?", unitIDs).
			Order("unit_fee_created_at ASC").
			Find(&overrides).Error; err != nil {
			return nil, err
		}
	}

	var readings []readingModel.MeterReading
	if len(unitIDs) > 0 {
		if err := db.
			Scopes(readingModel.ScopeByCompany(companyID), readingModel.ScopeMonthWindow(monthStart)).
			Where("meter_reading_unit_id IN ?", unitIDs).
			Order("meter_reading_date DESC, meter_reading_created_at DESC").
			Find(&readings).Error; err != nil {
			return nil, err
		}
	}

	return &FeePlan{
		FeeTypes:        feeTypes,
		OverridesByUnit: GroupOverridesByUnit(overrides),
		Readings:        ReduceReadingsFirstWins(readings),
	}, nil
}

// GroupOverridesByUnit groups the flat override list per unit, keeping the
// fetch order.
func GroupOverridesByUnit(rows []unitFeeModel.UnitFee) map[uuid.UUID][]unitFeeModel.UnitFee {
	out := make(map[uuid.UUID][]unitFeeModel.UnitFee, len(rows))
	for i := range rows {
		out[rows[i].UnitFeeUnitID] = append(out[rows[i].UnitFeeUnitID], rows[i])
	}
	return out
}

// ReduceReadingsFirstWins scans a list already ordered most-recent-first and
// keeps only the first reading per (unit, fee_type). Later duplicates in the
// window are ignored.
func ReduceReadingsFirstWins(rows []readingModel.MeterReading) map[readingKey]*readingModel.MeterReading {
	out := make(map[readingKey]*readingModel.MeterReading, len(rows))
	for i := range rows {
		k := readingKey{UnitID: rows[i].MeterReadingUnitID, FeeTypeID: rows[i].MeterReadingFeeTypeID}
		if _, seen := out[k]; seen {
			continue
		}
		out[k] = &rows[i]
	}
	return out
}

// ReadingFor looks up the month's winning reading for one (unit, fee_type).
func (p *FeePlan) ReadingFor(unitID, feeTypeID uuid.UUID) *readingModel.MeterReading {
	return p.Readings[readingKey{UnitID: unitID, FeeTypeID: feeTypeID}]
}
