// file: internals/features/finance/meter_readings/dto/meter_reading_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/finance/meter_readings/model"
)

/* =========================================================
   REQUEST: bulk entry
   ========================================================= */

// One row of the staff bulk-entry sheet. previous is optional: when omitted
// it is auto-filled from the latest prior reading of the same (unit, fee_type).
type MeterReadingEntry struct {
	UnitID         uuid.UUID `json:"unit_id"          validate:"required"`
	FeeTypeID      uuid.UUID `json:"fee_type_id"      validate:"required"`
	ReadingDate    string    `json:"reading_date"     validate:"required,datetime=2006-01-02"`
	PreviousReading *float64 `json:"previous_reading" validate:"omitempty,min=0"`
	CurrentReading float64   `json:"current_reading"  validate:"min=0"`
	UnitPrice      *float64  `json:"unit_price"       validate:"omitempty,min=0"`
}

type BulkCreateMeterReadingsRequest struct {
	Entries []MeterReadingEntry `json:"entries" validate:"required,min=1,dive"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type MeterReadingResponse struct {
	MeterReadingID          uuid.UUID `json:"meter_reading_id"`
	MeterReadingUnitID      uuid.UUID `json:"meter_reading_unit_id"`
	MeterReadingFeeTypeID   uuid.UUID `json:"meter_reading_fee_type_id"`
	MeterReadingDate        string    `json:"meter_reading_date"`
	MeterReadingPrevious    float64   `json:"meter_reading_previous"`
	MeterReadingCurrent     float64   `json:"meter_reading_current"`
	MeterReadingConsumption float64   `json:"meter_reading_consumption"`
	MeterReadingUnitPrice   float64   `json:"meter_reading_unit_price"`
	MeterReadingTotalAmount float64   `json:"meter_reading_total_amount"`
	MeterReadingCreatedAt   time.Time `json:"meter_reading_created_at"`
}

func FromModelMeterReading(m *model.MeterReading) MeterReadingResponse {
	return MeterReadingResponse{
		MeterReadingID:          m.MeterReadingID,
		MeterReadingUnitID:      m.MeterReadingUnitID,
		MeterReadingFeeTypeID:   m.MeterReadingFeeTypeID,
		MeterReadingDate:        m.MeterReadingDate.Format("2006-01-02"),
		MeterReadingPrevious:    m.MeterReadingPrevious,
		MeterReadingCurrent:     m.MeterReadingCurrent,
		MeterReadingConsumption: m.MeterReadingConsumption,
		MeterReadingUnitPrice:   m.MeterReadingUnitPrice,
		MeterReadingTotalAmount: m.MeterReadingTotalAmount,
		MeterReadingCreatedAt:   m.MeterReadingCreatedAt,
	}
}

func FromModelMeterReadings(rows []model.MeterReading) []MeterReadingResponse {
	out := make([]MeterReadingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelMeterReading(&rows[i]))
	}
	return out
}

// History row joined with property/unit/fee names for the history table and
// the CSV export.
type MeterHistoryRow struct {
	MeterReadingDate        time.Time `json:"meter_reading_date"`
	PropertyName            string    `json:"property_name"`
	UnitNumber              string    `json:"unit_number"`
	FeeTypeName             string    `json:"fee_type_name"`
	MeterReadingPrevious    float64   `json:"meter_reading_previous"`
	MeterReadingCurrent     float64   `json:"meter_reading_current"`
	MeterReadingConsumption float64   `json:"meter_reading_consumption"`
	MeterReadingTotalAmount float64   `json:"meter_reading_total_amount"`
}
