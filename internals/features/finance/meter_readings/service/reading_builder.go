// file: internals/features/finance/meter_readings/service/reading_builder.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/finance/meter_readings/model"
)

// ReadingInput is one normalized bulk-entry row after lookups are resolved.
type ReadingInput struct {
	CompanyID   uuid.UUID
	UnitID      uuid.UUID
	FeeTypeID   uuid.UUID
	ReadingDate time.Time

	// Previous == nil → auto-fill from Latest (0 when no prior reading).
	Previous *float64
	Current  float64

	// UnitPrice == nil → resolve from the unit-fee override, then the fee
	// type default, then 0.
	UnitPrice     *float64
	OverridePrice *float64
	DefaultPrice  *float64

	// most recent prior reading for the same (unit, fee_type), or nil
	Latest *model.MeterReading
}

// BuildReading derives the immutable reading row. consumption = current −
// previous and must not be negative; current must also not fall below the
// latest recorded reading.
func BuildReading(in ReadingInput) (*model.MeterReading, error) {
	previous := 0.0
	if in.Previous != nil {
		previous = *in.Previous
	} else if in.Latest != nil {
		previous = in.Latest.MeterReadingCurrent
	}

	if in.Latest != nil && in.Current < in.Latest.MeterReadingCurrent {
		return nil, fmt.Errorf("current reading %.3f is below the latest recorded reading %.3f", in.Current, in.Latest.MeterReadingCurrent)
	}
	if in.Current < previous {
		return nil, fmt.Errorf("current reading %.3f is below previous reading %.3f", in.Current, previous)
	}

	price := 0.0
	switch {
	case in.UnitPrice != nil:
		price = *in.UnitPrice
	case in.OverridePrice != nil:
		price = *in.OverridePrice
	case in.DefaultPrice != nil:
		price = *in.DefaultPrice
	}

	consumption := in.Current - previous

	return &model.MeterReading{
		MeterReadingCompanyID:   in.CompanyID,
		MeterReadingUnitID:      in.UnitID,
		MeterReadingFeeTypeID:   in.FeeTypeID,
		MeterReadingDate:        in.ReadingDate,
		MeterReadingPrevious:    previous,
		MeterReadingCurrent:     in.Current,
		MeterReadingConsumption: consumption,
		MeterReadingUnitPrice:   price,
		MeterReadingTotalAmount: consumption * price,
	}, nil
}
