// file: internals/features/finance/meter_readings/service/reading_builder_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "propertyhub_backend/internals/features/finance/meter_readings/model"
)

func f64(v float64) *float64 { return &v }

func baseInput() ReadingInput {
	return ReadingInput{
		CompanyID:   uuid.New(),
		UnitID:      uuid.New(),
		FeeTypeID:   uuid.New(),
		ReadingDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildReading_ExplicitPrevious(t *testing.T) {
	in := baseInput()
	in.Previous = f64(100)
	in.Current = 112.5
	in.UnitPrice = f64(3000)

	r, err := BuildReading(in)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r.MeterReadingPrevious)
	assert.Equal(t, 112.5, r.MeterReadingCurrent)
	assert.Equal(t, 12.5, r.MeterReadingConsumption)
	assert.Equal(t, 3000.0, r.MeterReadingUnitPrice)
	assert.Equal(t, 37500.0, r.MeterReadingTotalAmount)
}

func TestBuildReading_PreviousAutoFilledFromLatest(t *testing.T) {
	in := baseInput()
	in.Current = 130
	in.Latest = &model.MeterReading{MeterReadingCurrent: 120}

	r, err := BuildReading(in)
	require.NoError(t, err)
	assert.Equal(t, 120.0, r.MeterReadingPrevious)
	assert.Equal(t, 10.0, r.MeterReadingConsumption)
}

func TestBuildReading_NoPriorReadingPreviousIsZero(t *testing.T) {
	in := baseInput()
	in.Current = 55

	r, err := BuildReading(in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.MeterReadingPrevious)
	assert.Equal(t, 55.0, r.MeterReadingConsumption)
}

func TestBuildReading_PriceResolutionOrder(t *testing.T) {
	in := baseInput()
	in.Current = 10
	in.UnitPrice = f64(5000)
	in.OverridePrice = f64(4000)
	in.DefaultPrice = f64(3000)

	r, err := BuildReading(in)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, r.MeterReadingUnitPrice)

	in.UnitPrice = nil
	r, err = BuildReading(in)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, r.MeterReadingUnitPrice)

	in.OverridePrice = nil
	r, err = BuildReading(in)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, r.MeterReadingUnitPrice)

	in.DefaultPrice = nil
	r, err = BuildReading(in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.MeterReadingUnitPrice)
	assert.Equal(t, 0.0, r.MeterReadingTotalAmount)
}

func TestBuildReading_RejectsCurrentBelowPrevious(t *testing.T) {
	in := baseInput()
	in.Previous = f64(200)
	in.Current = 150

	_, err := BuildReading(in)
	assert.Error(t, err)
}

func TestBuildReading_RejectsCurrentBelowLatest(t *testing.T) {
	in := baseInput()
	// explicit previous below latest does not bypass the monotonic check
	in.Previous = f64(0)
	in.Current = 90
	in.Latest = &model.MeterReading{MeterReadingCurrent: 100}

	_, err := BuildReading(in)
	assert.Error(t, err)
}
