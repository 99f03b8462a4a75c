// file: internals/features/finance/meter_readings/service/history_csv_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "propertyhub_backend/internals/features/finance/meter_readings/dto"
)

func TestBuildMeterHistoryCSV(t *testing.T) {
	header, rows := BuildMeterHistoryCSV([]dto.MeterHistoryRow{
		{
			MeterReadingDate:        time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			PropertyName:            "Tower A",
			UnitNumber:              "A-101",
			FeeTypeName:             "Water",
			MeterReadingPrevious:    100,
			MeterReadingCurrent:     112.5,
			MeterReadingConsumption: 12.5,
			MeterReadingTotalAmount: 37500,
		},
	})

	assert.Equal(t, []string{"Date", "Property", "Unit", "Fee Type", "Previous", "Current", "Consumption", "Amount"}, header)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"2025-06-20", "Tower A", "A-101", "Water", "100", "112.5", "12.5", "37500"}, rows[0])
}

func TestBuildMeterHistoryCSV_Empty(t *testing.T) {
	header, rows := BuildMeterHistoryCSV(nil)
	assert.Len(t, header, 8)
	assert.Empty(t, rows)
}
