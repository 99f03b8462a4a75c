// file: internals/features/finance/meter_readings/service/history_csv.go
package service

import (
	"strconv"

	dto "propertyhub_backend/internals/features/finance/meter_readings/dto"
)

// BuildMeterHistoryCSV renders history rows into the export columns:
// date / property / unit / fee-type / previous / current / consumption / amount.
func BuildMeterHistoryCSV(rows []dto.MeterHistoryRow) ([]string, [][]string) {
	header := []string{"Date", "Property", "Unit", "Fee Type", "Previous", "Current", "Consumption", "Amount"}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.MeterReadingDate.Format("2006-01-02"),
			r.PropertyName,
			r.UnitNumber,
			r.FeeTypeName,
			strconv.FormatFloat(r.MeterReadingPrevious, 'f', -1, 64),
			strconv.FormatFloat(r.MeterReadingCurrent, 'f', -1, 64),
			strconv.FormatFloat(r.MeterReadingConsumption, 'f', -1, 64),
			strconv.FormatFloat(r.MeterReadingTotalAmount, 'f', -1, 64),
		})
	}
	return header, out
}
