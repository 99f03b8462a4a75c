// file: internals/features/reports/controller/report_controller_test.go
package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldOccupancy(t *testing.T) {
	rows := []occupancyRow{
		{PropertyID: "a", PropertyName: "Tower A", UnitStatus: "occupied", UnitCount: 7},
		{PropertyID: "a", PropertyName: "Tower A", UnitStatus: "vacant", UnitCount: 2},
		{PropertyID: "a", PropertyName: "Tower A", UnitStatus: "maintenance", UnitCount: 1},
		{PropertyID: "b", PropertyName: "Tower B", UnitStatus: "vacant", UnitCount: 4},
	}

	out := foldOccupancy(rows)

	require.Len(t, out, 2)
	assert.Equal(t, "Tower A", out[0].PropertyName)
	assert.Equal(t, int64(10), out[0].TotalUnits)
	assert.Equal(t, int64(7), out[0].Occupied)
	assert.Equal(t, int64(2), out[0].Vacant)
	assert.Equal(t, int64(1), out[0].Maintenance)

	assert.Equal(t, "Tower B", out[1].PropertyName)
	assert.Equal(t, int64(4), out[1].TotalUnits)
	assert.Equal(t, int64(4), out[1].Vacant)
	assert.Equal(t, int64(0), out[1].Occupied)
}

func TestFoldOccupancy_UnknownStatusCountsTowardTotalOnly(t *testing.T) {
	out := foldOccupancy([]occupancyRow{
		{PropertyID: "a", PropertyName: "Tower A", UnitStatus: "renovating", UnitCount: 3},
	})

	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].TotalUnits)
	assert.Equal(t, int64(0), out[0].Vacant+out[0].Occupied+out[0].Maintenance)
}

func TestFoldOccupancy_Empty(t *testing.T) {
	assert.Empty(t, foldOccupancy(nil))
}

func TestResolveMonthRange_DefaultsToLastTwelveMonths(t *testing.T) {
	now := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)

	from, to, err := resolveMonthRange("", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestResolveMonthRange_ExplicitBounds(t *testing.T) {
	now := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	from, to, err := resolveMonthRange("2025-01", "2025-03", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestResolveMonthRange_Rejects(t *testing.T) {
	now := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	_, _, err := resolveMonthRange("2025-1", "", now)
	assert.Error(t, err)

	_, _, err = resolveMonthRange("", "March", now)
	assert.Error(t, err)

	// inverted range
	_, _, err = resolveMonthRange("2025-05", "2025-02", now)
	assert.Error(t, err)
}
