// file: internals/features/finance/billings/service/lines_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeTypeModel "propertyhub_backend/internals/features/finance/fee_types/model"
	readingModel "propertyhub_backend/internals/features/finance/meter_readings/model"
	unitFeeModel "propertyhub_backend/internals/features/finance/unit_fees/model"
	leaseModel "propertyhub_backend/internals/features/property/leases/model"
	unitModel "propertyhub_backend/internals/features/property/units/model"
)

func f64(v float64) *float64 { return &v }

func testUnit(area *float64) *unitModel.Unit {
	return &unitModel.Unit{
		UnitID:      uuid.New(),
		UnitAreaSqm: area,
	}
}

func testLease(rent float64, unit *unitModel.Unit) *leaseModel.Lease {
	return &leaseModel.Lease{
		LeaseID:          uuid.New(),
		LeaseUnitID:      unit.UnitID,
		LeaseMonthlyRent: rent,
		LeaseStatus:      leaseModel.LeaseStatusActive,
		Unit:             unit,
	}
}

func emptyPlan() *FeePlan {
	return &FeePlan{
		OverridesByUnit: map[uuid.UUID][]unitFeeModel.UnitFee{},
		Readings:        map[readingKey]*readingModel.MeterReading{},
	}
}

func TestAssembleLeaseLines_RentLineAlwaysFirst(t *testing.T) {
	unit := testUnit(nil)
	lease := testLease(800000, unit)

	items, total := AssembleLeaseLines(lease, emptyPlan())

	require.Len(t, items, 1)
	assert.Equal(t, "Rent", items[0].BillingItemFeeName)
	assert.Nil(t, items[0].BillingItemFeeTypeID)
	assert.Equal(t, 1.0, items[0].BillingItemQuantity)
	assert.Equal(t, 800000.0, items[0].BillingItemUnitPrice)
	assert.Equal(t, 800000.0, items[0].BillingItemAmount)
	assert.Equal(t, 0, items[0].BillingItemDisplayOrder)
	assert.Equal(t, 800000.0, total)
}

func TestAssembleLeaseLines_FixedOverrideSupersedesCatalog(t *testing.T) {
	unit := testUnit(nil)
	lease := testLease(100000, unit)

	management := feeTypeModel.FeeType{
		FeeTypeID:              uuid.New(),
		FeeTypeName:            "Management",
		FeeTypeCalculationType: feeTypeModel.FeeCalcFixed,
		FeeTypeDefaultAmount:   12000,
	}

	plan := emptyPlan()
	plan.FeeTypes = []feeTypeModel.FeeType{management}
	plan.OverridesByUnit[unit.UnitID] = []unitFeeModel.UnitFee{{
		UnitFeeUnitID:       unit.UnitID,
		UnitFeeFeeTypeID:    management.FeeTypeID,
		UnitFeeCustomAmount: f64(5000),
		FeeType:             &management,
	}}

	items, total := AssembleLeaseLines(lease, plan)

	require.Len(t, items, 2)
	assert.Equal(t, "Management", items[1].BillingItemFeeName)
	assert.Equal(t, 5000.0, items[1].BillingItemAmount)
	assert.Equal(t, 105000.0, total)
}

func TestAssembleLeaseLines_PerSqmUsesUnitArea(t *testing.T) {
	unit := testUnit(f64(80))
	lease := testLease(0, unit)

	service := feeTypeModel.FeeType{
		FeeTypeID:               uuid.New(),
		FeeTypeName:             "Service",
		FeeTypeCalculationType:  feeTypeModel.FeeCalcPerSqm,
		FeeTypeDefaultUnitPrice: f64(500),
	}

	plan := emptyPlan()
	plan.FeeTypes = []feeTypeModel.FeeType{service}

	items, _ := AssembleLeaseLines(lease, plan)

	require.Len(t, items, 2)
	assert.Equal(t, 80.0, items[1].BillingItemQuantity)
	assert.Equal(t, 500.0, items[1].BillingItemUnitPrice)
	assert.Equal(t, 40000.0, items[1].BillingItemAmount)
}

func TestAssembleLeaseLines_PerSqmMissingAreaBillsZero(t *testing.T) {
	unit := testUnit(nil)
	lease := testLease(0, unit)

	plan := emptyPlan()
	plan.FeeTypes = []feeTypeModel.FeeType{{
		FeeTypeID:               uuid.New(),
		FeeTypeName:             "Service",
		FeeTypeCalculationType:  feeTypeModel.FeeCalcPerSqm,
		FeeTypeDefaultUnitPrice: f64(500),
	}}

	items, total := AssembleLeaseLines(lease, plan)

	require.Len(t, items, 2)
	assert.Equal(t, 0.0, items[1].BillingItemQuantity)
	assert.Equal(t, 0.0, items[1].BillingItemAmount)
	assert.Equal(t, 0.0, total)
}

func TestAssembleLeaseLines_MeteredWithoutReadingIsOmitted(t *testing.T) {
	unit := testUnit(nil)
	lease := testLease(100000, unit)

	plan := emptyPlan()
	plan.FeeTypes = []feeTypeModel.FeeType{{
		FeeTypeID:              uuid.New(),
		FeeTypeName:            "Water",
		FeeTypeCalculationType: feeTypeModel.FeeCalcMetered,
	}}

	items, total := AssembleLeaseLines(lease, plan)

	require.Len(t, items, 1)
	assert.Equal(t, "Rent", items[0].BillingItemFeeName)
	assert.Equal(t, 100000.0, total)
}

func TestAssembleLeaseLines_MeteredCopiesReadingVerbatim(t *testing.T) {
	unit := testUnit(nil)
	lease := testLease(0, unit)

	water := feeTypeModel.FeeType{
		FeeTypeID:              uuid.New(),
		FeeTypeName:            "Water",
		FeeTypeCalculationType: feeTypeModel.FeeCalcMetered,
	}
	reading := &readingModel.MeterReading{
		MeterReadingID:          uuid.New(),
		MeterReadingUnitID:      unit.UnitID,
		MeterReadingFeeTypeID:   water.FeeTypeID,
		MeterReadingConsumption: 12.5,
		MeterReadingUnitPrice:   3000,
		// deliberately not consumption*price: the stored total wins
		MeterReadingTotalAmount: 37000,
	}

	plan := emptyPlan()
	plan.FeeTypes = []feeTypeModel.FeeType{water}
	plan.Readings[readingKey{UnitID: unit.UnitID, FeeTypeID: water.FeeTypeID}] = reading

	items, total := AssembleLeaseLines(lease, plan)

	require.Len(t, items, 2)
	assert.Equal(t, 12.5, items[1].BillingItemQuantity)
	assert.Equal(t, 3000.0, items[1].BillingItemUnitPrice)
	assert.Equal(t, 37000.0, items[1].BillingItemAmount)
	require.NotNil(t, items[1].BillingItemMeterReadingID)
	assert.Equal(t, reading.MeterReadingID, *items[1].BillingItemMeterReadingID)
	assert.Equal(t, 37000.0, total)
}

func TestAssembleLeaseLines_CustomWithoutOverrideIsSkipped(t *testing.T) {
	unit := testUnit(nil)
	lease := testLease(0, unit)

	plan := emptyPlan()
	plan.FeeTypes = []feeTypeModel.FeeType{{
		FeeTypeID:              uuid.New(),
		FeeTypeName:            "Special",
		FeeTypeCalculationType: feeTypeModel.FeeCalcCustom,
		FeeTypeDefaultAmount:   99999,
	}}

	items, _ := AssembleLeaseLines(lease, plan)
	require.Len(t, items, 1)
}

func TestAssembleLeaseLines_ZeroDefaultFixedSkippedButOverrideEmitted(t *testing.T) {
	unitA := testUnit(nil)
	unitB := testUnit(nil)
	leaseA := testLease(0, unitA)
	leaseB := testLease(0, unitB)

	promo := feeTypeModel.FeeType{
		FeeTypeID:              uuid.New(),
		FeeTypeName:            "Promo",
		FeeTypeCalculationType: feeTypeModel.FeeCalcFixed,
		FeeTypeDefaultAmount:   0,
	}

	plan := emptyPlan()
	plan.FeeTypes = []feeTypeModel.FeeType{promo}
	plan.OverridesByUnit[unitB.UnitID] = []unitFeeModel.UnitFee{{
		UnitFeeUnitID:       unitB.UnitID,
		UnitFeeFeeTypeID:    promo.FeeTypeID,
		UnitFeeCustomAmount: f64(0),
		FeeType:             &promo,
	}}

	// catalog default 0 → no line
	itemsA, _ := AssembleLeaseLines(leaseA, plan)
	require.Len(t, itemsA, 1)

	// explicit override, even at 0, is billed as given
	itemsB, _ := AssembleLeaseLines(leaseB, plan)
	require.Len(t, itemsB, 2)
	assert.Equal(t, 0.0, itemsB[1].BillingItemAmount)
}

// End-to-end scenario: rent 800000, area 50, fixed Cleaning 20000,
// per_sqm Service 300 → 835000 across 3 items.
func TestAssembleLeaseLines_EndToEndTotal(t *testing.T) {
	unit := testUnit(f64(50))
	lease := testLease(800000, unit)

	plan := emptyPlan()
	plan.FeeTypes = []feeTypeModel.FeeType{
		{
			FeeTypeID:              uuid.New(),
			FeeTypeName:            "Cleaning",
			FeeTypeCalculationType: feeTypeModel.FeeCalcFixed,
			FeeTypeDefaultAmount:   20000,
		},
		{
			FeeTypeID:               uuid.New(),
			FeeTypeName:             "Service",
			FeeTypeCalculationType:  feeTypeModel.FeeCalcPerSqm,
			FeeTypeDefaultUnitPrice: f64(300),
		},
	}

	items, total := AssembleLeaseLines(lease, plan)

	require.Len(t, items, 3)
	assert.Equal(t, "Rent", items[0].BillingItemFeeName)
	assert.Equal(t, "Cleaning", items[1].BillingItemFeeName)
	assert.Equal(t, "Service", items[2].BillingItemFeeName)
	assert.Equal(t, 20000.0, items[1].BillingItemAmount)
	assert.Equal(t, 15000.0, items[2].BillingItemAmount)
	assert.Equal(t, 835000.0, total)

	for i := range items {
		assert.Equal(t, i, items[i].BillingItemDisplayOrder)
	}
}

func TestResolveCharge_PerSqmOverrideBeatsDefault(t *testing.T) {
	ft := &feeTypeModel.FeeType{
		FeeTypeID:               uuid.New(),
		FeeTypeName:             "Service",
		FeeTypeCalculationType:  feeTypeModel.FeeCalcPerSqm,
		FeeTypeDefaultUnitPrice: f64(300),
	}

	charge, ok := resolveCharge(ft, &overridePrices{CustomUnitPrice: f64(450)})
	require.True(t, ok)
	item, ok := charge.emit(testUnit(f64(10)), emptyPlan())
	require.True(t, ok)
	assert.Equal(t, 450.0, item.BillingItemUnitPrice)
	assert.Equal(t, 4500.0, item.BillingItemAmount)
}

func TestResolveCharge_PerSqmNoPriceAnywhereSkips(t *testing.T) {
	ft := &feeTypeModel.FeeType{
		FeeTypeID:              uuid.New(),
		FeeTypeName:            "Service",
		FeeTypeCalculationType: feeTypeModel.FeeCalcPerSqm,
	}
	_, ok := resolveCharge(ft, nil)
	assert.False(t, ok)
}

func TestReduceReadingsFirstWins_MostRecentReadingWins(t *testing.T) {
	unitID := uuid.New()
	feeTypeID := uuid.New()

	d1 := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	// fetch order is most-recent-first
	rows := []readingModel.MeterReading{
		{
			MeterReadingID:          uuid.New(),
			MeterReadingUnitID:      unitID,
			MeterReadingFeeTypeID:   feeTypeID,
			MeterReadingDate:        d2,
			MeterReadingTotalAmount: 50000,
		},
		{
			MeterReadingID:          uuid.New(),
			MeterReadingUnitID:      unitID,
			MeterReadingFeeTypeID:   feeTypeID,
			MeterReadingDate:        d1,
			MeterReadingTotalAmount: 11111,
		},
	}

	out := ReduceReadingsFirstWins(rows)

	require.Len(t, out, 1)
	got := out[readingKey{UnitID: unitID, FeeTypeID: feeTypeID}]
	require.NotNil(t, got)
	assert.Equal(t, d2, got.MeterReadingDate)
	assert.Equal(t, 50000.0, got.MeterReadingTotalAmount)
}

func TestGroupOverridesByUnit_KeepsFetchOrder(t *testing.T) {
	unitID := uuid.New()
	first := unitFeeModel.UnitFee{UnitFeeID: uuid.New(), UnitFeeUnitID: unitID}
	second := unitFeeModel.UnitFee{UnitFeeID: uuid.New(), UnitFeeUnitID: unitID}
	other := unitFeeModel.UnitFee{UnitFeeID: uuid.New(), UnitFeeUnitID: uuid.New()}

	out := GroupOverridesByUnit([]unitFeeModel.UnitFee{first, second, other})

	require.Len(t, out, 2)
	require.Len(t, out[unitID], 2)
	assert.Equal(t, first.UnitFeeID, out[unitID][0].UnitFeeID)
	assert.Equal(t, second.UnitFeeID, out[unitID][1].UnitFeeID)
}
