// file: internals/features/finance/billings/service/lines.go
package service

import (
	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/finance/billings/model"
	feeTypeModel "propertyhub_backend/internals/features/finance/fee_types/model"
	leaseModel "propertyhub_backend/internals/features/property/leases/model"
	unitModel "propertyhub_backend/internals/features/property/units/model"
)

/* =========================
   Fee charges (one variant per calculation type)
   ========================= */

// feeCharge is one resolved fee for one unit: the calculation type plus only
// the inputs that type needs. Resolution (override vs catalog default) happens
// once, in resolveCharge; emit then has no fallback logic left to do.
type feeCharge interface {
	emit(unit *unitModel.Unit, plan *FeePlan) (model.BillingItem, bool)
}

type fixedCharge struct {
	feeTypeID uuid.UUID
	feeName   string
	amount    float64
}

func (f fixedCharge) emit(_ *unitModel.Unit, _ *FeePlan) (model.BillingItem, bool) {
	id := f.feeTypeID
	return model.BillingItem{
		BillingItemFeeTypeID: &id,
		BillingItemFeeName:   f.feeName,
		BillingItemQuantity:  1,
		BillingItemUnitPrice: f.amount,
		BillingItemAmount:    f.amount,
	}, true
}

type perSqmCharge struct {
	feeTypeID uuid.UUID
	feeName   string
	unitPrice float64
}

func (f perSqmCharge) emit(unit *unitModel.Unit, _ *FeePlan) (model.BillingItem, bool) {
	id := f.feeTypeID
	qty := unit.AreaOrZero()
	return model.BillingItem{
		BillingItemFeeTypeID: &id,
		BillingItemFeeName:   f.feeName,
		BillingItemQuantity:  qty,
		BillingItemUnitPrice: f.unitPrice,
		BillingItemAmount:    qty * f.unitPrice,
	}, true
}

// meteredCharge carries no price — the reading resolved from the month window
// is the single source of quantity, price, and amount. The amount is copied
// verbatim, never recomputed.
type meteredCharge struct {
	feeTypeID uuid.UUID
	feeName   string
}

func (f meteredCharge) emit(unit *unitModel.Unit, plan *FeePlan) (model.BillingItem, bool) {
	r := plan.ReadingFor(unit.UnitID, f.feeTypeID)
	if r == nil {
		// no reading this month, no line at all
		return model.BillingItem{}, false
	}
	id := f.feeTypeID
	rid := r.MeterReadingID
	return model.BillingItem{
		BillingItemFeeTypeID:      &id,
		BillingItemFeeName:        f.feeName,
		BillingItemQuantity:       r.MeterReadingConsumption,
		BillingItemUnitPrice:      r.MeterReadingUnitPrice,
		BillingItemAmount:         r.MeterReadingTotalAmount,
		BillingItemMeterReadingID: &rid,
	}, true
}

type customCharge struct {
	feeTypeID uuid.UUID
	feeName   string
	amount    float64
}

func (f customCharge) emit(_ *unitModel.Unit, _ *FeePlan) (model.BillingItem, bool) {
	id := f.feeTypeID
	return model.BillingItem{
		BillingItemFeeTypeID: &id,
		BillingItemFeeName:   f.feeName,
		BillingItemQuantity:  1,
		BillingItemUnitPrice: f.amount,
		BillingItemAmount:    f.amount,
	}, true
}

/* =========================
   Charge resolution
   ========================= */

// overridePrices is the unit-level override slot. Nil means "catalog default".
type overridePrices struct {
	CustomAmount    *float64
	CustomUnitPrice *float64
}

// resolveCharge turns (fee type, optional override) into the variant for its
// calculation type, or nothing when the fee cannot apply:
//   - custom with no override never bills from the catalog;
//   - catalog-default fixed amounts and per_sqm prices at <= 0 are skipped,
//     while an explicit override is billed as given.
func resolveCharge(ft *feeTypeModel.FeeType, ov *overridePrices) (feeCharge, bool) {
	switch ft.FeeTypeCalculationType {
	case feeTypeModel.FeeCalcFixed:
		amount := ft.FeeTypeDefaultAmount
		if ov != nil && ov.CustomAmount != nil {
			amount = *ov.CustomAmount
		} else if amount <= 0 {
			return nil, false
		}
		return fixedCharge{feeTypeID: ft.FeeTypeID, feeName: ft.FeeTypeName, amount: amount}, true

	case feeTypeModel.FeeCalcPerSqm:
		price := 0.0
		if ft.FeeTypeDefaultUnitPrice != nil {
			price = *ft.FeeTypeDefaultUnitPrice
		}
		if ov != nil && ov.CustomUnitPrice != nil {
			price = *ov.CustomUnitPrice
		} else if price <= 0 {
			return nil, false
		}
		return perSqmCharge{feeTypeID: ft.FeeTypeID, feeName: ft.FeeTypeName, unitPrice: price}, true

	case feeTypeModel.FeeCalcMetered:
		return meteredCharge{feeTypeID: ft.FeeTypeID, feeName: ft.FeeTypeName}, true

	case feeTypeModel.FeeCalcCustom:
		if ov == nil || ov.CustomAmount == nil {
			return nil, false
		}
		return customCharge{feeTypeID: ft.FeeTypeID, feeName: ft.FeeTypeName, amount: *ov.CustomAmount}, true
	}
	return nil, false
}

/* =========================
   Per-lease assembly
   ========================= */

// AssembleLeaseLines produces the line items for one lease: the rent line
// first, then the unit's overrides in stored order, then every remaining
// catalog fee type in display order. Returns the items and their sum.
// The lease must carry its Unit.
func AssembleLeaseLines(lease *leaseModel.Lease, plan *FeePlan) ([]model.BillingItem, float64) {
	unit := lease.Unit

	items := []model.BillingItem{{
		BillingItemFeeName:   "Rent",
		BillingItemQuantity:  1,
		BillingItemUnitPrice: lease.LeaseMonthlyRent,
		BillingItemAmount:    lease.LeaseMonthlyRent,
	}}

	handled := make(map[uuid.UUID]bool)

	// overrides first: each supersedes the catalog entry for its fee type
	for _, ov := range plan.OverridesByUnit[unit.UnitID] {
		if ov.FeeType == nil || handled[ov.UnitFeeFeeTypeID] {
			continue
		}
		handled[ov.UnitFeeFeeTypeID] = true
		prices := overridePrices{CustomAmount: ov.UnitFeeCustomAmount, CustomUnitPrice: ov.UnitFeeCustomUnitPrice}
		charge, ok := resolveCharge(ov.FeeType, &prices)
		if !ok {
			continue
		}
		if item, ok := charge.emit(unit, plan); ok {
			items = append(items, item)
		}
	}

	// then the catalog remainder on its own defaults
	for i := range plan.FeeTypes {
		ft := &plan.FeeTypes[i]
		if handled[ft.FeeTypeID] {
			continue
		}
		charge, ok := resolveCharge(ft, nil)
		if !ok {
			continue
		}
		if item, ok := charge.emit(unit, plan); ok {
			items = append(items, item)
		}
	}

	total := 0.0
	for i := range items {
		items[i].BillingItemDisplayOrder = i
		total += items[i].BillingItemAmount
	}
	return items, total
}
