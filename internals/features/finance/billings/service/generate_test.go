// file: internals/features/finance/billings/service/generate_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leaseModel "propertyhub_backend/internals/features/property/leases/model"
	unitModel "propertyhub_backend/internals/features/property/units/model"
)

func TestFormatBillingNumber(t *testing.T) {
	month := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "INV-202506-0001", FormatBillingNumber(month, 1))
	assert.Equal(t, "INV-202506-0042", FormatBillingNumber(month, 42))
	assert.Equal(t, "INV-202512-1000", FormatBillingNumber(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 1000))
}

// The sequence restarts at 1 every run, so two runs for the same month mint
// the same numbers. Uniqueness is only guarded by the per-lease precondition
// that rejects a second non-cancelled invoice for the month.
func TestFormatBillingNumber_RepeatsAcrossRuns(t *testing.T) {
	month := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	firstRun := FormatBillingNumber(month, 1)
	secondRun := FormatBillingNumber(month, 1)
	assert.Equal(t, firstRun, secondRun)
}

func admissionLease() *leaseModel.Lease {
	unit := &unitModel.Unit{UnitID: uuid.New()}
	return &leaseModel.Lease{
		LeaseID:     uuid.New(),
		LeaseUnitID: unit.UnitID,
		LeaseStatus: leaseModel.LeaseStatusActive,
		Unit:        unit,
	}
}

func TestAdmitForBilling_DuplicatedLeaseIDInvoicedOnce(t *testing.T) {
	lease := admissionLease()
	leaseByID := map[uuid.UUID]*leaseModel.Lease{lease.LeaseID: lease}
	billed := map[uuid.UUID]bool{}

	reason, ok := admitForBilling(lease.LeaseID, leaseByID, billed)
	require.True(t, ok)
	assert.Empty(t, reason)

	// same id again in the same request
	reason, ok = admitForBilling(lease.LeaseID, leaseByID, billed)
	assert.False(t, ok)
	assert.Equal(t, ReasonAlreadyBilled, reason)
}

func TestAdmitForBilling_ExistingInvoiceRejected(t *testing.T) {
	lease := admissionLease()
	leaseByID := map[uuid.UUID]*leaseModel.Lease{lease.LeaseID: lease}
	billed := map[uuid.UUID]bool{lease.LeaseID: true}

	reason, ok := admitForBilling(lease.LeaseID, leaseByID, billed)
	assert.False(t, ok)
	assert.Equal(t, ReasonAlreadyBilled, reason)
}

func TestAdmitForBilling_UnknownLease(t *testing.T) {
	reason, ok := admitForBilling(uuid.New(), map[uuid.UUID]*leaseModel.Lease{}, map[uuid.UUID]bool{})
	assert.False(t, ok)
	assert.Equal(t, ReasonLeaseNotActive, reason)
}

func TestAdmitForBilling_LeaseWithoutUnit(t *testing.T) {
	lease := admissionLease()
	lease.Unit = nil
	leaseByID := map[uuid.UUID]*leaseModel.Lease{lease.LeaseID: lease}

	reason, ok := admitForBilling(lease.LeaseID, leaseByID, map[uuid.UUID]bool{})
	assert.False(t, ok)
	assert.Equal(t, ReasonLeaseNotActive, reason)
}

func TestParseBillingMonth(t *testing.T) {
	got, err := ParseBillingMonth("2025-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseBillingMonth("2025-6")
	assert.Error(t, err)

	_, err = ParseBillingMonth("06-2025")
	assert.Error(t, err)

	_, err = ParseBillingMonth("")
	assert.Error(t, err)
}
