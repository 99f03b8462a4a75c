// file: internals/features/finance/billings/model/billing_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, BillingStatusPaid, DeriveStatus(835000, 835000))
	assert.Equal(t, BillingStatusPartial, DeriveStatus(835000, 400000))
	assert.Equal(t, BillingStatusPending, DeriveStatus(835000, 0))

	// overpayment still counts as paid
	assert.Equal(t, BillingStatusPaid, DeriveStatus(835000, 900000))

	// zero-total invoice is immediately paid
	assert.Equal(t, BillingStatusPaid, DeriveStatus(0, 0))
}

func TestDisplayStatus_OverdueIsDerivedNotStored(t *testing.T) {
	now := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	pastDue := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	futureDue := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

	b := Billing{BillingStatus: BillingStatusPending, BillingDueDate: pastDue}
	assert.Equal(t, BillingStatusOverdue, b.DisplayStatus(now))
	// stored status untouched
	assert.Equal(t, BillingStatusPending, b.BillingStatus)

	b = Billing{BillingStatus: BillingStatusPartial, BillingDueDate: pastDue}
	assert.Equal(t, BillingStatusOverdue, b.DisplayStatus(now))

	b = Billing{BillingStatus: BillingStatusPending, BillingDueDate: futureDue}
	assert.Equal(t, BillingStatusPending, b.DisplayStatus(now))

	// settled or cancelled invoices never flip to overdue
	b = Billing{BillingStatus: BillingStatusPaid, BillingDueDate: pastDue}
	assert.Equal(t, BillingStatusPaid, b.DisplayStatus(now))

	b = Billing{BillingStatus: BillingStatusCancelled, BillingDueDate: pastDue}
	assert.Equal(t, BillingStatusCancelled, b.DisplayStatus(now))
}

func TestBillingStatusValid(t *testing.T) {
	for _, s := range []BillingStatus{
		BillingStatusPending, BillingStatusPartial, BillingStatusPaid,
		BillingStatusOverdue, BillingStatusCancelled,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, BillingStatus("refunded").Valid())
	assert.False(t, BillingStatus("").Valid())
}
