// file: internals/features/finance/billings/service/generate.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "propertyhub_backend/internals/features/finance/billings/model"
	leaseModel "propertyhub_backend/internals/features/property/leases/model"
)

/* =========================
   Input / report types
   ========================= */

type GenerateInput struct {
	CompanyID uuid.UUID
	// first day of the billed month
	MonthStart time.Time
	IssueDate  time.Time
	DueDate    time.Time
	// processed in the given order
	LeaseIDs []uuid.UUID
}

// Failure reasons surfaced in the per-lease report.
const (
	ReasonLeaseNotActive = "lease_not_active"
	ReasonAlreadyBilled  = "already_billed"
	ReasonInsertFailed   = "insert_failed"
)

// LeaseResult is the outcome for one selected lease. Failures carry a reason
// instead of being silently dropped from the count.
type LeaseResult struct {
	LeaseID       uuid.UUID  `json:"lease_id"`
	Success       bool       `json:"success"`
	Reason        string     `json:"reason,omitempty"`
	BillingID     *uuid.UUID `json:"billing_id,omitempty"`
	BillingNumber string     `json:"billing_number,omitempty"`
	TotalAmount   float64    `json:"total_amount,omitempty"`
}

type GenerateReport struct {
	GeneratedCount int           `json:"generated_count"`
	Results        []LeaseResult `json:"results"`
}

/* =========================
   Numbering
   ========================= */

// FormatBillingNumber builds INV-{YYYYMM}-{seq} with a 4-digit, 1-based
// sequence. The sequence counts successfully created billings within one run;
// nothing checks uniqueness across runs, so a repeat run for the same month
// restarts at 0001.
func FormatBillingNumber(monthStart time.Time, seq int) string {
	return fmt.Sprintf("INV-%s-%04d", monthStart.Format("200601"), seq)
}

// ParseBillingMonth parses "YYYY-MM" into the first day of that month (UTC).
func ParseBillingMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("billing_month must be YYYY-MM: %w", err)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

/* =========================
   Generation
   ========================= */

// admitForBilling applies the per-lease preconditions: the lease must be
// active with its unit loaded, and must not already hold a non-cancelled
// invoice for the month. An admitted lease is immediately marked billed, so a
// lease id repeated in the same request gets already_billed on its second
// occurrence instead of a second invoice. One insert attempt per lease per
// run.
func admitForBilling(leaseID uuid.UUID, leaseByID map[uuid.UUID]*leaseModel.Lease, billed map[uuid.UUID]bool) (string, bool) {
	lease, ok := leaseByID[leaseID]
	if !ok || lease.Unit == nil {
		return ReasonLeaseNotActive, false
	}
	if billed[leaseID] {
		return ReasonAlreadyBilled, false
	}
	billed[leaseID] = true
	return "", true
}

// Generate runs the engine for one company and one month: resolve the selected
// leases, fetch the fee plan in bulk, then assemble and persist one billing per
// lease sequentially. Per-lease failures end up in the report; only plan-level
// fetch errors abort the run.
//
// A lease that already has a non-cancelled billing for the month is rejected
// with reason already_billed rather than double-invoiced.
func Generate(db *gorm.DB, in GenerateInput) (*GenerateReport, error) {
	var leases []leaseModel.Lease
	if err := db.
		Preload("Unit").
		Scopes(leaseModel.ScopeByCompany(in.CompanyID), leaseModel.ScopeActive).
		Where("lease_id IN ?", in.LeaseIDs).
		Find(&leases).Error; err != nil {
		return nil, err
	}
	leaseByID := make(map[uuid.UUID]*leaseModel.Lease, len(leases))
	unitIDs := make([]uuid.UUID, 0, len(leases))
	for i := range leases {
		leaseByID[leases[i].LeaseID] = &leases[i]
		unitIDs = append(unitIDs, leases[i].LeaseUnitID)
	}

	// leases already invoiced for this month (cancelled ones do not count)
	var billedLeaseIDs []uuid.UUID
	if err := db.Model(&model.Billing{}).
		Scopes(model.ScopeByCompany(in.CompanyID), model.ScopeByMonth(in.MonthStart), model.ScopeNotCancelled).
		Where("billing_lease_id IN ?", in.LeaseIDs).
		Pluck("billing_lease_id", &billedLeaseIDs).Error; err != nil {
		return nil, err
	}
	alreadyBilled := make(map[uuid.UUID]bool, len(billedLeaseIDs))
	for _, id := range billedLeaseIDs {
		alreadyBilled[id] = true
	}

	plan, err := BuildFeePlan(db, in.CompanyID, unitIDs, in.MonthStart)
	if err != nil {
		return nil, err
	}

	report := &GenerateReport{Results: make([]LeaseResult, 0, len(in.LeaseIDs))}
	seq := 1

	// input order is the persistence order
	for _, leaseID := range in.LeaseIDs {
		reason, ok := admitForBilling(leaseID, leaseByID, alreadyBilled)
		if !ok {
			report.Results = append(report.Results, LeaseResult{LeaseID: leaseID, Reason: reason})
			continue
		}
		lease := leaseByID[leaseID]

		items, total := AssembleLeaseLines(lease, plan)

		billing := &model.Billing{
			BillingCompanyID:   in.CompanyID,
			BillingLeaseID:     lease.LeaseID,
			BillingTenantID:    lease.LeaseTenantID,
			BillingUnitID:      lease.LeaseUnitID,
			BillingNumber:      FormatBillingNumber(in.MonthStart, seq),
			BillingMonth:       in.MonthStart,
			BillingIssueDate:   in.IssueDate,
			BillingDueDate:     in.DueDate,
			BillingSubtotal:    total,
			BillingTaxAmount:   0,
			BillingTotalAmount: total,
			BillingPaidAmount:  0,
			BillingStatus:      model.BillingStatusPending,
		}

		if err := db.Create(billing).Error; err != nil {
			// a failed header does not consume a sequence number
			report.Results = append(report.Results, LeaseResult{
				LeaseID: leaseID,
				Reason:  fmt.Sprintf("%s: %v", ReasonInsertFailed, err),
			})
			continue
		}
		seq++

		// best-effort item inserts; the header stands either way
		for i := range items {
			items[i].BillingItemBillingID = billing.BillingID
			if err := db.Create(&items[i]).Error; err != nil {
				log.Printf("[BILLING] ⚠️ item insert failed billing=%s fee=%s: %v",
					billing.BillingNumber, items[i].BillingItemFeeName, err)
			}
		}

		id := billing.BillingID
		report.GeneratedCount++
		report.Results = append(report.Results, LeaseResult{
			LeaseID:       leaseID,
			Success:       true,
			BillingID:     &id,
			BillingNumber: billing.BillingNumber,
			TotalAmount:   total,
		})
	}

	return report, nil
}
