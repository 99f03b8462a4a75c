// file: internals/features/finance/payments/model/payment_claim_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (Go-side)
   ========================= */

type PaymentClaimStatus string

const (
	PaymentClaimStatusPending  PaymentClaimStatus = "pending"
	PaymentClaimStatusApproved PaymentClaimStatus = "approved"
	PaymentClaimStatusRejected PaymentClaimStatus = "rejected"
)

/* =========================
   Model: payment_claims
   ========================= */

// PaymentClaim is a tenant-submitted "I paid" notice awaiting staff review.
// A claim is settled exactly once: approved claims produce a Payment, rejected
// claims carry a reason. Neither is ever re-opened.
type PaymentClaim struct {
	PaymentClaimID uuid.UUID `json:"payment_claim_id" gorm:"column:payment_claim_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	PaymentClaimCompanyID uuid.UUID `json:"payment_claim_company_id" gorm:"column:payment_claim_company_id;type:uuid;not null;index"`

	PaymentClaimBillingID uuid.UUID `json:"payment_claim_billing_id" gorm:"column:payment_claim_billing_id;type:uuid;not null;index"`
	PaymentClaimTenantID  uuid.UUID `json:"payment_claim_tenant_id"  gorm:"column:payment_claim_tenant_id;type:uuid;not null;index"`

	PaymentClaimAmount   float64 `json:"payment_claim_amount" gorm:"column:payment_claim_amount;type:numeric(14,2);not null"`
	PaymentClaimProofURL *string `json:"payment_claim_proof_url,omitempty" gorm:"column:payment_claim_proof_url;type:text"`
	PaymentClaimNotes    *string `json:"payment_claim_notes,omitempty"     gorm:"column:payment_claim_notes;type:text"`

	PaymentClaimStatus          PaymentClaimStatus `json:"payment_claim_status" gorm:"column:payment_claim_status;type:varchar(20);not null;default:'pending'"`
	PaymentClaimRejectionReason *string            `json:"payment_claim_rejection_reason,omitempty" gorm:"column:payment_claim_rejection_reason;type:text"`

	// set on approval; links the Payment created from this claim
	PaymentClaimPaymentID *uuid.UUID `json:"payment_claim_payment_id,omitempty" gorm:"column:payment_claim_payment_id;type:uuid"`

	PaymentClaimReviewedBy *uuid.UUID `json:"payment_claim_reviewed_by,omitempty" gorm:"column:payment_claim_reviewed_by;type:uuid"`
	PaymentClaimReviewedAt *time.Time `json:"payment_claim_reviewed_at,omitempty" gorm:"column:payment_claim_reviewed_at;type:timestamptz"`

	PaymentClaimCreatedAt time.Time `json:"payment_claim_created_at" gorm:"column:payment_claim_created_at;type:timestamptz;not null;default:now()"`
	PaymentClaimUpdatedAt time.Time `json:"payment_claim_updated_at" gorm:"column:payment_claim_updated_at;type:timestamptz;not null;default:now()"`
}

func (PaymentClaim) TableName() string { return "payment_claims" }

func (p *PaymentClaim) BeforeCreate(tx *gorm.DB) error {
	p.PaymentClaimUpdatedAt = time.Now().UTC()
	return nil
}
func (p *PaymentClaim) BeforeUpdate(tx *gorm.DB) error {
	p.PaymentClaimUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeClaimsByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_claim_company_id = ?", companyID)
	}
}
func ScopeClaimsPending(db *gorm.DB) *gorm.DB {
	return db.Where("payment_claim_status = ?", PaymentClaimStatusPending)
}
