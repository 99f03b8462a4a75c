// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/finance/payments/model"
)

/* =========================
   Request DTO
   ========================= */

type RecordPaymentRequest struct {
	PaymentBillingID uuid.UUID  `json:"payment_billing_id" validate:"required"`
	PaymentAmount    float64    `json:"payment_amount"     validate:"required,gt=0"`
	PaymentMethod    string     `json:"payment_method"     validate:"required,oneof=cash transfer midtrans other"`
	PaymentPaidAt    *time.Time `json:"payment_paid_at"`
	PaymentReference *string    `json:"payment_reference"  validate:"omitempty,max=120"`
	PaymentNotes     *string    `json:"payment_notes"`
}

type SubmitPaymentClaimRequest struct {
	PaymentClaimBillingID uuid.UUID `json:"payment_claim_billing_id" validate:"required"`
	PaymentClaimAmount    float64   `json:"payment_claim_amount"     validate:"required,gt=0"`
	PaymentClaimProofURL  *string   `json:"payment_claim_proof_url"  validate:"omitempty,url"`
	PaymentClaimNotes     *string   `json:"payment_claim_notes"`
}

type RejectPaymentClaimRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

/* =========================
   Response DTO
   ========================= */

type PaymentResponse struct {
	PaymentID         uuid.UUID  `json:"payment_id"`
	PaymentCompanyID  uuid.UUID  `json:"payment_company_id"`
	PaymentBillingID  uuid.UUID  `json:"payment_billing_id"`
	PaymentTenantID   uuid.UUID  `json:"payment_tenant_id"`
	PaymentAmount     float64    `json:"payment_amount"`
	PaymentMethod     string     `json:"payment_method"`
	PaymentPaidAt     time.Time  `json:"payment_paid_at"`
	PaymentReference  *string    `json:"payment_reference,omitempty"`
	PaymentNotes      *string    `json:"payment_notes,omitempty"`
	PaymentOrderID    *string    `json:"payment_order_id,omitempty"`
	PaymentRecordedBy *uuid.UUID `json:"payment_recorded_by,omitempty"`
	PaymentCreatedAt  time.Time  `json:"payment_created_at"`
}

func FromModelPayment(p *model.Payment) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:         p.PaymentID,
		PaymentCompanyID:  p.PaymentCompanyID,
		PaymentBillingID:  p.PaymentBillingID,
		PaymentTenantID:   p.PaymentTenantID,
		PaymentAmount:     p.PaymentAmount,
		PaymentMethod:     string(p.PaymentMethod),
		PaymentPaidAt:     p.PaymentPaidAt,
		PaymentReference:  p.PaymentReference,
		PaymentNotes:      p.PaymentNotes,
		PaymentOrderID:    p.PaymentOrderID,
		PaymentRecordedBy: p.PaymentRecordedBy,
		PaymentCreatedAt:  p.PaymentCreatedAt,
	}
}

func FromModelPayments(rows []model.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModelPayment(&rows[i]))
	}
	return out
}

type PaymentClaimResponse struct {
	PaymentClaimID              uuid.UUID  `json:"payment_claim_id"`
	PaymentClaimCompanyID       uuid.UUID  `json:"payment_claim_company_id"`
	PaymentClaimBillingID       uuid.UUID  `json:"payment_claim_billing_id"`
	PaymentClaimTenantID        uuid.UUID  `json:"payment_claim_tenant_id"`
	PaymentClaimAmount          float64    `json:"payment_claim_amount"`
	PaymentClaimProofURL        *string    `json:"payment_claim_proof_url,omitempty"`
	PaymentClaimNotes           *string    `json:"payment_claim_notes,omitempty"`
	PaymentClaimStatus          string     `json:"payment_claim_status"`
	PaymentClaimRejectionReason *string    `json:"payment_claim_rejection_reason,omitempty"`
	PaymentClaimPaymentID       *uuid.UUID `json:"payment_claim_payment_id,omitempty"`
	PaymentClaimReviewedBy      *uuid.UUID `json:"payment_claim_reviewed_by,omitempty"`
	PaymentClaimReviewedAt      *time.Time `json:"payment_claim_reviewed_at,omitempty"`
	PaymentClaimCreatedAt       time.Time  `json:"payment_claim_created_at"`
}

func FromModelPaymentClaim(cl *model.PaymentClaim) *PaymentClaimResponse {
	return &PaymentClaimResponse{
		PaymentClaimID:              cl.PaymentClaimID,
		PaymentClaimCompanyID:       cl.PaymentClaimCompanyID,
		PaymentClaimBillingID:       cl.PaymentClaimBillingID,
		PaymentClaimTenantID:        cl.PaymentClaimTenantID,
		PaymentClaimAmount:          cl.PaymentClaimAmount,
		PaymentClaimProofURL:        cl.PaymentClaimProofURL,
		PaymentClaimNotes:           cl.PaymentClaimNotes,
		PaymentClaimStatus:          string(cl.PaymentClaimStatus),
		PaymentClaimRejectionReason: cl.PaymentClaimRejectionReason,
		PaymentClaimPaymentID:       cl.PaymentClaimPaymentID,
		PaymentClaimReviewedBy:      cl.PaymentClaimReviewedBy,
		PaymentClaimReviewedAt:      cl.PaymentClaimReviewedAt,
		PaymentClaimCreatedAt:       cl.PaymentClaimCreatedAt,
	}
}

func FromModelPaymentClaims(rows []model.PaymentClaim) []PaymentClaimResponse {
	out := make([]PaymentClaimResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModelPaymentClaim(&rows[i]))
	}
	return out
}
