// file: internals/features/finance/billings/dto/billing_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "propertyhub_backend/internals/features/finance/billings/model"
)

/* =========================
   Request DTO
   ========================= */

// GenerateBillingsRequest is the wizard's confirm payload. Dates come as
// plain calendar strings; due_date is not validated against issue_date here.
type GenerateBillingsRequest struct {
	BillingMonth string      `json:"billing_month" validate:"required"`
	IssueDate    string      `json:"issue_date"    validate:"required"`
	DueDate      string      `json:"due_date"      validate:"required"`
	LeaseIDs     []uuid.UUID `json:"lease_ids"     validate:"required,min=1,dive,required"`
}

/* =========================
   Response DTO
   ========================= */

type BillingItemResponse struct {
	BillingItemID             uuid.UUID  `json:"billing_item_id"`
	BillingItemFeeTypeID      *uuid.UUID `json:"billing_item_fee_type_id,omitempty"`
	BillingItemFeeName        string     `json:"billing_item_fee_name"`
	BillingItemDescription    *string    `json:"billing_item_description,omitempty"`
	BillingItemQuantity       float64    `json:"billing_item_quantity"`
	BillingItemUnitPrice      float64    `json:"billing_item_unit_price"`
	BillingItemAmount         float64    `json:"billing_item_amount"`
	BillingItemMeterReadingID *uuid.UUID `json:"billing_item_meter_reading_id,omitempty"`
	BillingItemDisplayOrder   int        `json:"billing_item_display_order"`
}

type BillingResponse struct {
	BillingID        uuid.UUID `json:"billing_id"`
	BillingCompanyID uuid.UUID `json:"billing_company_id"`
	BillingLeaseID   uuid.UUID `json:"billing_lease_id"`
	BillingTenantID  uuid.UUID `json:"billing_tenant_id"`
	BillingUnitID    uuid.UUID `json:"billing_unit_id"`

	BillingNumber    string    `json:"billing_number"`
	BillingMonth     time.Time `json:"billing_month"`
	BillingIssueDate time.Time `json:"billing_issue_date"`
	BillingDueDate   time.Time `json:"billing_due_date"`

	BillingSubtotal    float64 `json:"billing_subtotal"`
	BillingTaxAmount   float64 `json:"billing_tax_amount"`
	BillingTotalAmount float64 `json:"billing_total_amount"`
	BillingPaidAmount  float64 `json:"billing_paid_amount"`

	// persisted status with the overdue derivation applied
	BillingStatus string `json:"billing_status"`

	BillingPaidAt      *time.Time `json:"billing_paid_at,omitempty"`
	BillingCancelledAt *time.Time `json:"billing_cancelled_at,omitempty"`
	BillingNotes       *string    `json:"billing_notes,omitempty"`
	BillingCreatedAt   time.Time  `json:"billing_created_at"`

	Items []BillingItemResponse `json:"items,omitempty"`
}

func FromModelBillingItem(it *model.BillingItem) BillingItemResponse {
	return BillingItemResponse{
		BillingItemID:             it.BillingItemID,
		BillingItemFeeTypeID:      it.BillingItemFeeTypeID,
		BillingItemFeeName:        it.BillingItemFeeName,
		BillingItemDescription:    it.BillingItemDescription,
		BillingItemQuantity:       it.BillingItemQuantity,
		BillingItemUnitPrice:      it.BillingItemUnitPrice,
		BillingItemAmount:         it.BillingItemAmount,
		BillingItemMeterReadingID: it.BillingItemMeterReadingID,
		BillingItemDisplayOrder:   it.BillingItemDisplayOrder,
	}
}

func FromModelBilling(b *model.Billing, now time.Time) *BillingResponse {
	resp := &BillingResponse{
		BillingID:          b.BillingID,
		BillingCompanyID:   b.BillingCompanyID,
		BillingLeaseID:     b.BillingLeaseID,
		BillingTenantID:    b.BillingTenantID,
		BillingUnitID:      b.BillingUnitID,
		BillingNumber:      b.BillingNumber,
		BillingMonth:       b.BillingMonth,
		BillingIssueDate:   b.BillingIssueDate,
		BillingDueDate:     b.BillingDueDate,
		BillingSubtotal:    b.BillingSubtotal,
		BillingTaxAmount:   b.BillingTaxAmount,
		BillingTotalAmount: b.BillingTotalAmount,
		BillingPaidAmount:  b.BillingPaidAmount,
		BillingStatus:      string(b.DisplayStatus(now)),
		BillingPaidAt:      b.BillingPaidAt,
		BillingCancelledAt: b.BillingCancelledAt,
		BillingNotes:       b.BillingNotes,
		BillingCreatedAt:   b.BillingCreatedAt,
	}
	for i := range b.Items {
		resp.Items = append(resp.Items, FromModelBillingItem(&b.Items[i]))
	}
	return resp
}

func FromModelBillings(rows []model.Billing, now time.Time) []BillingResponse {
	out := make([]BillingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModelBilling(&rows[i], now))
	}
	return out
}
