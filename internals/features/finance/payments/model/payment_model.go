// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (Go-side)
   ========================= */

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodMidtrans PaymentMethod = "midtrans"
	PaymentMethodOther    PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodMidtrans, PaymentMethodOther:
		return true
	}
	return false
}

/* =========================
   Model: payments
   ========================= */

// Payment is one settled amount against one billing. Rows are append-only;
// corrections go through a new payment, never an edit.
type Payment struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	PaymentCompanyID uuid.UUID `json:"payment_company_id" gorm:"column:payment_company_id;type:uuid;not null;index"`

	PaymentBillingID uuid.UUID `json:"payment_billing_id" gorm:"column:payment_billing_id;type:uuid;not null;index"`
	PaymentTenantID  uuid.UUID `json:"payment_tenant_id"  gorm:"column:payment_tenant_id;type:uuid;not null;index"`

	PaymentAmount float64       `json:"payment_amount" gorm:"column:payment_amount;type:numeric(14,2);not null"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"column:payment_method;type:varchar(20);not null"`

	PaymentPaidAt    time.Time `json:"payment_paid_at"             gorm:"column:payment_paid_at;type:timestamptz;not null"`
	PaymentReference *string   `json:"payment_reference,omitempty" gorm:"column:payment_reference;type:varchar(120)"`
	PaymentNotes     *string   `json:"payment_notes,omitempty"     gorm:"column:payment_notes;type:text"`

	// midtrans order id, set only for gateway payments
	PaymentOrderID *string `json:"payment_order_id,omitempty" gorm:"column:payment_order_id;type:varchar(100);uniqueIndex"`

	// staff user who recorded it; nil for gateway settlements
	PaymentRecordedBy *uuid.UUID `json:"payment_recorded_by,omitempty" gorm:"column:payment_recorded_by;type:uuid"`

	PaymentCreatedAt time.Time `json:"payment_created_at" gorm:"column:payment_created_at;type:timestamptz;not null;default:now()"`
}

func (Payment) TableName() string { return "payments" }

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_company_id = ?", companyID)
	}
}
func ScopeByBilling(billingID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_billing_id = ?", billingID)
	}
}
