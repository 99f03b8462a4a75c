// file: internals/features/finance/billings/model/billing_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (Go-side)
   ========================= */

type BillingStatus string

const (
	BillingStatusPending   BillingStatus = "pending"
	BillingStatusPartial   BillingStatus = "partial"
	BillingStatusPaid      BillingStatus = "paid"
	BillingStatusOverdue   BillingStatus = "overdue"
	BillingStatusCancelled BillingStatus = "cancelled"
)

func (s BillingStatus) Valid() bool {
	switch s {
	case BillingStatusPending, BillingStatusPartial, BillingStatusPaid,
		BillingStatusOverdue, BillingStatusCancelled:
		return true
	}
	return false
}

// DeriveStatus maps paid_amount against total_amount. Cancelled is sticky and
// never re-derived; overdue is a display-time concern, see DisplayStatus.
func DeriveStatus(totalAmount, paidAmount float64) BillingStatus {
	switch {
	case paidAmount >= totalAmount:
		return BillingStatusPaid
	case paidAmount > 0:
		return BillingStatusPartial
	default:
		return BillingStatusPending
	}
}

/* =========================
   Model: billings
   ========================= */

// Billing is one invoice for one lease for one billing month.
type Billing struct {
	BillingID uuid.UUID `json:"billing_id" gorm:"column:billing_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	BillingCompanyID uuid.UUID `json:"billing_company_id" gorm:"column:billing_company_id;type:uuid;not null;index"`

	BillingLeaseID  uuid.UUID `json:"billing_lease_id"  gorm:"column:billing_lease_id;type:uuid;not null;index"`
	BillingTenantID uuid.UUID `json:"billing_tenant_id" gorm:"column:billing_tenant_id;type:uuid;not null;index"`
	BillingUnitID   uuid.UUID `json:"billing_unit_id"   gorm:"column:billing_unit_id;type:uuid;not null"`

	BillingNumber string `json:"billing_number" gorm:"column:billing_number;type:varchar(30);not null;index"`

	// first day of the billed month
	BillingMonth     time.Time `json:"billing_month"      gorm:"column:billing_month;type:date;not null;index"`
	BillingIssueDate time.Time `json:"billing_issue_date" gorm:"column:billing_issue_date;type:date;not null"`
	BillingDueDate   time.Time `json:"billing_due_date"   gorm:"column:billing_due_date;type:date;not null"`

	BillingSubtotal    float64 `json:"billing_subtotal"     gorm:"column:billing_subtotal;type:numeric(14,2);not null;default:0"`
	BillingTaxAmount   float64 `json:"billing_tax_amount"   gorm:"column:billing_tax_amount;type:numeric(14,2);not null;default:0"`
	BillingTotalAmount float64 `json:"billing_total_amount" gorm:"column:billing_total_amount;type:numeric(14,2);not null;default:0"`
	BillingPaidAmount  float64 `json:"billing_paid_amount"  gorm:"column:billing_paid_amount;type:numeric(14,2);not null;default:0"`

	BillingStatus BillingStatus `json:"billing_status" gorm:"column:billing_status;type:varchar(20);not null;default:'pending'"`

	BillingPaidAt      *time.Time `json:"billing_paid_at,omitempty"      gorm:"column:billing_paid_at;type:timestamptz"`
	BillingCancelledAt *time.Time `json:"billing_cancelled_at,omitempty" gorm:"column:billing_cancelled_at;type:timestamptz"`
	BillingNotes       *string    `json:"billing_notes,omitempty"        gorm:"column:billing_notes;type:text"`

	BillingCreatedAt time.Time `json:"billing_created_at" gorm:"column:billing_created_at;type:timestamptz;not null;default:now()"`
	BillingUpdatedAt time.Time `json:"billing_updated_at" gorm:"column:billing_updated_at;type:timestamptz;not null;default:now()"`

	Items []BillingItem `json:"items,omitempty" gorm:"foreignKey:BillingItemBillingID;references:BillingID"`
}

func (Billing) TableName() string { return "billings" }

func (b *Billing) BeforeCreate(tx *gorm.DB) error {
	b.BillingUpdatedAt = time.Now().UTC()
	return nil
}
func (b *Billing) BeforeUpdate(tx *gorm.DB) error {
	b.BillingUpdatedAt = time.Now().UTC()
	return nil
}

// DisplayStatus layers the overdue derivation on top of the persisted status:
// a pending/partial billing past its due date reads as overdue, without ever
// being written back.
func (b *Billing) DisplayStatus(now time.Time) BillingStatus {
	if b.BillingStatus == BillingStatusPending || b.BillingStatus == BillingStatusPartial {
		if b.BillingDueDate.Before(now) {
			return BillingStatusOverdue
		}
	}
	return b.BillingStatus
}

/* =========================
   Model: billing_items
   ========================= */

// BillingItem is one line of a Billing. The rent line carries no fee_type_id.
// Items are written once at generation time and never mutated.
type BillingItem struct {
	BillingItemID uuid.UUID `json:"billing_item_id" gorm:"column:billing_item_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	BillingItemBillingID uuid.UUID  `json:"billing_item_billing_id"            gorm:"column:billing_item_billing_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	BillingItemFeeTypeID *uuid.UUID `json:"billing_item_fee_type_id,omitempty" gorm:"column:billing_item_fee_type_id;type:uuid"`

	BillingItemFeeName     string  `json:"billing_item_fee_name"              gorm:"column:billing_item_fee_name;type:text;not null"`
	BillingItemDescription *string `json:"billing_item_description,omitempty" gorm:"column:billing_item_description;type:text"`

	BillingItemQuantity  float64 `json:"billing_item_quantity"   gorm:"column:billing_item_quantity;type:numeric(14,3);not null;default:1"`
	BillingItemUnitPrice float64 `json:"billing_item_unit_price" gorm:"column:billing_item_unit_price;type:numeric(14,2);not null;default:0"`
	BillingItemAmount    float64 `json:"billing_item_amount"     gorm:"column:billing_item_amount;type:numeric(14,2);not null;default:0"`

	// set only for metered lines
	BillingItemMeterReadingID *uuid.UUID `json:"billing_item_meter_reading_id,omitempty" gorm:"column:billing_item_meter_reading_id;type:uuid"`

	BillingItemDisplayOrder int `json:"billing_item_display_order" gorm:"column:billing_item_display_order;not null;default:0"`

	BillingItemCreatedAt time.Time `json:"billing_item_created_at" gorm:"column:billing_item_created_at;type:timestamptz;not null;default:now()"`
}

func (BillingItem) TableName() string { return "billing_items" }

/* =========================
   Scopes
   ========================= */

func ScopeByCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("billing_company_id = ?", companyID)
	}
}
func ScopeByTenant(tenantID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("billing_tenant_id = ?", tenantID)
	}
}
func ScopeByMonth(monthStart time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("billing_month = ?", monthStart)
	}
}
func ScopeNotCancelled(db *gorm.DB) *gorm.DB {
	return db.Where("billing_status <> ?", BillingStatusCancelled)
}
