// file: internals/features/finance/payments/service/apply.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	billingModel "propertyhub_backend/internals/features/finance/billings/model"
	model "propertyhub_backend/internals/features/finance/payments/model"
)

var (
	ErrBillingCancelled = errors.New("cancelled billing cannot receive payments")
	ErrAmountInvalid    = errors.New("payment amount must be greater than 0")
)

// ApplyPayment inserts the payment row and rolls its amount into the billing:
// paid_amount accumulates and the status is re-derived (pending/partial/paid).
// paid_at is stamped the first time the billing becomes fully paid.
// Runs inside the given transaction handle.
func ApplyPayment(tx *gorm.DB, billing *billingModel.Billing, p *model.Payment) error {
	if billing.BillingStatus == billingModel.BillingStatusCancelled {
		return ErrBillingCancelled
	}
	if p.PaymentAmount <= 0 {
		return ErrAmountInvalid
	}

	if err := tx.Create(p).Error; err != nil {
		return err
	}

	newPaid := billing.BillingPaidAmount + p.PaymentAmount
	newStatus := billingModel.DeriveStatus(billing.BillingTotalAmount, newPaid)

	updates := map[string]interface{}{
		"billing_paid_amount": newPaid,
		"billing_status":      newStatus,
		"billing_updated_at":  time.Now().UTC(),
	}
	if newStatus == billingModel.BillingStatusPaid && billing.BillingPaidAt == nil {
		updates["billing_paid_at"] = p.PaymentPaidAt
	}

	if err := tx.Model(&billingModel.Billing{}).
		Where("billing_id = ?", billing.BillingID).
		Updates(updates).Error; err != nil {
		return err
	}

	billing.BillingPaidAmount = newPaid
	billing.BillingStatus = newStatus
	return nil
}
