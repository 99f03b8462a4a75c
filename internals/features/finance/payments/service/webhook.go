// file: internals/features/finance/payments/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	billingModel "propertyhub_backend/internals/features/finance/billings/model"
	model "propertyhub_backend/internals/features/finance/payments/model"
)

// HandlePaymentWebhook processes a Midtrans notification payload. The order id
// is the key we issued when creating the Snap token: PH-{billing_id}-{unix}.
// Settlement applies the outstanding amount as a midtrans payment; everything
// else is acknowledged and ignored.
func HandlePaymentWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[WEBHOOK] ❌ incomplete payload:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("📄 order_id:", orderID)
	log.Println("📌 transaction_status:", status)

	switch status {
	case "capture", "settlement":
		// fallthrough to settle below
	case "deny", "cancel", "expire", "failure":
		log.Printf("[WEBHOOK] order %s ended as %s, nothing applied", orderID, status)
		return nil
	default:
		log.Printf("[WEBHOOK] order %s status %s ignored", orderID, status)
		return nil
	}

	// replay guard: each order settles at most once
	var dup int64
	if err := db.Model(&model.Payment{}).
		Where("payment_order_id = ?", orderID).
		Count(&dup).Error; err != nil {
		return err
	}
	if dup > 0 {
		log.Printf("[WEBHOOK] order %s already settled, skipping", orderID)
		return nil
	}

	billingID, err := ParseOrderID(orderID)
	if err != nil {
		return err
	}

	var billing billingModel.Billing
	if err := db.Where("billing_id = ?", billingID).First(&billing).Error; err != nil {
		return fmt.Errorf("billing for order %s not found: %w", orderID, err)
	}

	outstanding := billing.BillingTotalAmount - billing.BillingPaidAmount
	if outstanding <= 0 {
		log.Printf("[WEBHOOK] billing %s already settled, skipping", billing.BillingNumber)
		return nil
	}

	oid := orderID
	payment := &model.Payment{
		PaymentCompanyID: billing.BillingCompanyID,
		PaymentBillingID: billing.BillingID,
		PaymentTenantID:  billing.BillingTenantID,
		PaymentAmount:    outstanding,
		PaymentMethod:    model.PaymentMethodMidtrans,
		PaymentPaidAt:    time.Now().UTC(),
		PaymentOrderID:   &oid,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		return ApplyPayment(tx, &billing, payment)
	})
}
