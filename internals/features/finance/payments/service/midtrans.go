// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	billingModel "propertyhub_backend/internals/features/finance/billings/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client with the configured server key.
func InitMidtrans(serverKey string, production bool) {
	if production {
		SnapClient.New(serverKey, midtrans.Production)
		return
	}
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap transaction for the open balance of one
// billing. The order id doubles as the webhook correlation key.
func GenerateSnapToken(b *billingModel.Billing, orderID, tenantName, tenantEmail string) (string, error) {
	outstanding := b.BillingTotalAmount - b.BillingPaidAmount

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(outstanding),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: tenantName,
			Email: tenantEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    b.BillingNumber,
				Name:  "Invoice " + b.BillingNumber,
				Price: int64(outstanding),
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
