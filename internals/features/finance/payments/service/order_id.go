// file: internals/features/finance/payments/service/order_id.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BuildOrderID issues a gateway order id for one billing. The unix suffix
// keeps retried checkout attempts distinct at the gateway.
func BuildOrderID(billingID uuid.UUID) string {
	return fmt.Sprintf("PH-%s-%d", billingID, time.Now().Unix())
}

// ParseOrderID recovers the billing id from PH-{billing_id}-{unix}.
func ParseOrderID(orderID string) (uuid.UUID, error) {
	parts := strings.Split(orderID, "-")
	// PH + 5 uuid groups + unix suffix
	if len(parts) < 7 || parts[0] != "PH" {
		return uuid.Nil, fmt.Errorf("order id %q is not in PH-{uuid}-{ts} form", orderID)
	}
	raw := strings.Join(parts[1:6], "-")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("order id %q carries no billing id: %w", orderID, err)
	}
	return id, nil
}
