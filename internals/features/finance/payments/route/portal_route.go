// file: internals/features/finance/payments/route/portal_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/finance/payments/controller"
)

// PortalPaymentRoutes: tenant-facing checkout and claims.
func PortalPaymentRoutes(portal fiber.Router, db *gorm.DB) {
	claimCtl := controller.NewPaymentClaimController(db)
	checkoutCtl := controller.NewCheckoutController(db)

	portal.Post("/billings/:id/checkout", checkoutCtl.CreateSnapToken)
	portal.Post("/payment-claims", claimCtl.Submit)
	portal.Get("/payment-claims", claimCtl.MyClaims)
}

// PublicPaymentRoutes: gateway callbacks, no auth.
func PublicPaymentRoutes(public fiber.Router, db *gorm.DB) {
	paymentCtl := controller.NewPaymentController(db)
	public.Post("/payments/webhook", paymentCtl.HandleWebhook)
}
