// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/finance/payments/controller"
)

// AdminPaymentRoutes: staff payment recording and claim review.
func AdminPaymentRoutes(admin fiber.Router, db *gorm.DB) {
	paymentCtl := controller.NewPaymentController(db)
	claimCtl := controller.NewPaymentClaimController(db)

	payments := admin.Group("/payments")
	payments.Post("/", paymentCtl.Record)
	payments.Get("/", paymentCtl.List)

	claims := admin.Group("/payment-claims")
	claims.Get("/", claimCtl.List)
	claims.Post("/:id/approve", claimCtl.Approve)
	claims.Post("/:id/reject", claimCtl.Reject)
}
