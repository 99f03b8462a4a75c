// file: internals/features/admin/subscriptions/route/routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/admin/subscriptions/controller"
)

// SystemSubscriptionRoutes: plan management, system admin only.
func SystemSubscriptionRoutes(system fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubscriptionController(db)

	r := system.Group("/subscriptions")
	r.Put("/", ctl.Upsert)
	r.Get("/", ctl.List)
}

// AdminSubscriptionRoutes: company view of its own plan.
func AdminSubscriptionRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubscriptionController(db)
	admin.Get("/subscriptions/me", ctl.MySubscription)
}
