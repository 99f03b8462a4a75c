// file: internals/features/finance/billings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/finance/billings/controller"
)

// AdminBillingRoutes: invoice generation and back-office billing views.
func AdminBillingRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewBillingController(db)

	r := admin.Group("/billings")
	r.Post("/generate", ctl.Generate)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Post("/:id/cancel", ctl.Cancel)
}
