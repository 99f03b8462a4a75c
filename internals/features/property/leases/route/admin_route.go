// file: internals/features/property/leases/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/property/leases/controller"
)

// AdminLeaseRoutes: back-office lease management.
func AdminLeaseRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaseController(db)

	r := admin.Group("/leases")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Patch)
	r.Post("/:id/activate", ctl.Activate)
	r.Post("/:id/renew", ctl.Renew)
	r.Post("/:id/terminate", ctl.Terminate)
}
