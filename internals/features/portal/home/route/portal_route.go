// file: internals/features/portal/home/route/portal_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/portal/home/controller"
)

// PortalHomeRoutes: renter-scoped reads plus maintenance filing.
func PortalHomeRoutes(portal fiber.Router, db *gorm.DB) {
	ctl := controller.NewPortalController(db)

	portal.Get("/lease", ctl.MyLease)
	portal.Get("/billings", ctl.MyBillings)
	portal.Get("/billings/:id", ctl.MyBillingDetail)
	portal.Get("/maintenance-requests", ctl.MyMaintenance)
	portal.Post("/maintenance-requests", ctl.CreateMaintenance)
}
