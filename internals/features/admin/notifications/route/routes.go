// file: internals/features/admin/notifications/route/routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertyhub_backend/internals/features/admin/notifications/controller"
)

// AdminNotificationRoutes mounts announcement management for staff users.
func AdminNotificationRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	n := admin.Group("/notifications")
	n.Post("/", ctrl.Create)
	n.Get("/", ctrl.ListMine)
	n.Post("/:id/read", ctrl.MarkRead)
	n.Delete("/:id", ctrl.Delete)
}

// PortalNotificationRoutes mounts the renter-facing feed.
func PortalNotificationRoutes(portal fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	n := portal.Group("/notifications")
	n.Get("/", ctrl.ListMine)
	n.Post("/:id/read", ctrl.MarkRead)
}
