// file: internals/features/maintenance/requests/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/maintenance/requests/controller"
)

// AdminMaintenanceRoutes: staff maintenance board.
func AdminMaintenanceRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewMaintenanceRequestController(db)

	r := admin.Group("/maintenance-requests")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Patch)
	r.Post("/:id/transition", ctl.Transition)
	r.Post("/:id/photos", ctl.UploadPhoto)
}
