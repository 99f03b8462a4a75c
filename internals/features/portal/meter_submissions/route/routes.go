// file: internals/features/portal/meter_submissions/route/routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/portal/meter_submissions/controller"
)

// PortalMeterSubmissionRoutes: tenant submit + own history.
func PortalMeterSubmissionRoutes(portal fiber.Router, db *gorm.DB) {
	ctl := controller.NewMeterSubmissionController(db)

	portal.Post("/meter-submissions", ctl.Submit)
	portal.Get("/meter-submissions", ctl.MySubmissions)
}

// AdminMeterSubmissionRoutes: staff review queue.
func AdminMeterSubmissionRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewMeterSubmissionController(db)

	r := admin.Group("/meter-submissions")
	r.Get("/", ctl.List)
	r.Post("/:id/approve", ctl.Approve)
	r.Post("/:id/reject", ctl.Reject)
}
