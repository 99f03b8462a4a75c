// file: internals/features/finance/meter_readings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mrController "propertyhub_backend/internals/features/finance/meter_readings/controller"
)

func AdminMeterReadingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := mrController.NewMeterReadingController(db)
	mr := r.Group("/meter-readings")
	{
		mr.Post("/bulk", ctl.BulkCreate)
		mr.Get("/", ctl.List)
		mr.Get("/export", ctl.ExportCSV)
	}
}
