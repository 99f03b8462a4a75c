// file: internals/features/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertyhub_backend/internals/features/reports/controller"
)

func AdminReportRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	r := admin.Group("/reports")
	r.Get("/occupancy", ctrl.Occupancy)
	r.Get("/revenue", ctrl.Revenue)
}
