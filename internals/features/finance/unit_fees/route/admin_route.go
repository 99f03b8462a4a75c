// file: internals/features/finance/unit_fees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ufController "propertyhub_backend/internals/features/finance/unit_fees/controller"
)

func AdminUnitFeeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ufController.NewUnitFeeController(db)
	uf := r.Group("/unit-fees")
	{
		uf.Post("/", ctl.Create)
		uf.Get("/", ctl.List)
		uf.Patch("/:id", ctl.Patch)
		uf.Delete("/:id", ctl.Delete)
	}
}
