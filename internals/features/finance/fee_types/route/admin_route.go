// file: internals/features/finance/fee_types/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ftController "propertyhub_backend/internals/features/finance/fee_types/controller"
)

func AdminFeeTypeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ftController.NewFeeTypeController(db)
	ft := r.Group("/fee-types")
	{
		ft.Post("/", ctl.Create)
		ft.Get("/", ctl.List)
		ft.Get("/:id", ctl.GetByID)
		ft.Patch("/:id", ctl.Patch)
		ft.Put("/reorder", ctl.Reorder)
		ft.Delete("/:id", ctl.Deactivate) // soft: deactivate only
	}
}
