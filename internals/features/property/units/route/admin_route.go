// file: internals/features/property/units/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uController "propertyhub_backend/internals/features/property/units/controller"
)

func AdminUnitRoutes(r fiber.Router, db *gorm.DB) {
	ctl := uController.NewUnitController(db)
	u := r.Group("/units")
	{
		u.Post("/", ctl.Create)
		u.Get("/", ctl.List)
		u.Get("/:id", ctl.GetByID)
		u.Patch("/:id", ctl.Patch)
		u.Patch("/:id/layout", ctl.UpdateLayout)
		u.Delete("/:id", ctl.Delete)
	}
}
