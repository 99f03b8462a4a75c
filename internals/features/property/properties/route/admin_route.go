// file: internals/features/property/properties/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pController "propertyhub_backend/internals/features/property/properties/controller"
)

func AdminPropertyRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pController.NewPropertyController(db)
	p := r.Group("/properties")
	{
		p.Post("/", ctl.Create)
		p.Get("/", ctl.List)
		p.Get("/:id", ctl.GetByID)
		p.Patch("/:id", ctl.Patch)
		p.Delete("/:id", ctl.Delete)
	}
}
