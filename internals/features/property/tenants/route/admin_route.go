// file: internals/features/property/tenants/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tController "propertyhub_backend/internals/features/property/tenants/controller"
)

func AdminTenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := tController.NewTenantController(db)
	t := r.Group("/tenants")
	{
		t.Post("/", ctl.Create)
		t.Get("/", ctl.List)
		t.Get("/:id", ctl.GetByID)
		t.Patch("/:id", ctl.Patch)
		t.Delete("/:id", ctl.Delete)
	}
}
