// file: internals/features/admin/users/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/admin/users/controller"
)

// AdminUserRoutes: account management, admin and owner only.
func AdminUserRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewUserController(db)

	r := admin.Group("/users")
	r.Post("/", ctl.Create)
	r.Get("/", ctl.List)
	r.Get("/:id", ctl.GetByID)
	r.Patch("/:id", ctl.Patch)
	r.Post("/:id/reset-password", ctl.ResetPassword)
}
