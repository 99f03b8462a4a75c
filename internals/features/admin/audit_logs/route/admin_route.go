// file: internals/features/admin/audit_logs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertyhub_backend/internals/features/admin/audit_logs/controller"
)

// AdminAuditLogRoutes: read-only audit trail, admin and owner only.
func AdminAuditLogRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuditLogController(db)
	admin.Get("/audit-logs", ctl.List)
}
