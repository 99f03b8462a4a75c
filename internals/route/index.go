// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminAuditLogRoute "propertyhub_backend/internals/features/admin/audit_logs/route"
	adminNotificationRoute "propertyhub_backend/internals/features/admin/notifications/route"
	adminSubscriptionRoute "propertyhub_backend/internals/features/admin/subscriptions/route"
	adminUserRoute "propertyhub_backend/internals/features/admin/users/route"
	billingRoute "propertyhub_backend/internals/features/finance/billings/route"
	feeTypeRoute "propertyhub_backend/internals/features/finance/fee_types/route"
	meterReadingRoute "propertyhub_backend/internals/features/finance/meter_readings/route"
	paymentRoute "propertyhub_backend/internals/features/finance/payments/route"
	unitFeeRoute "propertyhub_backend/internals/features/finance/unit_fees/route"
	maintenanceRoute "propertyhub_backend/internals/features/maintenance/requests/route"
	portalHomeRoute "propertyhub_backend/internals/features/portal/home/route"
	meterSubmissionRoute "propertyhub_backend/internals/features/portal/meter_submissions/route"
	leaseRoute "propertyhub_backend/internals/features/property/leases/route"
	propertyRoute "propertyhub_backend/internals/features/property/properties/route"
	tenantRoute "propertyhub_backend/internals/features/property/tenants/route"
	unitRoute "propertyhub_backend/internals/features/property/units/route"
	reportRoute "propertyhub_backend/internals/features/reports/route"
	middlewares "propertyhub_backend/internals/middlewares"
	authMiddleware "propertyhub_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	}

	// ===================== GROUPS =====================

	// PUBLIC → no auth (payment gateway webhook), write-limited
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", middlewares.WriteRateLimiter())

	// ADMIN → company staff and above
	log.Println("[INFO] Setting up ADMIN group (Auth + staff)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.RequireStaff("back office"),
	)

	// Management of users, announcements and logs needs admin/owner
	adminStrict := app.Group("/api/a",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.RequireAdmin("company administration"),
	)

	// PORTAL → renter accounts
	log.Println("[INFO] Setting up PORTAL group (Auth + tenant)...")
	portal := app.Group("/api/u",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.RequireTenant("tenant portal"),
	)

	// SYSTEM → platform back office
	log.Println("[INFO] Setting up SYSTEM group (Auth + system)...")
	system := app.Group("/api/s",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.RequireSystem("platform administration"),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Property routes...")
	propertyRoute.AdminPropertyRoutes(admin, db)
	unitRoute.AdminUnitRoutes(admin, db)
	tenantRoute.AdminTenantRoutes(admin, db)
	leaseRoute.AdminLeaseRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	feeTypeRoute.AdminFeeTypeRoutes(admin, db)
	unitFeeRoute.AdminUnitFeeRoutes(admin, db)
	meterReadingRoute.AdminMeterReadingRoutes(admin, db)
	billingRoute.AdminBillingRoutes(admin, db)
	paymentRoute.AdminPaymentRoutes(admin, db)
	paymentRoute.PortalPaymentRoutes(portal, db)
	paymentRoute.PublicPaymentRoutes(public, db)

	log.Println("[INFO] Mounting Maintenance routes...")
	maintenanceRoute.AdminMaintenanceRoutes(admin, db)

	log.Println("[INFO] Mounting Portal routes...")
	portalHomeRoute.PortalHomeRoutes(portal, db)
	meterSubmissionRoute.PortalMeterSubmissionRoutes(portal, db)
	meterSubmissionRoute.AdminMeterSubmissionRoutes(admin, db)
	adminNotificationRoute.PortalNotificationRoutes(portal, db)

	log.Println("[INFO] Mounting Admin routes...")
	adminNotificationRoute.AdminNotificationRoutes(adminStrict, db)
	adminUserRoute.AdminUserRoutes(adminStrict, db)
	adminAuditLogRoute.AdminAuditLogRoutes(adminStrict, db)
	adminSubscriptionRoute.AdminSubscriptionRoutes(admin, db)
	reportRoute.AdminReportRoutes(admin, db)

	log.Println("[INFO] Mounting System routes...")
	adminSubscriptionRoute.SystemSubscriptionRoutes(system, db)
}
