package middleware

import (
	"github.com/gofiber/fiber/v2"

	"propertyhub_backend/internals/constants"
	helper "propertyhub_backend/internals/helpers"
)

// RequireRoles rejects the request unless the token carries one of the roles.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.HasRole(c, roles...) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorStaff(feature))
		}
		return c.Next()
	}
}

// RequireStaff: company operators and above.
func RequireStaff(feature string) fiber.Handler {
	return RequireRoles(feature, constants.StaffAndAbove...)
}

// RequireAdmin: company admin/owner only.
func RequireAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.HasRole(c, constants.AdminAndAbove...) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}

// RequireTenant: renter portal accounts.
func RequireTenant(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.HasRole(c, constants.RoleTenant) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorTenant(feature))
		}
		return c.Next()
	}
}

// RequireSystem: back-office system admins.
func RequireSystem(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.HasRole(c, constants.RoleSystem) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorSystem(feature))
		}
		return c.Next()
	}
}
