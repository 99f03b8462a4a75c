// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth middleware.
const (
	LocUserID    = "user_id"
	LocCompanyID = "company_id"
	LocTenantID  = "tenant_id" // renter id for portal accounts
	LocRoles     = "roles"
)

// small util so UUID parsing from Locals is not duplicated everywhere
func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" not found in token")
	}

	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" is empty in token")
		}
		id, err := uuid.Parse(strings.TrimSpace(t))
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+key+" format in token")
		}
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+key+" format in token")
}

// GetCompanyIDFromToken resolves the tenancy scope for company-side endpoints.
func GetCompanyIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocCompanyID)
}

// GetTenantIDFromToken resolves the renter id for portal endpoints.
func GetTenantIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocTenantID)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

// RolesFromToken returns the roles claim as a normalized string slice.
func RolesFromToken(c *fiber.Ctx) []string {
	v := c.Locals(LocRoles)
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, it := range t {
			if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.ToLower(strings.TrimSpace(s)))
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{strings.ToLower(s)}
		}
	}
	return nil
}

func HasRole(c *fiber.Ctx, roles ...string) bool {
	have := RolesFromToken(c)
	for _, r := range roles {
		for _, h := range have {
			if h == r {
				return true
			}
		}
	}
	return false
}
