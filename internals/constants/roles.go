package constants

import "fmt"

// Role names carried in the JWT "roles" claim.
const (
	RoleOwner  = "owner"  // company owner
	RoleAdmin  = "admin"  // company admin
	RoleStaff  = "staff"  // company operator
	RoleTenant = "tenant" // renter portal account
	RoleSystem = "system" // back-office system admin
)

// Error message templates for role guards.
const (
	ErrOnlyStaffCanAccess  = "❌ Only staff, admin, or owner may access %s."
	ErrOnlyAdminsCanAccess = "❌ Only admin or owner may access %s."
	ErrOnlyTenantCanAccess = "❌ Only tenant portal accounts may access %s."
	ErrOnlySystemCanAccess = "❌ Only system administrators may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTenant(feature string) string {
	return fmt.Sprintf(ErrOnlyTenantCanAccess, feature)
}

func RoleErrorSystem(feature string) string {
	return fmt.Sprintf(ErrOnlySystemCanAccess, feature)
}

// IsValidRole reports whether the role name is one of the known roles.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ==========================
// ✅ Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleOwner,
		RoleAdmin,
		RoleStaff,
		RoleTenant,
		RoleSystem,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	SystemOnly = []string{
		RoleSystem,
	}
)
