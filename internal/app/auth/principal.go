package auth

import (
	"github.com/yigit/recruitment/internal/app/models"
)

// Principal is the authenticated caller as decoded from the bearer token.
type Principal struct {
	UserID   int64
	Username string
	FullName string
	Roles    []models.Role
}

// NewPrincipal builds a principal from role names, ignoring names that are not known roles.
func NewPrincipal(userID int64, username, fullName string, roleNames []string) Principal {
	roles := make([]models.Role, 0, len(roleNames))
	for _, name := range roleNames {
		if role, ok := models.ParseRole(name); ok {
			roles = append(roles, role)
		}
	}
	return Principal{UserID: userID, Username: username, FullName: fullName, Roles: roles}
}

// HasRole reports whether the principal holds role.
func (p Principal) HasRole(role models.Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAny reports whether the principal holds at least one of roles.
func (p Principal) HasAny(roles ...models.Role) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

// IsOnly reports whether role is the principal's single role.
func (p Principal) IsOnly(role models.Role) bool {
	return len(p.Roles) == 1 && p.Roles[0] == role
}

// IsStaff reports whether the principal holds any non-candidate role.
func (p Principal) IsStaff() bool {
	return p.HasAny(models.StaffRoles...)
}
