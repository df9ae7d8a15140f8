package domain

// ScreenRole defines what the operator of a screen may do.
type ScreenRole string

const (
	RoleAdmin    ScreenRole = "ADMIN"
	RoleReadOnly ScreenRole = "READONLY" // Sees formatted values, never mutates
)

// RoleFromAdminFlag maps the session's is-admin flag to a role.
func RoleFromAdminFlag(isAdmin bool) ScreenRole {
	if isAdmin {
		return RoleAdmin
	}
	return RoleReadOnly
}

// CanEdit reports whether the role may edit or insert items.
func (r ScreenRole) CanEdit() bool {
	return r == RoleAdmin
}

// Indicator is the banner text shown for the role.
func (r ScreenRole) Indicator() string {
	if r.CanEdit() {
		return "Type 1: editing enabled"
	}
	return "Type 0: read only"
}
