package domain

import "time"

// UserRole enumerates support staff roles.
type UserRole string

const (
	RoleAgent UserRole = "agent"
	RoleAdmin UserRole = "admin"
)

// User is a support agent or admin. There are no credentials; the
// directory only exists so tickets can be assigned and resolved by name.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}

// ValidRole reports whether the value is a known role.
func ValidRole(r UserRole) bool {
	return r == RoleAgent || r == RoleAdmin
}
