package account

import "fmt"

// Role identifies what a user may do in the rental system.
type Role string

const (
	// RoleAdministrator manages the fleet and decides on bookings.
	RoleAdministrator Role = "administrator"
	// RoleCustomer browses vehicles and creates bookings.
	RoleCustomer Role = "customer"
)

// ParseRole converts free-form input into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator, RoleCustomer:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// IsAdmin reports whether the role carries administrator access.
func (r Role) IsAdmin() bool { return r == RoleAdministrator }

// User is one registered account. The password hash never leaves the
// package; copies of User returned from the store carry it along but expose
// no way to read it.
type User struct {
	Username string
	Name     string
	Role     Role

	passwordHash []byte
}
