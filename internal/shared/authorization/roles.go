// Package authorization defines admin roles and role-based route guards.
package authorization

type AdminRole string

const (
	RoleAdmin AdminRole = "admin"
	RoleAgent AdminRole = "agent"
)

func (r AdminRole) String() string {
	return string(r)
}

func (r AdminRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r AdminRole) IsValid() bool {
	return r == RoleAdmin || r == RoleAgent
}

// ParseAdminRole maps a stored role string to an AdminRole, defaulting to the
// least-privileged agent role on unknown input.
func ParseAdminRole(s string) AdminRole {
	role := AdminRole(s)
	if role.IsValid() {
		return role
	}
	return RoleAgent
}
