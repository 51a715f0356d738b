package domain

// Role is one of the fixed permission levels a user can hold.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleIntern     Role = "intern"
)

// Roles lists every valid role, most privileged first.
var Roles = []Role{RoleAdmin, RoleAccountant, RoleIntern}

// ParseRole returns the Role named by s. Matching is case-sensitive.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

func (r Role) String() string { return string(r) }
