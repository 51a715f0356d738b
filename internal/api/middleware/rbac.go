package middleware

import (
	"github.com/cogip/cogip-api/internal/core/domain"
)

// roleSet is an endpoint's allow-list.
type roleSet map[domain.Role]struct{}

func newRoleSet(allowed []domain.Role) roleSet {
	set := make(roleSet, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return set
}

func (s roleSet) permits(role domain.Role) bool {
	_, ok := s[role]
	return ok
}

// decide turns a resolved role into a Decision against the allow-list.
func (s roleSet) decide(username string, role domain.Role) domain.Decision {
	return domain.Decision{Username: username, Role: role, Permitted: s.permits(role)}
}
