package auth

import "servicematch/internal/model"

// Operation names a role-gated action.
type Operation string

const (
	OpCreateMatchRequest Operation = "match_requests:create"
	OpUpdateMatchStatus  Operation = "match_requests:update_status"
)

// rolePermissions is the single dispatch table for role checks; services
// consult it instead of branching on the role inline. Creation is open to
// both roles (the seeker is forced to the caller either way); status
// transitions are provider-only.
var rolePermissions = map[model.UserRole]map[Operation]bool{
	model.RoleSeeker: {
		OpCreateMatchRequest: true,
	},
	model.RoleProvider: {
		OpCreateMatchRequest: true,
		OpUpdateMatchStatus:  true,
	},
}

// Allowed reports whether the role may perform the operation. Unknown roles
// are allowed nothing.
func Allowed(role model.UserRole, op Operation) bool {
	ops, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return ops[op]
}
