package auth

import "sort"

// DenyReason explains why an authorization decision denied access. The two
// reasons demand different remediation: SessionInvalid means re-authenticate,
// InsufficientPermission means the caller is authenticated but not entitled.
// Transports must never conflate them.
type DenyReason string

const (
	DenySessionInvalid         DenyReason = "session_invalid"
	DenyInsufficientPermission DenyReason = "insufficient_permission"
)

// Decision is the transient result of evaluating (token, permission).
type Decision struct {
	Allowed   bool
	Reason    DenyReason
	Principal Principal
}

// Allow constructs an allowing decision for the given principal.
func Allow(principal Principal) Decision {
	return Decision{Allowed: true, Principal: principal}
}

// Deny constructs a denying decision.
func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// Principal represents a user with resolved roles and permissions.
type Principal struct {
	User        *User
	Roles       []Role
	Permissions map[string]struct{}
}

// NewPrincipal constructs a principal with preloaded permissions.
func NewPrincipal(user *User, roles []Role, perms []Permission) Principal {
	set := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		set[p.Key] = struct{}{}
	}
	return Principal{User: user, Roles: roles, Permissions: set}
}

// HasPermission reports whether the principal holds the capability key.
func (p Principal) HasPermission(key string) bool {
	_, ok := p.Permissions[key]
	return ok
}

// PermissionKeys returns the principal's permissions as a sorted slice.
func (p Principal) PermissionKeys() []string {
	if len(p.Permissions) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.Permissions))
	for k := range p.Permissions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RoleNames returns the names of the principal's roles.
func (p Principal) RoleNames() []string {
	return roleNames(p.Roles)
}
