// Package auth derives capabilities from the external identity and carries
// the bearer credential used for outbound calls to the remote collections
// API.  Role resolution is a pure function of the identity's declared role
// attribute and is re-evaluated on every request; nothing here is cached.
package auth

import "github.com/mzali/radio-booking/internal/model"

// Access is the capability set derived from an identity.  CanWrite is true
// only for admins and editors; viewers and unauthenticated callers are
// read-only.  Role echoes the declared role when it belongs to the known
// set {admin, editor, viewer} and is empty otherwise.
type Access struct {
	CanWrite bool   `json:"can_write"`
	Role     string `json:"role,omitempty"`
}

// Resolve maps an identity's declared role attribute onto an Access value.
// The input is provider-supplied and untrusted; unknown or absent roles
// resolve to read-only with an empty role name.
func Resolve(id model.Identity) Access {
	switch id.Role {
	case model.RoleAdmin, model.RoleEditor:
		return Access{CanWrite: true, Role: id.Role}
	case model.RoleViewer:
		return Access{CanWrite: false, Role: id.Role}
	default:
		return Access{}
	}
}

// IsAdmin reports whether the resolved role is the admin role.  Admins see
// the full admin shell; editors get write access to the calendar only.
func (a Access) IsAdmin() bool { return a.Role == model.RoleAdmin }
