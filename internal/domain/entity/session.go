package entity

import "time"

// Session is the verified identity of the caller, reconstructed from the
// bearer token on every authenticated request. Roles are fixed for the
// token's lifetime; a role change only takes effect after a new login.
type Session struct {
	UserID    int
	Roles     Roles
	ExpiresAt time.Time
}

// IsAdmin reports whether the caller holds the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Roles.Contains(RoleAdmin)
}

// OwnerScope returns the user id that persistence queries must be restricted
// to, or 0 when the caller may see every user's records.
func (s *Session) OwnerScope() int {
	if s.IsAdmin() {
		return 0
	}

	return s.UserID
}
