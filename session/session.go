// Package session holds the client-side authentication state: the access
// token, user id and role returned by login. The three fields are always
// written and cleared as one unit, so no reader ever observes a token
// without its role or vice versa.
package session

import "github.com/lifeforge-dev/lifeforge/shared/domain"

// Store is the injectable session provider consulted on every request.
// Implementations must make Set and Clear atomic with respect to all
// three fields when calls run concurrently.
type Store interface {
	// Token returns the access token, or "" when logged out.
	Token() string
	// UserID returns the logged-in user's id, or "" when logged out.
	UserID() domain.UserID
	// Role returns the session role. When no session exists it falls back
	// to domain.RoleDonor so call sites don't need nil-checks; IsLoggedIn
	// is the authoritative check.
	Role() domain.Role
	// IsLoggedIn reports token presence, and nothing else.
	IsLoggedIn() bool
	Set(token string, userID domain.UserID, role domain.Role) error
	Clear() error
}

type state struct {
	Token  string        `json:"token"`
	UserID domain.UserID `json:"user_id"`
	Role   domain.Role   `json:"role"`
}

func (s state) role() domain.Role {
	if s.Role == "" {
		return domain.RoleDonor
	}
	return s.Role
}
