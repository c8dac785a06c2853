package service

import (
	"time"

	"github.com/google/uuid"
)

// AuthCookieName is the fixed, well-known name of the session cookie.
const AuthCookieName = "AUTH_COOKIE"

// SessionService defines the interface for issuing and verifying the signed
// session tokens carried in the auth cookie. The token is the session: no
// server-side session table exists, so it must be tamper-evident.
type SessionService interface {
	// Issue creates a signed token bound to the given user id.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the token signature and expiry and returns the bound user id.
	Verify(token string) (uuid.UUID, error)

	// TTL returns the configured session lifetime.
	TTL() time.Duration
}
