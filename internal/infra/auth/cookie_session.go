// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"cabby/config"
	"cabby/internal/domain/service"
)

// cookieSession is a concrete implementation of the SessionService interface.
// The signed token is the whole session: HS256 over the user id with an
// explicit expiry, so the client-held cookie cannot be forged or outlive its TTL.
type cookieSession struct {
	secret []byte
	ttl    time.Duration
}

// NewCookieSession is the constructor for cookieSession.
func NewCookieSession(cfg *config.Config) (service.SessionService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &cookieSession{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
	}, nil
}

// Issue creates a signed token bound to the given user id.
func (s *cookieSession) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the token signature and expiry and returns the bound user id.
func (s *cookieSession) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.Wrap(err, "invalid session token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "session token has no subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid user id in session token")
	}

	return userID, nil
}

// TTL returns the configured session lifetime.
func (s *cookieSession) TTL() time.Duration {
	return s.ttl
}
