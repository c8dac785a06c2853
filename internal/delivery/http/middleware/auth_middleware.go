package middleware

import (
	"crypto/subtle"

	"cabby/config"
	deliverycontext "cabby/internal/delivery/context"
	domainerrors "cabby/internal/domain/errors"
	"cabby/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderXAdminToken carries the shared secret guarding admin endpoints.
const HeaderXAdminToken = "X-Admin-Token"

// AuthMiddleware guards routes with either the session cookie or the admin token.
type AuthMiddleware struct {
	sessions service.SessionService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cfg: cfg}
}

// Authenticate validates the session cookie and stores the bound account id
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(service.AuthCookieName)
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrSessionInvalid, "session cookie missing")
		}

		userID, err := m.sessions.Verify(cookie.Value)
		if err != nil {
			return errors.Wrap(domainerrors.ErrSessionInvalid, "session verification failed")
		}

		c.Set(string(deliverycontext.KeyUserID), userID)

		return next(c)
	}
}

// RequireAdminToken checks the admin header in constant time against the
// configured secret. An unset secret disables the endpoint outright.
func (m *AuthMiddleware) RequireAdminToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret := m.cfg.Admin.Token
		if secret == "" {
			return errors.Wrap(domainerrors.ErrAdminTokenInvalid, "admin token not configured")
		}

		presented := c.Request().Header.Get(HeaderXAdminToken)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
			return errors.Wrap(domainerrors.ErrAdminTokenInvalid, "admin token mismatch")
		}

		return next(c)
	}
}
