package middleware

import (
	"dashboard/config"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// KeyClaims is the echo context key holding the validated session claims.
const KeyClaims = "sessionClaims"

// AuthMiddleware guards the protected routes. A request passes only with a
// valid session cookie AND an authenticated operator session behind it;
// either one alone is not enough.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	sessions usecase.SessionUsecase
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, sessions usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, sessions: sessions, cfg: cfg}
}

// RequireSession validates the session cookie. Unauthenticated browser
// navigations are redirected to the login screen with the original target
// in next=; fetch requests get the 401 envelope. Both paths run through the
// error handler, which makes that split.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// The session state must be decided before any protected data is
		// served. Initialize is idempotent, so this is cheap after boot.
		if err := m.sessions.Initialize(ctx); err != nil {
			return errors.Wrap(err, "initialize session")
		}

		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return errors.Wrap(domainerrors.ErrNotAuthenticated, "missing session cookie")
		}

		claims, err := m.tokenSvc.ValidateSessionToken(cookie.Value)
		if err != nil {
			return errors.Wrap(domainerrors.ErrNotAuthenticated, "invalid session cookie")
		}

		if !m.sessions.Current().Authenticated {
			return errors.Wrap(domainerrors.ErrSessionExpired, "no platform session")
		}

		c.Set(KeyClaims, claims)

		return next(c)
	}
}

// RequireAdmin gates the admin-only screens. A signed-in non-admin gets the
// 403 envelope in place; no redirect, the operator stays where they are.
// It must be used AFTER RequireSession.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(KeyClaims).(*service.SessionClaims)
		if !ok {
			return errors.Wrap(domainerrors.ErrNotAuthenticated, "claims missing")
		}

		if !claims.Admin || !m.sessions.IsAdmin() {
			return errors.Wrap(domainerrors.ErrForbidden, "admin role required")
		}

		return next(c)
	}
}

// GetClaims returns the session claims set by RequireSession.
func GetClaims(c echo.Context) (*service.SessionClaims, bool) {
	claims, ok := c.Get(KeyClaims).(*service.SessionClaims)

	return claims, ok
}
