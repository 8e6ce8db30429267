package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard/config"
	"dashboard/internal/delivery/http/response"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "dashboard_session"

type fakeSessions struct {
	session entity.Session
	admin   bool
}

func (f *fakeSessions) Initialize(context.Context) error { return nil }
func (f *fakeSessions) Current() entity.Session          { return f.session }
func (f *fakeSessions) Login(context.Context, entity.Credentials) (*entity.LoginResult, error) {
	return &entity.LoginResult{Success: true}, nil
}
func (f *fakeSessions) Logout(context.Context) error { return nil }
func (f *fakeSessions) RefreshUser(context.Context) (*entity.User, error) {
	return f.session.User, nil
}
func (f *fakeSessions) UpdateUser(context.Context, map[string]any) (*entity.User, error) {
	return f.session.User, nil
}
func (f *fakeSessions) IsAdmin() bool { return f.admin }

type fakeTokenService struct {
	claims *service.SessionClaims
	err    error
}

func (f *fakeTokenService) IssueSessionToken(*entity.User) (string, error) {
	return "issued-token", nil
}

func (f *fakeTokenService) ValidateSessionToken(string) (*service.SessionClaims, error) {
	return f.claims, f.err
}

func newGuardedEcho(t *testing.T, sessions *fakeSessions, tokens *fakeTokenService) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.CookieName = testCookieName

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	guard := NewAuthMiddleware(tokens, sessions, cfg)
	e.GET("/api/protected", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, nil, "ok")
	}, guard.RequireSession)
	e.GET("/api/admin-only", func(c echo.Context) error {
		return response.Success(c, http.StatusOK, nil, "ok")
	}, guard.RequireSession, guard.RequireAdmin)

	return e
}

func authenticatedSessions(admin bool) *fakeSessions {
	role := "user"
	if admin {
		role = "admin"
	}

	return &fakeSessions{
		session: entity.Session{
			User:          &entity.User{ID: "u-1", Email: "ops@example.com", Role: role},
			Token:         "platform-token",
			Authenticated: true,
		},
		admin: admin,
	}
}

func TestRequireSessionRedirectsBrowserWithoutCookie(t *testing.T) {
	e := newGuardedEcho(t, authenticatedSessions(true), &fakeTokenService{})

	req := httptest.NewRequest(http.MethodGet, "/api/protected?page=2", nil)
	req.Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fapi%2Fprotected%3Fpage%3D2", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireSessionAnswers401ToFetchWithoutCookie(t *testing.T) {
	e := newGuardedEcho(t, authenticatedSessions(true), &fakeTokenService{})

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set(echo.HeaderAccept, "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRequireSessionRejectsInvalidCookie(t *testing.T) {
	tokens := &fakeTokenService{err: domainerrors.ErrNotAuthenticated}
	e := newGuardedEcho(t, authenticatedSessions(true), tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSessionRejectsCookieWithoutPlatformSession(t *testing.T) {
	// A valid cookie alone is not enough: the platform session may have been
	// purged after a 401 from the upstream API.
	sessions := &fakeSessions{session: entity.Session{Authenticated: false}}
	tokens := &fakeTokenService{claims: &service.SessionClaims{UserID: "u-1", Admin: true}}
	e := newGuardedEcho(t, sessions, tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "valid-but-orphaned"})
	req.Header.Set(echo.HeaderAccept, "text/html")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRequireSessionPassesAuthenticatedRequest(t *testing.T) {
	tokens := &fakeTokenService{claims: &service.SessionClaims{UserID: "u-1", Admin: true}}
	e := newGuardedEcho(t, authenticatedSessions(true), tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "valid"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestRequireAdminForbidsNonAdminInPlace(t *testing.T) {
	tokens := &fakeTokenService{claims: &service.SessionClaims{UserID: "u-1", Admin: false}}
	e := newGuardedEcho(t, authenticatedSessions(false), tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "valid"})
	// Even a browser navigation stays in place: 403, not a redirect.
	req.Header.Set(echo.HeaderAccept, "text/html")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	tokens := &fakeTokenService{claims: &service.SessionClaims{UserID: "u-1", Admin: true}}
	e := newGuardedEcho(t, authenticatedSessions(true), tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "valid"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
