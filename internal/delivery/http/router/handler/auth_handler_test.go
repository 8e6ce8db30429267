package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dashboard/config"
	"dashboard/internal/delivery/http/response"
	"dashboard/internal/delivery/http/validator"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"
	"dashboard/internal/infra/notify"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	session     entity.Session
	admin       bool
	loginResult *entity.LoginResult
	loginErr    error
	loggedOut   bool
}

func (s *stubSessions) Initialize(context.Context) error { return nil }
func (s *stubSessions) Current() entity.Session          { return s.session }
func (s *stubSessions) Login(context.Context, entity.Credentials) (*entity.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	if s.loginResult.Success {
		s.session = entity.Session{
			User:          &entity.User{ID: "u-1", Email: "ops@example.com", Role: "admin"},
			Token:         "platform-token",
			Authenticated: true,
		}
		s.admin = true
	}

	return s.loginResult, nil
}
func (s *stubSessions) Logout(context.Context) error {
	s.loggedOut = true
	s.session = entity.Session{}
	s.admin = false

	return nil
}
func (s *stubSessions) RefreshUser(context.Context) (*entity.User, error) {
	return s.session.User, nil
}
func (s *stubSessions) UpdateUser(context.Context, map[string]any) (*entity.User, error) {
	return s.session.User, nil
}
func (s *stubSessions) IsAdmin() bool { return s.admin }

type stubNotifications struct {
	unread    int
	unreadErr error
}

func (s *stubNotifications) List(context.Context, entity.NotificationFilters) (*entity.Paged[entity.Notification], error) {
	return &entity.Paged[entity.Notification]{}, nil
}
func (s *stubNotifications) UnreadCount(context.Context) (int, error) {
	return s.unread, s.unreadErr
}
func (s *stubNotifications) MarkAllRead(context.Context) error      { return nil }
func (s *stubNotifications) MarkRead(context.Context, string) error { return nil }
func (s *stubNotifications) Delete(context.Context, string) error   { return nil }
func (s *stubNotifications) ClearRead(context.Context) error        { return nil }

type stubTokens struct{}

func (stubTokens) IssueSessionToken(*entity.User) (string, error) { return "signed-cookie", nil }
func (stubTokens) ValidateSessionToken(string) (*service.SessionClaims, error) {
	return &service.SessionClaims{}, nil
}

func newAuthHandler(sessions *stubSessions, notifications *stubNotifications, notifier service.Notifier) (*AuthHandler, *echo.Echo) {
	cfg := &config.Config{}
	cfg.Session.CookieName = "dashboard_session"

	h := &AuthHandler{
		sessionUC:      sessions,
		notificationUC: notifications,
		tokenSvc:       stubTokens{},
		notifier:       notifier,
		cfg:            cfg,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return h, e
}

func TestLoginSetsCookieAndReportsNextTarget(t *testing.T) {
	sessions := &stubSessions{loginResult: &entity.LoginResult{Success: true}}
	h, e := newAuthHandler(sessions, &stubNotifications{}, notify.New())

	body := strings.NewReader(`{"email":"ops@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login?next=%2Fusers%3Fpage%3D2", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "dashboard_session", cookies[0].Name)
	assert.Equal(t, "signed-cookie", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]any)
	assert.Equal(t, "/users?page=2", data["next"])
	assert.Equal(t, true, data["isAdmin"])
}

func TestLoginRejectionAnswers401WithMessage(t *testing.T) {
	sessions := &stubSessions{loginResult: &entity.LoginResult{
		Success: false,
		Message: "Invalid email or password",
	}}
	h, e := newAuthHandler(sessions, &stubNotifications{}, notify.New())

	body := strings.NewReader(`{"email":"ops@example.com","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginValidatesForm(t *testing.T) {
	h, e := newAuthHandler(&stubSessions{loginResult: &entity.LoginResult{Success: true}}, &stubNotifications{}, notify.New())

	body := strings.NewReader(`{"email":"not-an-email","password":""}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUpstreamFailurePropagates(t *testing.T) {
	sessions := &stubSessions{loginErr: errors.Wrap(domainerrors.ErrUpstreamUnavailable, "login")}
	h, e := newAuthHandler(sessions, &stubNotifications{}, notify.New())

	body := strings.NewReader(`{"email":"ops@example.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
}

func TestLogoutClearsCookieAndRedirectsBrowser(t *testing.T) {
	sessions := &stubSessions{loginResult: &entity.LoginResult{Success: true}}
	h, e := newAuthHandler(sessions, &stubNotifications{}, notify.New())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set(echo.HeaderAccept, "text/html")
	rec := httptest.NewRecorder()

	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.True(t, sessions.loggedOut)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogoutAnswersEnvelopeForFetch(t *testing.T) {
	sessions := &stubSessions{loginResult: &entity.LoginResult{Success: true}}
	h, e := newAuthHandler(sessions, &stubNotifications{}, notify.New())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set(echo.HeaderAccept, "application/json")
	rec := httptest.NewRecorder()

	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestSessionDrainsNoticesAndToleratesBadgeFailure(t *testing.T) {
	notifier := notify.New()
	notifier.Notify("error", "Server error. Try again later.")

	sessions := &stubSessions{
		session: entity.Session{
			User:          &entity.User{ID: "u-1", Role: "admin"},
			Authenticated: true,
		},
		admin: true,
	}
	notifications := &stubNotifications{unreadErr: errors.Wrap(domainerrors.ErrUpstreamUnavailable, "unread")}
	h, e := newAuthHandler(sessions, notifications, notifier)

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Session(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]any)
	assert.Equal(t, float64(0), data["unreadCount"])
	assert.Len(t, data["notices"], 1)

	// A second fetch sees an empty notice list: Drain clears.
	rec = httptest.NewRecorder()
	require.NoError(t, h.Session(e.NewContext(httptest.NewRequest(http.MethodGet, "/session", nil), rec)))
	var second response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Empty(t, second.Data.(map[string]any)["notices"])
}

func TestSafeNextTarget(t *testing.T) {
	cases := []struct {
		name string
		next string
		want string
	}{
		{"empty falls back to root", "", "/"},
		{"relative path honored", "/trips?page=2", "/trips?page=2"},
		{"absolute URL rejected", "https://evil.example.com/phish", "/"},
		{"protocol-relative rejected", "//evil.example.com", "/"},
		{"non-rooted path rejected", "trips", "/"},
		{"garbage rejected", "::broken", "/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, safeNextTarget(tc.next))
		})
	}
}
