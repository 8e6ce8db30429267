// Package handler contains the HTTP handlers, one file per dashboard screen.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dashboard/config"
	"dashboard/internal/delivery/http/middleware"
	"dashboard/internal/delivery/http/response"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC      usecase.SessionUsecase
	NotificationUC usecase.NotificationUsecase
	TokenSvc       service.TokenService
	Notifier       service.Notifier
	Config         *config.Config
	Logger         *slog.Logger
}

// AuthHandler holds dependencies for the session endpoints.
type AuthHandler struct {
	sessionUC      usecase.SessionUsecase
	notificationUC usecase.NotificationUsecase
	tokenSvc       service.TokenService
	notifier       service.Notifier
	cfg            *config.Config
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC:      params.SessionUC,
		notificationUC: params.NotificationUC,
		tokenSvc:       params.TokenSvc,
		notifier:       params.Notifier,
		cfg:            params.Config,
		logger:         params.Logger,
	}
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Login handles POST /auth/login. A successful login sets the session
// cookie and reports where to go next; a rejected one keeps the 401 in the
// envelope so the form can show the message.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Email and password are required")
	}

	result, err := h.sessionUC.Login(c.Request().Context(), entity.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if !result.Success {
		message := result.Message
		if message == "" {
			message = "Invalid email or password"
		}

		return response.Unauthorized(c, "LOGIN_FAILED", message)
	}

	session := h.sessionUC.Current()
	token, err := h.tokenSvc.IssueSessionToken(session.User)
	if err != nil {
		return err
	}
	c.SetCookie(h.sessionCookie(token, h.cfg.Session.CookieTTL))

	return response.Success(c, http.StatusOK, map[string]any{
		"user":    session.User,
		"isAdmin": h.sessionUC.IsAdmin(),
		"next":    safeNextTarget(c.QueryParam("next")),
	}, "Logged in")
}

// Logout handles POST /logout: clears the platform session, the cookie and
// every cached read. Browser navigations land back on the login screen.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return err
	}
	c.SetCookie(h.sessionCookie("", -time.Hour))

	if middleware.WantsHTML(c) {
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Session handles GET /session: the layout shell summary — operator, admin
// flag, unread badge and the pending notices.
func (h *AuthHandler) Session(c echo.Context) error {
	ctx := c.Request().Context()
	session := h.sessionUC.Current()

	// The unread badge is decoration; its failure must not break the shell.
	unread, err := h.notificationUC.UnreadCount(ctx)
	if err != nil {
		unread = 0
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user":        session.User,
		"isAdmin":     h.sessionUC.IsAdmin(),
		"unreadCount": unread,
		"notices":     h.notifier.Drain(),
	}, "")
}

// RefreshProfile handles POST /session/refresh.
func (h *AuthHandler) RefreshProfile(c echo.Context) error {
	user, err := h.sessionUC.RefreshUser(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "")
}

// UpdateProfile handles PUT /session/profile with a partial field map.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.sessionUC.UpdateUser(c.Request().Context(), fields)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.Env.Env == "production",
	}
}

// safeNextTarget only honors same-site relative targets; anything absolute
// is an open-redirect vector and falls back to the dashboard root.
func safeNextTarget(next string) string {
	if next == "" {
		return "/"
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.IsAbs() || parsed.Host != "" || !strings.HasPrefix(parsed.Path, "/") {
		return "/"
	}

	return parsed.RequestURI()
}
