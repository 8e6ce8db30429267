package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"dashboard/internal/delivery/http/response"
	domainerrors "dashboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. A session
// expiry on a browser request becomes a hard redirect to the login screen;
// every other failure stays an envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if errors.Is(err, domainerrors.ErrSessionExpired) || errors.Is(err, domainerrors.ErrNotAuthenticated) {
		if WantsHTML(c) {
			target := "/login?next=" + url.QueryEscape(c.Request().URL.RequestURI())
			_ = c.Redirect(http.StatusSeeOther, target)

			return
		}
	}

	var fieldErrs *domainerrors.FieldErrors
	if errors.As(err, &fieldErrs) {
		_ = response.HandleAppError(c, err)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error")
}

// WantsHTML reports whether the request came from a browser navigation
// rather than the dashboard's fetch layer.
func WantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), "text/html")
}
