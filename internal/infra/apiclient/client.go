// Package apiclient is the single gateway to the platform REST API. Every
// outgoing request funnels through Client.do, which attaches the persisted
// bearer token, translates failures into the domain error taxonomy, raises
// the global notice for non-401 failures, and purges the session on 401.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"dashboard/config"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/service"
	"dashboard/internal/infra/sessionstore"

	"github.com/pkg/errors"
)

// Client is the configured HTTP client shared by every resource module.
type Client struct {
	baseURL  string
	http     *http.Client
	store    *sessionstore.Store
	notifier service.Notifier
	logger   *slog.Logger
}

// New builds the client. The timeout is deliberately long: the platform API
// also serves large file uploads and slow exports behind the same paths.
func New(cfg *config.Config, store *sessionstore.Store, notifier service.Notifier, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.API.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.API.Timeout},
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// envelope is the platform API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues one request. out, when non-nil, receives the decoded data field.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Notify(service.NoticeError, domainerrors.ErrUpstreamUnavailable.Message())

		return errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body is tolerated; the status code still decides.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.translateError(ctx, method, path, resp.StatusCode, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrapf(err, "decode %s %s response", method, path)
		}
	}

	return nil
}

// translateError maps a failed response onto the domain taxonomy. Every
// failure except 401 is double-reported: a global notice plus the returned
// error, so screens keep their local retry affordance while the operator
// always sees the toast.
func (c *Client) translateError(ctx context.Context, method, path string, status int, message string) error {
	if status == http.StatusUnauthorized {
		// Hard logout: purge the persisted pair, no notice. The delivery
		// layer turns ErrSessionExpired into the login redirect.
		if err := c.store.Clear(ctx); err != nil {
			c.logger.Error("failed to clear session after 401", slog.Any("error", err))
		}

		return errors.Wrapf(domainerrors.ErrSessionExpired, "%s %s", method, path)
	}

	notice := message
	switch {
	case status == http.StatusForbidden:
		notice = "You do not have permission to perform this action"
	case status == http.StatusNotFound:
		notice = "Resource not found"
	case status >= http.StatusInternalServerError:
		notice = "Server error. Try again later."
	case notice == "":
		notice = http.StatusText(status)
	}
	c.notifier.Notify(service.NoticeError, notice)

	c.logger.Warn("platform API call failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)

	return errors.Wrapf(domainerrors.NewUpstreamError(status, message), "%s %s", method, path)
}
