// Package service defines infra-facing service contracts consumed by the
// usecase and delivery layers.
package service

import "dashboard/internal/domain/entity"

// SessionClaims is the decoded content of a browser session cookie.
type SessionClaims struct {
	UserID string
	Email  string
	Admin  bool
}

// TokenService signs and validates the browser session cookie. The cookie
// only identifies the operator to the dashboard; the platform bearer token
// never leaves the server.
type TokenService interface {
	IssueSessionToken(user *entity.User) (string, error)
	ValidateSessionToken(token string) (*SessionClaims, error)
}
