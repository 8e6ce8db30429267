// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"dashboard/config"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
)

// jwtService signs the browser session cookie with HS256.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.CookieSecret == "" {
		return nil, errors.New("session cookie secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Session.CookieSecret),
		ttl:    cfg.Session.CookieTTL,
	}, nil
}

// IssueSessionToken creates a signed token identifying the operator.
func (s *jwtService) IssueSessionToken(user *entity.User) (string, error) {
	if user == nil {
		return "", errors.New("cannot issue session token without a user")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"admin": user.IsAdministrator(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// ValidateSessionToken checks the signature and expiry and decodes the claims.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	out := &service.SessionClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if admin, ok := claims["admin"].(bool); ok {
		out.Admin = admin
	}

	return out, nil
}
