package auth

import (
	"testing"
	"time"

	"dashboard/config"
	"dashboard/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.CookieSecret = "test-secret"
	cfg.Session.CookieTTL = time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.CookieTTL = time.Hour

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestIssueAndValidateSessionToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.IssueSessionToken(&entity.User{
		ID:    "u-1",
		Email: "ops@example.com",
		Role:  "admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.True(t, claims.Admin)
}

func TestIssueSessionTokenRequiresUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.IssueSessionToken(nil)
	require.Error(t, err)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.IssueSessionToken(&entity.User{ID: "u-1", Email: "ops@example.com"})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = svc.ValidateSessionToken(tampered)
	require.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := newTestService(t)

	cfg := &config.Config{}
	cfg.Session.CookieSecret = "another-secret"
	cfg.Session.CookieTTL = time.Hour
	other, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := issuer.IssueSessionToken(&entity.User{ID: "u-1"})
	require.NoError(t, err)

	_, err = other.ValidateSessionToken(token)
	require.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := newTestService(t)
	svc.ttl = -time.Minute

	token, err := svc.IssueSessionToken(&entity.User{ID: "u-1"})
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	require.Error(t, err)
}

func TestValidateRejectsUnexpectedSigningMethod(t *testing.T) {
	svc := newTestService(t)

	// Token signed with "none" must not be accepted even if well-formed.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "u-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	require.Error(t, err)
}
