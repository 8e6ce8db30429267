// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/platform"
	"dashboard/internal/infra/sessionstore"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. The dashboard
// holds exactly one operator session per process.
type sessionService struct {
	store  *sessionstore.Store
	auth   platform.AuthAPI
	cache  *querycache.Cache
	logger *slog.Logger

	mu          sync.RWMutex
	initialized bool
	session     entity.Session
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	store *sessionstore.Store,
	auth platform.AuthAPI,
	cache *querycache.Cache,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		store:  store,
		auth:   auth,
		cache:  cache,
		logger: logger,
	}
}

// Initialize restores the persisted session. Anything short of a complete
// token+user pair leaves the service unauthenticated: a broken store must
// never grant access.
func (srv *sessionService) Initialize(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.initialized {
		return nil
	}

	token, user, err := srv.store.Load(ctx)
	if err != nil {
		srv.logger.Warn("failed to load persisted session, starting unauthenticated",
			slog.Any("error", err))
		srv.initialized = true
		srv.session = entity.Session{}

		return nil
	}

	srv.initialized = true
	if token != "" && user != nil {
		srv.session = entity.Session{User: user, Token: token, Authenticated: true}
		srv.logger.Info("session restored", slog.String("email", user.Email))
	} else {
		srv.session = entity.Session{}
	}

	return nil
}

func (srv *sessionService) Current() entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.session
}

// Login exchanges credentials for a platform token. A rejection from the
// platform is a result, not an error; only transport-level failures err.
func (srv *sessionService) Login(ctx context.Context, credentials entity.Credentials) (*entity.LoginResult, error) {
	token, user, err := srv.auth.Login(ctx, credentials)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUpstreamUnavailable) {
			return nil, err
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return &entity.LoginResult{Success: false, Message: appErr.Message()}, nil
		}

		return nil, errors.Wrap(err, "login")
	}

	if token == "" || user == nil {
		return &entity.LoginResult{Success: false, Message: "Login failed"}, nil
	}

	if err := srv.store.Save(ctx, token, user); err != nil {
		return nil, errors.Wrap(err, "persist session")
	}

	srv.mu.Lock()
	srv.initialized = true
	srv.session = entity.Session{User: user, Token: token, Authenticated: true}
	srv.mu.Unlock()

	srv.logger.Info("operator logged in", slog.String("email", user.Email))

	return &entity.LoginResult{Success: true}, nil
}

// Logout clears everything tied to the session, including every cached
// read: no data may outlive the session that fetched it.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.store.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear persisted session")
	}

	srv.mu.Lock()
	srv.initialized = true
	srv.session = entity.Session{}
	srv.mu.Unlock()

	srv.cache.Flush()
	srv.logger.Info("operator logged out")

	return nil
}

func (srv *sessionService) RefreshUser(ctx context.Context) (*entity.User, error) {
	user, err := srv.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			// The API client already purged the persisted pair.
			srv.mu.Lock()
			srv.session = entity.Session{}
			srv.mu.Unlock()
			srv.cache.Flush()
		}

		return nil, err
	}

	srv.mu.Lock()
	token := srv.session.Token
	srv.session.User = user
	srv.mu.Unlock()

	if err := srv.store.Save(ctx, token, user); err != nil {
		return nil, errors.Wrap(err, "persist refreshed user")
	}

	return user, nil
}

func (srv *sessionService) UpdateUser(ctx context.Context, fields map[string]any) (*entity.User, error) {
	user, err := srv.auth.UpdateProfile(ctx, fields)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	token := srv.session.Token
	srv.session.User = user
	srv.mu.Unlock()

	if err := srv.store.Save(ctx, token, user); err != nil {
		return nil, errors.Wrap(err, "persist updated user")
	}

	return user, nil
}

func (srv *sessionService) IsAdmin() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.session.Authenticated && srv.session.User.IsAdministrator()
}
