// Package usecase contains the application-specific business rules.
// It orchestrates the platform API, the session store and the query cache.
package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// SessionUsecase manages the process-wide operator session: one login at a
// time, persisted across restarts.
type SessionUsecase interface {
	// Initialize loads the persisted session, if any. Idempotent: later
	// calls are no-ops once the state is decided. A corrupt or partial
	// persisted pair yields the unauthenticated state, never an error.
	Initialize(ctx context.Context) error
	// Current returns a snapshot of the session state.
	Current() entity.Session
	// Login exchanges credentials for a platform token. Rejected
	// credentials produce LoginResult{Success: false}, not an error.
	Login(ctx context.Context, credentials entity.Credentials) (*entity.LoginResult, error)
	// Logout clears the persisted pair, the in-memory state and the whole
	// query cache.
	Logout(ctx context.Context) error
	// RefreshUser re-fetches the operator snapshot. A session expiry logs
	// out as a side effect; other failures leave the state untouched.
	RefreshUser(ctx context.Context) (*entity.User, error)
	// UpdateUser patches profile fields and re-persists the snapshot.
	UpdateUser(ctx context.Context, fields map[string]any) (*entity.User, error)
	// IsAdmin reports whether the current operator may use admin screens.
	IsAdmin() bool
}
