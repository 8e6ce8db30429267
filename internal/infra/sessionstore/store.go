// Package sessionstore persists the operator session: the platform bearer
// token and the serialized user snapshot, stored as two blob entries behind
// a gocloud.dev bucket (a local directory in the default configuration).
package sessionstore

import (
	"context"
	"encoding/json"
	"sync"

	"dashboard/config"
	"dashboard/internal/domain/entity"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

const (
	tokenKey = "dashboard_token"
	userKey  = "dashboard_user"
)

// Store reads and writes the persisted session pair. Reads return snapshots;
// writes are confined to the session lifecycle (login, logout, profile
// update) and to the 401 purge in the API client.
type Store struct {
	mu     sync.RWMutex
	bucket *blob.Bucket
}

// New opens the configured bucket URL.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.Session.StorageURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open session storage %s", cfg.Session.StorageURL)
	}

	return &Store{bucket: bucket}, nil
}

// NewWithBucket wraps an already-open bucket, used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket) *Store {
	return &Store{bucket: bucket}
}

// Save persists both entries. The token is written last so a crash between
// the two writes leaves an incomplete pair, which Load treats as no session.
func (s *Store) Save(ctx context.Context, token string, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "marshal user snapshot")
	}

	if err := s.bucket.WriteAll(ctx, userKey, raw, nil); err != nil {
		return errors.Wrap(err, "write user snapshot")
	}
	if err := s.bucket.WriteAll(ctx, tokenKey, []byte(token), nil); err != nil {
		return errors.Wrap(err, "write token")
	}

	return nil
}

// Load returns the persisted pair. A missing entry yields ("", nil, nil):
// absence of a session is not an error.
func (s *Store) Load(ctx context.Context) (string, *entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rawToken, err := s.bucket.ReadAll(ctx, tokenKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", nil, nil
		}

		return "", nil, errors.Wrap(err, "read token")
	}

	rawUser, err := s.bucket.ReadAll(ctx, userKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", nil, nil
		}

		return "", nil, errors.Wrap(err, "read user snapshot")
	}

	var user entity.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return "", nil, errors.Wrap(err, "decode user snapshot")
	}

	return string(rawToken), &user, nil
}

// Token returns only the persisted bearer token, read on every outgoing
// API request. Missing token yields "".
func (s *Store) Token(ctx context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := s.bucket.ReadAll(ctx, tokenKey)
	if err != nil {
		return ""
	}

	return string(raw)
}

// Clear removes both entries together. Clearing an already-empty store is
// not an error.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{tokenKey, userKey} {
		if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "delete %s", key)
		}
	}

	return nil
}
