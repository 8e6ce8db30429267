package querycache

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/config"
)

func newTestCache(ttl time.Duration, maxEntries int) *Cache {
	cfg := &config.Config{}
	cfg.Cache.TTL = ttl
	cfg.Cache.MaxEntries = maxEntries

	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFetchCachesFreshValue(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 16)
	var calls atomic.Int64

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)

		return "value", nil
	}

	ctx := context.Background()
	for range 3 {
		got, err := Fetch(ctx, cache, "users/page=1", fetch)
		require.NoError(t, err)
		assert.Equal(t, "value", got)
	}

	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 16)
	var calls atomic.Int64

	fetch := func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", errors.New("upstream down")
		}

		return "recovered", nil
	}

	ctx := context.Background()
	_, err := Fetch(ctx, cache, "trips/page=1", fetch)
	require.Error(t, err)

	got, err := Fetch(ctx, cache, "trips/page=1", fetch)
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
	assert.Equal(t, int64(2), calls.Load())
}

func TestFetchCollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 16)
	var calls atomic.Int64
	release := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release

		return "shared", nil
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Fetch(ctx, cache, "stats", fetch)
			assert.NoError(t, err)
			assert.Equal(t, "shared", got)
		}()
	}

	// Let the goroutines pile up on the same in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
}

func TestInvalidateServesStaleWhileRevalidating(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 16)
	var calls atomic.Int64

	fetch := func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "old", nil
		}

		return "new", nil
	}

	ctx := context.Background()
	got, err := Fetch(ctx, cache, "banners/free", fetch)
	require.NoError(t, err)
	assert.Equal(t, "old", got)

	cache.Invalidate("banners/")

	// The stale read returns instantly with the old value.
	got, err = Fetch(ctx, cache, "banners/free", fetch)
	require.NoError(t, err)
	assert.Equal(t, "old", got)

	// The background refresh lands shortly after.
	assert.Eventually(t, func() bool {
		got, err := Fetch(ctx, cache, "banners/free", fetch)

		return err == nil && got == "new"
	}, time.Second, 10*time.Millisecond)
}

func TestDropForcesBlockingRefetch(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 16)
	var calls atomic.Int64

	fetch := func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "old", nil
		}

		return "new", nil
	}

	ctx := context.Background()
	_, err := Fetch(ctx, cache, "users/page=1", fetch)
	require.NoError(t, err)

	cache.Drop("users/")

	got, err := Fetch(ctx, cache, "users/page=1", fetch)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestDropOnlyMatchesPrefix(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 16)
	ctx := context.Background()

	fetch := func(ctx context.Context) (string, error) { return "v", nil }
	_, err := Fetch(ctx, cache, "users/page=1", fetch)
	require.NoError(t, err)
	_, err = Fetch(ctx, cache, "trips/page=1", fetch)
	require.NoError(t, err)

	cache.Drop("users/")
	assert.Equal(t, 1, cache.Len())
}

func TestLaterIssueWins(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 16)

	// A slow early fetch must not clobber the result of a later one.
	early := cache.issueNumber()
	late := cache.issueNumber()

	cache.apply("users/page=1", late, "late")
	cache.apply("users/page=1", early, "early")

	got, err := Fetch(context.Background(), cache, "users/page=1", func(ctx context.Context) (string, error) {
		return "fetched", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "late", got)
}

func TestFlushEmptiesEverything(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 16)
	ctx := context.Background()

	fetch := func(ctx context.Context) (string, error) { return "v", nil }
	_, err := Fetch(ctx, cache, "users/page=1", fetch)
	require.NoError(t, err)
	_, err = Fetch(ctx, cache, "payments/sent", fetch)
	require.NoError(t, err)

	cache.Flush()
	assert.Equal(t, 0, cache.Len())
}

func TestEvictionHonorsCap(t *testing.T) {
	t.Parallel()

	cache := newTestCache(time.Minute, 2)
	ctx := context.Background()

	fetch := func(ctx context.Context) (string, error) { return "v", nil }
	for _, key := range []string{"a", "b", "c", "d"} {
		_, err := Fetch(ctx, cache, key, fetch)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, cache.Len())
}
