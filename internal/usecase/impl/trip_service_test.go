package impl

import (
	"context"
	"testing"

	"dashboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedTrips(ids ...string) *entity.Paged[entity.Trip] {
	trips := make([]entity.Trip, 0, len(ids))
	for _, id := range ids {
		trips = append(trips, entity.Trip{ID: id})
	}

	return &entity.Paged[entity.Trip]{Items: trips, Total: len(ids), Page: 1, Limit: entity.DefaultLimit}
}

func TestListTripsServesRepeatFromCache(t *testing.T) {
	api := &fakeAdminAPI{trips: pagedTrips("t-1", "t-2")}
	svc := NewTripService(api, &fakeRecommendationAPI{}, testCache(), testLogger())
	ctx := context.Background()

	filters := entity.TripFilters{Status: "active"}
	for i := 0; i < 3; i++ {
		paged, err := svc.List(ctx, filters)
		require.NoError(t, err)
		require.Len(t, paged.Items, 2)
	}

	assert.Equal(t, 1, api.calls())
	assert.Equal(t, "active", api.tripFilters().Status)
}

func TestListTripsFilterChangeResetsPage(t *testing.T) {
	api := &fakeAdminAPI{trips: pagedTrips("t-1")}
	svc := NewTripService(api, &fakeRecommendationAPI{}, testCache(), testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, entity.TripFilters{Status: "active", Pagination: entity.Pagination{Page: 4}})
	require.NoError(t, err)

	_, err = svc.List(ctx, entity.TripFilters{Status: "cancelled", Pagination: entity.Pagination{Page: 4}})
	require.NoError(t, err)

	// The page from the previous filter combination must not leak through.
	assert.Equal(t, entity.DefaultPage, api.tripFilters().Page)
}

func TestCancelTripForwardsReasonAndInvalidates(t *testing.T) {
	api := &fakeAdminAPI{trips: pagedTrips("t-1")}
	cache := testCache()
	svc := NewTripService(api, &fakeRecommendationAPI{}, cache, testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, entity.TripFilters{})
	require.NoError(t, err)
	require.Equal(t, 1, api.calls())

	require.NoError(t, svc.Cancel(ctx, "t-1", "fraudulent listing"))

	ids, reason := api.cancelled()
	assert.Equal(t, []string{"t-1"}, ids)
	assert.Equal(t, "fraudulent listing", reason)

	// The cancelled trip list is stale now: the next read serves the cached
	// page and revalidates against the API in the background.
	_, err = svc.List(ctx, entity.TripFilters{})
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return api.calls() >= 2
	}, testEventuallyWait, testEventuallyTick)
}

func TestCancelTripFailurePropagatesWithoutInvalidation(t *testing.T) {
	api := &fakeAdminAPI{trips: pagedTrips("t-1")}
	svc := NewTripService(api, &fakeRecommendationAPI{}, testCache(), testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, entity.TripFilters{})
	require.NoError(t, err)

	api.err = assert.AnError
	require.Error(t, svc.Cancel(ctx, "t-1", "reason"))
	api.err = nil

	// The cached page stays fresh: no refetch happens on the next read.
	_, err = svc.List(ctx, entity.TripFilters{})
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls())
}

func TestSimilarTripsCached(t *testing.T) {
	recs := &fakeRecommendationAPI{trips: []entity.Trip{{ID: "t-9"}}}
	svc := NewTripService(&fakeAdminAPI{}, recs, testCache(), testLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		similar, err := svc.Similar(ctx, "t-1")
		require.NoError(t, err)
		require.Len(t, similar, 1)
		assert.Equal(t, "t-9", similar[0].ID)
	}
}
