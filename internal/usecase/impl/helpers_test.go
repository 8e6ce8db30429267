package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"dashboard/config"
	"dashboard/internal/domain/entity"
	"dashboard/internal/querycache"
)

const (
	testEventuallyWait = time.Second
	testEventuallyTick = 10 * time.Millisecond
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCache() *querycache.Cache {
	cfg := &config.Config{}
	cfg.Cache.TTL = time.Minute
	cfg.Cache.MaxEntries = 128

	return querycache.New(cfg, testLogger())
}

// fakeAuthAPI implements platform.AuthAPI.
type fakeAuthAPI struct {
	loginToken string
	loginUser  *entity.User
	loginErr   error
	loginCalls int

	currentUser *entity.User
	currentErr  error

	updatedUser *entity.User
	updateErr   error
}

func (f *fakeAuthAPI) Login(ctx context.Context, credentials entity.Credentials) (string, *entity.User, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}

	return f.loginToken, f.loginUser, nil
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (*entity.User, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}

	return f.currentUser, nil
}

func (f *fakeAuthAPI) UpdateProfile(ctx context.Context, fields map[string]any) (*entity.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	return f.updatedUser, nil
}

// fakeAdminAPI implements platform.AdminAPI. List calls can happen from
// background revalidations, so the counters are mutex-guarded.
type fakeAdminAPI struct {
	users    *entity.Paged[entity.User]
	trips    *entity.Paged[entity.Trip]
	bookings *entity.Paged[entity.Booking]
	stats    *entity.PlatformStats
	err      error

	mu               sync.Mutex
	listCalls        int
	lastUserFilters  entity.UserFilters
	lastTripFilters  entity.TripFilters
	cancelledTrips   []string
	lastCancelReason string
}

func (f *fakeAdminAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.listCalls
}

func (f *fakeAdminAPI) userFilters() entity.UserFilters {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastUserFilters
}

func (f *fakeAdminAPI) tripFilters() entity.TripFilters {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastTripFilters
}

func (f *fakeAdminAPI) cancelled() ([]string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cancelledTrips, f.lastCancelReason
}

func (f *fakeAdminAPI) PlatformStats(ctx context.Context) (*entity.PlatformStats, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.stats, nil
}

func (f *fakeAdminAPI) ListUsers(ctx context.Context, filters entity.UserFilters) (*entity.Paged[entity.User], error) {
	f.mu.Lock()
	f.listCalls++
	f.lastUserFilters = filters
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	return f.users, nil
}

func (f *fakeAdminAPI) UpdateUser(ctx context.Context, id string, fields map[string]any) (*entity.User, error) {
	return &entity.User{ID: id}, f.err
}

func (f *fakeAdminAPI) ActivateUser(ctx context.Context, id string) error   { return f.err }
func (f *fakeAdminAPI) DeactivateUser(ctx context.Context, id string) error { return f.err }
func (f *fakeAdminAPI) VerifyUser(ctx context.Context, id string) error     { return f.err }

func (f *fakeAdminAPI) ListTrips(ctx context.Context, filters entity.TripFilters) (*entity.Paged[entity.Trip], error) {
	f.mu.Lock()
	f.listCalls++
	f.lastTripFilters = filters
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	return f.trips, nil
}

func (f *fakeAdminAPI) CancelTrip(ctx context.Context, id, reason string) error {
	f.mu.Lock()
	f.cancelledTrips = append(f.cancelledTrips, id)
	f.lastCancelReason = reason
	f.mu.Unlock()

	return f.err
}

func (f *fakeAdminAPI) DeleteTrip(ctx context.Context, id string) error { return f.err }

func (f *fakeAdminAPI) ListBookings(ctx context.Context, filters entity.BookingFilters) (*entity.Paged[entity.Booking], error) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	return f.bookings, nil
}

func (f *fakeAdminAPI) CancelBooking(ctx context.Context, id, reason string) error { return f.err }

// fakeBannerAPI implements platform.BannerAPI.
type fakeBannerAPI struct {
	banners []entity.Banner
	stats   *entity.BannerStats
	err     error

	reorderErr    error
	lastReorder   []entity.BannerOrder
	reorderCalls  int
	createdBanner *entity.Banner
}

func (f *fakeBannerAPI) ListByPackage(ctx context.Context, packageID string, isActive *bool) ([]entity.Banner, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.banners, nil
}

func (f *fakeBannerAPI) Get(ctx context.Context, id string) (*entity.Banner, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.banners {
		if f.banners[i].ID == id {
			return &f.banners[i], nil
		}
	}

	return nil, f.err
}

func (f *fakeBannerAPI) Create(ctx context.Context, banner *entity.Banner) (*entity.Banner, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdBanner = banner

	return banner, nil
}

func (f *fakeBannerAPI) Update(ctx context.Context, id string, banner *entity.Banner) (*entity.Banner, error) {
	if f.err != nil {
		return nil, f.err
	}

	return banner, nil
}

func (f *fakeBannerAPI) Delete(ctx context.Context, id string) error { return f.err }

func (f *fakeBannerAPI) ToggleStatus(ctx context.Context, id string) (*entity.Banner, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &entity.Banner{ID: id}, nil
}

func (f *fakeBannerAPI) Reorder(ctx context.Context, packageID string, orders []entity.BannerOrder) error {
	f.reorderCalls++
	f.lastReorder = orders

	return f.reorderErr
}

func (f *fakeBannerAPI) Stats(ctx context.Context, packageID string) (*entity.BannerStats, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.stats, nil
}

func (f *fakeBannerAPI) RegisterView(ctx context.Context, id string) error  { return f.err }
func (f *fakeBannerAPI) RegisterClick(ctx context.Context, id string) error { return f.err }

// fakeRecommendationAPI implements platform.RecommendationAPI.
type fakeRecommendationAPI struct {
	routes []entity.PopularRoute
	demand []entity.CityDemand
	trips  []entity.Trip
	err    error
}

func (f *fakeRecommendationAPI) PopularRoutes(ctx context.Context) ([]entity.PopularRoute, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.routes, nil
}

func (f *fakeRecommendationAPI) CityDemand(ctx context.Context) ([]entity.CityDemand, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.demand, nil
}

func (f *fakeRecommendationAPI) SimilarTrips(ctx context.Context, tripID string) ([]entity.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.trips, nil
}

// fakeQRService implements service.QRCodeService.
type fakeQRService struct {
	lastContent string
}

func (f *fakeQRService) EncodePNG(content string) ([]byte, error) {
	f.lastContent = content

	return []byte("png:" + content), nil
}
