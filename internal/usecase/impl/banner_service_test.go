package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/usecase"
)

func fiveBanners() []entity.Banner {
	banners := make([]entity.Banner, 5)
	for i := range banners {
		banners[i] = entity.Banner{
			ID:        string(rune('a' + i)),
			PackageID: entity.PackageFree,
			Order:     i,
		}
	}

	return banners
}

func validBannerInput() usecase.BannerInput {
	return usecase.BannerInput{
		Title:     "Summer promo",
		ImageURL:  "https://cdn.example.com/banner.png",
		PackageID: entity.PackageFree,
	}
}

func ids(banners []entity.Banner) []string {
	out := make([]string, len(banners))
	for i := range banners {
		out[i] = banners[i].ID
	}

	return out
}

func TestReorderMovesDraggedBanner(t *testing.T) {
	t.Parallel()

	api := &fakeBannerAPI{banners: fiveBanners()}
	srv := NewBannerService(api, testCache(), &fakeQRService{}, testLogger())
	ctx := context.Background()

	// Drag "b" (index 1) to index 3.
	result, err := srv.Reorder(ctx, entity.PackageFree, "b", 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, ids(result))

	// Exactly one pair per banner, order equal to the new index.
	require.Len(t, api.lastReorder, 5)
	for i, pair := range api.lastReorder {
		assert.Equal(t, result[i].ID, pair.ID)
		assert.Equal(t, i, pair.Order)
	}
	for i := range result {
		assert.Equal(t, i, result[i].Order)
	}
}

func TestReorderClampsTargetIndex(t *testing.T) {
	t.Parallel()

	api := &fakeBannerAPI{banners: fiveBanners()}
	srv := NewBannerService(api, testCache(), &fakeQRService{}, testLogger())

	result, err := srv.Reorder(context.Background(), entity.PackageFree, "a", 99)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d", "e", "a"}, ids(result))
}

func TestReorderUnknownBanner(t *testing.T) {
	t.Parallel()

	api := &fakeBannerAPI{banners: fiveBanners()}
	srv := NewBannerService(api, testCache(), &fakeQRService{}, testLogger())

	_, err := srv.Reorder(context.Background(), entity.PackageFree, "zz", 0)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Zero(t, api.reorderCalls)
}

func TestReorderFailureRevertsToServerOrder(t *testing.T) {
	t.Parallel()

	api := &fakeBannerAPI{
		banners:    fiveBanners(),
		reorderErr: errors.New("write conflict"),
	}
	srv := NewBannerService(api, testCache(), &fakeQRService{}, testLogger())

	result, err := srv.Reorder(context.Background(), entity.PackageFree, "b", 3)
	require.Error(t, err)

	// The operator gets the server's ordering back, not the failed one.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(result))
}

func TestCreateValidationMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*usecase.BannerInput)
		wantField string
	}{
		{
			name:      "missing title",
			mutate:    func(in *usecase.BannerInput) { in.Title = "" },
			wantField: "Title",
		},
		{
			name:      "missing image URL",
			mutate:    func(in *usecase.BannerInput) { in.ImageURL = "" },
			wantField: "ImageURL",
		},
		{
			name:      "malformed image URL",
			mutate:    func(in *usecase.BannerInput) { in.ImageURL = "not a url" },
			wantField: "ImageURL",
		},
		{
			name:      "malformed click URL",
			mutate:    func(in *usecase.BannerInput) { in.ClickURL = "::broken" },
			wantField: "ClickURL",
		},
		{
			name:      "unknown type",
			mutate:    func(in *usecase.BannerInput) { in.Type = "popup" },
			wantField: "Type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := &fakeBannerAPI{}
			srv := NewBannerService(api, testCache(), &fakeQRService{}, testLogger())

			input := validBannerInput()
			tt.mutate(&input)

			_, err := srv.Create(context.Background(), input)
			require.Error(t, err)

			var fieldErrs *domainerrors.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Contains(t, fieldErrs.Fields, tt.wantField)

			// A rejected form never reaches the network.
			assert.Nil(t, api.createdBanner)
		})
	}
}

func TestCreateValidInputReachesUpstream(t *testing.T) {
	t.Parallel()

	api := &fakeBannerAPI{}
	srv := NewBannerService(api, testCache(), &fakeQRService{}, testLogger())

	input := validBannerInput()
	input.ClickURL = "https://example.com/promo"

	created, err := srv.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Summer promo", created.Title)
	assert.True(t, created.IsActive)
	assert.Equal(t, entity.BannerTypeBanner, created.Type)
	require.NotNil(t, api.createdBanner)
}

func TestListByPackageRejectsUnknownPackage(t *testing.T) {
	t.Parallel()

	srv := NewBannerService(&fakeBannerAPI{}, testCache(), &fakeQRService{}, testLogger())

	_, err := srv.ListByPackage(context.Background(), "platinum", nil)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestQRPreview(t *testing.T) {
	t.Parallel()

	banners := fiveBanners()
	banners[0].ClickURL = "https://example.com/promo"
	api := &fakeBannerAPI{banners: banners}
	qr := &fakeQRService{}
	srv := NewBannerService(api, testCache(), qr, testLogger())
	ctx := context.Background()

	png, err := srv.QRPreview(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("png:https://example.com/promo"), png)

	// No click URL, nothing to encode.
	_, err = srv.QRPreview(ctx, "b")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
