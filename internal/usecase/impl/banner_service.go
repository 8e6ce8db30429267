package impl

import (
	"context"
	"log/slog"
	"strconv"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/platform"
	"dashboard/internal/domain/service"
	"dashboard/internal/querycache"
	"dashboard/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// bannerService implements the BannerUsecase interface, including the
// drag-reorder flow and the form validation that gates every write.
type bannerService struct {
	api      platform.BannerAPI
	cache    *querycache.Cache
	qr       service.QRCodeService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewBannerService is the constructor for bannerService.
func NewBannerService(
	api platform.BannerAPI,
	cache *querycache.Cache,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.BannerUsecase {
	return &bannerService{
		api:      api,
		cache:    cache,
		qr:       qr,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (srv *bannerService) ListByPackage(ctx context.Context, packageID string, isActive *bool) ([]entity.Banner, error) {
	if !entity.IsValidPackage(packageID) {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown package %q", packageID)
	}

	key := bannersPrefix + packageID
	if isActive != nil {
		key += "?isActive=" + strconv.FormatBool(*isActive)
	}

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]entity.Banner, error) {
		return srv.api.ListByPackage(ctx, packageID, isActive)
	})
}

func (srv *bannerService) Get(ctx context.Context, id string) (*entity.Banner, error) {
	key := bannersPrefix + "id/" + id

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.Banner, error) {
		return srv.api.Get(ctx, id)
	})
}

func (srv *bannerService) Create(ctx context.Context, input usecase.BannerInput) (*entity.Banner, error) {
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	created, err := srv.api.Create(ctx, bannerFromInput(input))
	if err != nil {
		return nil, err
	}
	srv.logger.Info("banner created",
		slog.String("bannerID", created.ID),
		slog.String("package", created.PackageID),
	)
	srv.cache.Invalidate(bannersPrefix)

	return created, nil
}

func (srv *bannerService) Update(ctx context.Context, id string, input usecase.BannerInput) (*entity.Banner, error) {
	if err := srv.validateInput(input); err != nil {
		return nil, err
	}

	updated, err := srv.api.Update(ctx, id, bannerFromInput(input))
	if err != nil {
		return nil, err
	}
	srv.cache.Invalidate(bannersPrefix)

	return updated, nil
}

func (srv *bannerService) Delete(ctx context.Context, id string) error {
	if err := srv.api.Delete(ctx, id); err != nil {
		return err
	}
	srv.logger.Info("banner deleted", slog.String("bannerID", id))
	srv.cache.Invalidate(bannersPrefix)

	return nil
}

func (srv *bannerService) ToggleStatus(ctx context.Context, id string) (*entity.Banner, error) {
	banner, err := srv.api.ToggleStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	srv.cache.Invalidate(bannersPrefix)

	return banner, nil
}

// Reorder moves draggedID to targetIndex within its package. The whole new
// ordering ships upstream in one call: exactly one {id, order} pair per
// banner, order equal to the new index. If the upstream write fails the
// cached copy is dropped and the server's ordering re-fetched, so the
// operator never keeps looking at an order the server refused.
func (srv *bannerService) Reorder(ctx context.Context, packageID, draggedID string, targetIndex int) ([]entity.Banner, error) {
	banners, err := srv.ListByPackage(ctx, packageID, nil)
	if err != nil {
		return nil, err
	}

	from := -1
	for i := range banners {
		if banners[i].ID == draggedID {
			from = i

			break
		}
	}
	if from == -1 {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "banner %s not in package %s", draggedID, packageID)
	}

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(banners)-1 {
		targetIndex = len(banners) - 1
	}

	working := make([]entity.Banner, 0, len(banners))
	working = append(working, banners[:from]...)
	working = append(working, banners[from+1:]...)
	working = append(working[:targetIndex], append([]entity.Banner{banners[from]}, working[targetIndex:]...)...)

	orders := make([]entity.BannerOrder, len(working))
	for i := range working {
		working[i].Order = i
		orders[i] = entity.BannerOrder{ID: working[i].ID, Order: i}
	}

	if err := srv.api.Reorder(ctx, packageID, orders); err != nil {
		srv.cache.Drop(bannersPrefix)
		fresh, refetchErr := srv.ListByPackage(ctx, packageID, nil)
		if refetchErr != nil {
			return nil, err
		}

		return fresh, err
	}

	srv.logger.Info("banners reordered",
		slog.String("package", packageID),
		slog.String("bannerID", draggedID),
		slog.Int("targetIndex", targetIndex),
	)
	srv.cache.Invalidate(bannersPrefix)

	return working, nil
}

func (srv *bannerService) Stats(ctx context.Context, packageID string) (*entity.BannerStats, error) {
	if !entity.IsValidPackage(packageID) {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown package %q", packageID)
	}

	key := bannersPrefix + "stats/" + packageID

	return querycache.Fetch(ctx, srv.cache, key, func(ctx context.Context) (*entity.BannerStats, error) {
		return srv.api.Stats(ctx, packageID)
	})
}

func (srv *bannerService) RegisterView(ctx context.Context, id string) error {
	// Counters are eventually consistent; no invalidation on purpose.
	return srv.api.RegisterView(ctx, id)
}

func (srv *bannerService) RegisterClick(ctx context.Context, id string) error {
	return srv.api.RegisterClick(ctx, id)
}

func (srv *bannerService) QRPreview(ctx context.Context, id string) ([]byte, error) {
	banner, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner.ClickURL == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "banner has no click URL")
	}

	return srv.qr.EncodePNG(banner.ClickURL)
}

// validateInput turns validator failures into per-field messages so the
// form can mark the offending inputs.
func (srv *bannerService) validateInput(input usecase.BannerInput) error {
	err := srv.validate.Struct(input)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	fields := make(map[string]string, len(invalid))
	for _, fe := range invalid {
		fields[fe.Field()] = bannerFieldMessage(fe)
	}

	return domainerrors.NewFieldErrors(fields)
}

func bannerFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	}

	return "is invalid"
}

func bannerFromInput(input usecase.BannerInput) *entity.Banner {
	banner := &entity.Banner{
		PackageID:      input.PackageID,
		Title:          input.Title,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		ClickURL:       input.ClickURL,
		Type:           input.Type,
		Dimensions:     input.Dimensions,
		CampaignPeriod: input.Campaign,
		Visibility:     input.Visibility,
		Metadata:       input.Metadata,
	}
	if input.Type == "" {
		banner.Type = entity.BannerTypeBanner
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	} else {
		banner.IsActive = true
	}

	return banner
}
