package platform

import (
	"context"

	"dashboard/internal/domain/entity"
)

// BannerAPI covers the /banners endpoints, scoped by package tier.
type BannerAPI interface {
	// ListByPackage returns the banners of one package tier, optionally
	// filtered by active state, sorted ascending by order.
	ListByPackage(ctx context.Context, packageID string, isActive *bool) ([]entity.Banner, error)
	Get(ctx context.Context, id string) (*entity.Banner, error)
	Create(ctx context.Context, banner *entity.Banner) (*entity.Banner, error)
	Update(ctx context.Context, id string, banner *entity.Banner) (*entity.Banner, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*entity.Banner, error)
	// Reorder replaces the order of every banner in the package in one call.
	Reorder(ctx context.Context, packageID string, orders []entity.BannerOrder) error
	Stats(ctx context.Context, packageID string) (*entity.BannerStats, error)
	RegisterView(ctx context.Context, id string) error
	RegisterClick(ctx context.Context, id string) error
}
