package usecase

import (
	"context"

	"dashboard/internal/domain/entity"
)

// BannerInput is the banner form. Validation runs before any network call;
// a rejected form never reaches the platform API.
type BannerInput struct {
	Title       string                  `json:"title" validate:"required"`
	Description string                  `json:"description"`
	ImageURL    string                  `json:"imageUrl" validate:"required,url"`
	ClickURL    string                  `json:"clickUrl" validate:"omitempty,url"`
	Type        string                  `json:"type" validate:"omitempty,oneof=banner advertisement promotional featured"`
	PackageID   string                  `json:"packageId" validate:"required"`
	IsActive    *bool                   `json:"isActive"`
	Dimensions  entity.BannerDimensions `json:"dimensions"`
	Campaign    entity.CampaignPeriod   `json:"campaignPeriod"`
	Visibility  entity.BannerVisibility `json:"visibility"`
	Metadata    entity.BannerMetadata   `json:"metadata"`
}

// BannerUsecase backs the banner management screen, including the drag
// reorder flow.
type BannerUsecase interface {
	// ListByPackage returns the package's banners sorted ascending by order.
	ListByPackage(ctx context.Context, packageID string, isActive *bool) ([]entity.Banner, error)
	Get(ctx context.Context, id string) (*entity.Banner, error)
	Create(ctx context.Context, input BannerInput) (*entity.Banner, error)
	Update(ctx context.Context, id string, input BannerInput) (*entity.Banner, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*entity.Banner, error)
	// Reorder moves draggedID to targetIndex within its package and pushes
	// the full new ordering upstream. On upstream failure the cached copy
	// is discarded and the server order re-fetched and returned.
	Reorder(ctx context.Context, packageID, draggedID string, targetIndex int) ([]entity.Banner, error)
	Stats(ctx context.Context, packageID string) (*entity.BannerStats, error)
	RegisterView(ctx context.Context, id string) error
	RegisterClick(ctx context.Context, id string) error
	// QRPreview renders the banner's click URL as a PNG QR code.
	QRPreview(ctx context.Context, id string) ([]byte, error)
}
