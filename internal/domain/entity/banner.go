package entity

import "time"

// Banner packages are the tiers that scope a banner list and its ordering.
const (
	PackageFree       = "free"
	PackagePremium    = "premium"
	PackageVIP        = "vip"
	PackageEnterprise = "enterprise"
)

// Banner types accepted by the platform.
const (
	BannerTypeBanner      = "banner"
	BannerTypeAd          = "advertisement"
	BannerTypePromotional = "promotional"
	BannerTypeFeatured    = "featured"
)

// Packages lists every known banner package tier in display order.
func Packages() []string {
	return []string{PackageFree, PackagePremium, PackageVIP, PackageEnterprise}
}

// IsValidPackage reports whether id names a known package tier.
func IsValidPackage(id string) bool {
	switch id {
	case PackageFree, PackagePremium, PackageVIP, PackageEnterprise:
		return true
	}

	return false
}

type BannerDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type CampaignPeriod struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

type BannerVisibility struct {
	// UserTypes is one of "both", "driver", "passenger".
	UserTypes string `json:"userTypes"`
	// Devices is one of "both", "mobile", "web".
	Devices string `json:"devices"`
}

type BannerMetadata struct {
	CampaignName string   `json:"campaignName,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Images       []string `json:"images,omitempty"`
}

type BannerStatistics struct {
	Views       int `json:"views"`
	Clicks      int `json:"clicks"`
	Impressions int `json:"impressions"`
}

// Banner is the most structurally complex domain object. Order defines the
// ascending display sort and stays a unique non-negative index within a
// package after any reorder.
type Banner struct {
	ID             string           `json:"_id"`
	PackageID      string           `json:"packageId"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	ImageURL       string           `json:"imageUrl"`
	ClickURL       string           `json:"clickUrl,omitempty"`
	Order          int              `json:"order"`
	Type           string           `json:"type"`
	Dimensions     BannerDimensions `json:"dimensions"`
	CampaignPeriod CampaignPeriod   `json:"campaignPeriod"`
	Visibility     BannerVisibility `json:"visibility"`
	Metadata       BannerMetadata   `json:"metadata"`
	Statistics     BannerStatistics `json:"statistics"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// BannerOrder is one element of a bulk reorder mutation.
type BannerOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// BannerStats is the per-package aggregate returned by the stats endpoint.
type BannerStats struct {
	PackageID    string `json:"packageId"`
	TotalBanners int    `json:"totalBanners"`
	ActiveCount  int    `json:"activeCount"`
	Views        int    `json:"views"`
	Clicks       int    `json:"clicks"`
	Impressions  int    `json:"impressions"`
}
