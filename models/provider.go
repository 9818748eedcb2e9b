package models

import "time"

// PricingPackage is one priced offer of a provider.
type PricingPackage struct {
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description"`
}

// PortfolioItem is a piece of media showcasing previous work.
type PortfolioItem struct {
	Type        string `bson:"type" json:"type"`
	URL         string `bson:"url" json:"url"`
	Description string `bson:"description,omitempty" json:"description"`
}

// ProviderProfile is the public storefront of a provider user.
type ProviderProfile struct {
	ID              string           `bson:"id" json:"id"`
	User            string           `bson:"user" json:"userId"`
	Category        string           `bson:"category" json:"category"`
	Bio             string           `bson:"bio,omitempty" json:"bio"`
	Location        string           `bson:"location,omitempty" json:"location"`
	PricingPackages []PricingPackage `bson:"pricingPackages" json:"pricingPackages"`
	Portfolio       []PortfolioItem  `bson:"portfolio" json:"portfolio"`
	Availability    []time.Time      `bson:"availability" json:"availability"`
	Rating          float64          `bson:"rating" json:"rating"`
	CreatedAt       time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time        `bson:"updatedAt" json:"updatedAt"`
}

// ProviderProfileView is a profile with its owning user populated.
type ProviderProfileView struct {
	ProviderProfile `bson:",inline"`
	UserInfo        *UserSummary `bson:"userInfo,omitempty" json:"user"`
}

// ProviderProfileRequest is the payload for POST /api/providers/profile.
type ProviderProfileRequest struct {
	Category        string           `json:"category" binding:"required"`
	Bio             *string          `json:"bio"`
	Location        *string          `json:"location"`
	PricingPackages []PricingPackage `json:"pricingPackages"`
	Portfolio       []PortfolioItem  `json:"portfolio"`
	Availability    []time.Time      `json:"availability"`
}

// ProviderProfileUpdate is a profile upsert for one user. Nil fields keep
// their stored value; on insert nil slices start empty.
type ProviderProfileUpdate struct {
	User            string
	Category        string
	Bio             *string
	Location        *string
	PricingPackages []PricingPackage
	Portfolio       []PortfolioItem
	Availability    []time.Time
	// Rating only applies when the profile is created.
	Rating float64
}

// ProviderSearchCriteria filters the provider directory.
type ProviderSearchCriteria struct {
	Category  string
	Location  string
	MinRating float64
	Limit     int64
}
