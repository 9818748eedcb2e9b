package providerRepo

import (
	"context"

	"eventra/models"
)

// ProviderRepository defines data access for provider profiles.
// Single-document lookups return (nil, nil) when nothing matches.
type ProviderRepository interface {
	// Upsert creates the profile owned by update.User or sets the fields the
	// update carries. created reports whether a new document was inserted.
	Upsert(ctx context.Context, update models.ProviderProfileUpdate) (saved *models.ProviderProfile, created bool, err error)
	GetByID(ctx context.Context, id string) (*models.ProviderProfile, error)
	GetByUser(ctx context.Context, userID string) (*models.ProviderProfile, error)
	// Search returns profiles matching the criteria with their owners populated.
	Search(ctx context.Context, criteria models.ProviderSearchCriteria) ([]models.ProviderProfileView, error)
	// Sample returns up to n random profiles with their owners populated.
	Sample(ctx context.Context, n int) ([]models.ProviderProfileView, error)
	AddPortfolioItem(ctx context.Context, userID string, item models.PortfolioItem) (*models.ProviderProfile, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
