package provider

import (
	"context"
	"fmt"
	"io"

	providerRepo "eventra/database/repository/provider"
	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/services/storage"
)

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo    providerRepo.ProviderRepository
	Users   userRepo.UserRepository
	Storage storage.StorageService
}

// NewDefaultProviderService wires the service. store may be nil when media
// uploads are not configured.
func NewDefaultProviderService(
	repo providerRepo.ProviderRepository,
	users userRepo.UserRepository,
	store storage.StorageService,
) (*DefaultProviderService, error) {
	if repo == nil || users == nil {
		return nil, fmt.Errorf("provider service initialization error: one or more dependencies are nil")
	}
	return &DefaultProviderService{Repo: repo, Users: users, Storage: store}, nil
}

type ProviderService interface {
	// Profile management
	UpsertProfile(ctx context.Context, userID string, req models.ProviderProfileRequest) (*models.ProviderProfile, error)
	GetOwnProfile(ctx context.Context, userID string) (*models.ProviderProfileView, error)
	AddPortfolioMedia(ctx context.Context, userID string, file io.Reader, itemType, description string) (*models.ProviderProfile, error)

	// Discovery
	ListProviders(ctx context.Context, criteria models.ProviderSearchCriteria) ([]models.ProviderProfileView, error)
	GetProviderByID(ctx context.Context, profileID string) (*models.ProviderProfileView, error)
}
