package provider

import (
	"context"
	"fmt"
	"strings"

	"eventra/models"
	"eventra/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// validateProfile rejects profiles without a category and malformed packages.
func validateProfile(req models.ProviderProfileRequest) error {
	if strings.TrimSpace(req.Category) == "" {
		return utils.NewBadRequestError("category is required")
	}
	for i, p := range req.PricingPackages {
		if strings.TrimSpace(p.Name) == "" {
			return utils.NewBadRequestError(fmt.Sprintf("pricingPackages[%d]: name is required", i))
		}
		if p.Price < 0 {
			return utils.NewBadRequestError(fmt.Sprintf("pricingPackages[%d]: price cannot be negative", i))
		}
	}
	for i, item := range req.Portfolio {
		if strings.TrimSpace(item.URL) == "" {
			return utils.NewBadRequestError(fmt.Sprintf("portfolio[%d]: url is required", i))
		}
	}
	return nil
}

// UpsertProfile creates the caller's profile or updates the fields present in
// req. Omitted fields keep their stored value.
func (s *DefaultProviderService) UpsertProfile(ctx context.Context, userID string, req models.ProviderProfileRequest) (*models.ProviderProfile, error) {
	logger := utils.GetLogger()

	if err := validateProfile(req); err != nil {
		return nil, err
	}

	update := models.ProviderProfileUpdate{
		User:            userID,
		Category:        strings.TrimSpace(req.Category),
		Bio:             req.Bio,
		PricingPackages: req.PricingPackages,
		Portfolio:       req.Portfolio,
		Availability:    req.Availability,
	}
	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		update.Location = &location
	}
	saved, created, err := s.Repo.Upsert(ctx, update)
	if err != nil {
		return nil, err
	}

	if created {
		if err := s.Users.UpdateSetDocument(ctx, userID, bson.M{"profileRef": saved.ID}); err != nil {
			return nil, fmt.Errorf("failed to link profile to user: %w", err)
		}
		logger.Info("Provider profile created", zap.String("userID", userID), zap.String("profileID", saved.ID))
	} else {
		logger.Info("Provider profile updated", zap.String("userID", userID), zap.String("profileID", saved.ID))
	}
	return saved, nil
}

// populate attaches the owning user's public fields.
func (s *DefaultProviderService) populate(ctx context.Context, p *models.ProviderProfile) (*models.ProviderProfileView, error) {
	view := &models.ProviderProfileView{ProviderProfile: *p}
	owners, err := s.Users.GetByIDs(ctx, []string{p.User})
	if err != nil {
		return nil, err
	}
	if len(owners) == 1 {
		view.UserInfo = owners[0].Summary()
	}
	return view, nil
}

func (s *DefaultProviderService) GetOwnProfile(ctx context.Context, userID string) (*models.ProviderProfileView, error) {
	p, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NewNotFoundError("Profile not found")
	}
	return s.populate(ctx, p)
}

func (s *DefaultProviderService) GetProviderByID(ctx context.Context, profileID string) (*models.ProviderProfileView, error) {
	p, err := s.Repo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NewNotFoundError("Provider not found")
	}
	return s.populate(ctx, p)
}

func (s *DefaultProviderService) ListProviders(ctx context.Context, criteria models.ProviderSearchCriteria) ([]models.ProviderProfileView, error) {
	if criteria.MinRating < 0 || criteria.MinRating > 5 {
		return nil, utils.NewBadRequestError("minRating must be between 0 and 5")
	}
	return s.Repo.Search(ctx, criteria)
}
