package provider

import (
	"context"
	"io"

	"eventra/models"
	"eventra/utils"

	"go.uber.org/zap"
)

const portfolioFolder = "eventra/portfolio"

// AddPortfolioMedia uploads a file and appends it to the caller's portfolio.
func (s *DefaultProviderService) AddPortfolioMedia(ctx context.Context, userID string, file io.Reader, itemType, description string) (*models.ProviderProfile, error) {
	if s.Storage == nil {
		return nil, utils.NewUnavailableError("Media uploads are not configured")
	}
	existing, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NewNotFoundError("Profile not found")
	}

	uploaded, err := s.Storage.UploadFile(ctx, file, portfolioFolder)
	if err != nil {
		return nil, err
	}
	if itemType == "" {
		itemType = uploaded.ResourceType
	}

	url, err := s.Storage.GetDownloadURL(ctx, uploaded.ResourceType, uploaded.PublicID)
	if err != nil {
		s.discardUpload(ctx, uploaded.PublicID)
		return nil, err
	}

	item := models.PortfolioItem{Type: itemType, URL: url, Description: description}
	saved, err := s.Repo.AddPortfolioItem(ctx, userID, item)
	if err != nil {
		s.discardUpload(ctx, uploaded.PublicID)
		return nil, err
	}
	if saved == nil {
		s.discardUpload(ctx, uploaded.PublicID)
		return nil, utils.NewNotFoundError("Profile not found")
	}

	utils.GetLogger().Info("Portfolio item added", zap.String("userID", userID), zap.String("publicID", uploaded.PublicID))
	return saved, nil
}

// discardUpload removes media that never made it into a portfolio.
func (s *DefaultProviderService) discardUpload(ctx context.Context, publicID string) {
	if err := s.Storage.DeleteFile(ctx, publicID); err != nil {
		utils.GetLogger().Warn("Failed to delete orphaned upload", zap.String("publicID", publicID), zap.Error(err))
	}
}
