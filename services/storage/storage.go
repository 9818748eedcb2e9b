package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/asset"
)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}

// UploadFile uploads a file to Cloudinary into the specified folder.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, file io.Reader, destFolder string) (*UploadResult, error) {
	uploadParams := uploader.UploadParams{
		Folder:         destFolder,
		UniqueFilename: api.Bool(true),
		ResourceType:   "auto",
	}
	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return &UploadResult{
		PublicID:     result.PublicID,
		URL:          result.SecureURL,
		ResourceType: result.ResourceType,
	}, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}

// getAsset returns an asset instance based on the resource type.
func (s *StorageServiceImpl) getAsset(resourceType, publicID string) (*asset.Asset, error) {
	switch resourceType {
	case "image":
		return s.cld.Image(publicID)
	case "video":
		return s.cld.Video(publicID)
	default:
		return s.cld.Media(publicID)
	}
}

// GetDownloadURL constructs a public URL for a file based on its resource type.
func (s *StorageServiceImpl) GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error) {
	a, err := s.getAsset(resourceType, publicID)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to get asset: %w", err)
	}
	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to get URL string: %w", err)
	}
	return url, nil
}
