package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	UploadFile(ctx context.Context, file io.Reader, destFolder string) (*UploadResult, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, resourceType, publicID string) (string, error)
}

// UploadResult identifies a stored file.
type UploadResult struct {
	PublicID     string `json:"publicId"`
	URL          string `json:"url"`
	ResourceType string `json:"resourceType"`
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
