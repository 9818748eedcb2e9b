package utils

import (
	"fmt"

	"eventra/config"
	"eventra/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes and returns a Cloudinary-based StorageService.
func Cloudinary() (storage.StorageService, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	return storage.NewStorageService(cld, cloudName), nil
}
