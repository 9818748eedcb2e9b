package storage

import (
	"context"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDownloadURL(t *testing.T) {
	cld, err := cloudinary.NewFromParams("demo", "key", "secret")
	require.NoError(t, err)
	svc := NewStorageService(cld, "demo")

	url, err := svc.GetDownloadURL(context.Background(), "image", "portfolio/cake")
	require.NoError(t, err)
	assert.Contains(t, url, "demo/image/upload/portfolio/cake")

	url, err = svc.GetDownloadURL(context.Background(), "video", "portfolio/reel")
	require.NoError(t, err)
	assert.Contains(t, url, "demo/video/upload/portfolio/reel")
}
