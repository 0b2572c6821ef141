package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillbridge-bd/institute-backend/internal/config"
)

// ErrUploadFailed wraps every provider-side failure (network, quota, rejected payload).
var ErrUploadFailed = errors.New("upload failed")

// Uploader pushes an in-memory image to a hosting provider and returns its public URL.
// folder is a loose namespace such as "enrollments" or "certificates/students".
type Uploader interface {
	Upload(ctx context.Context, blob []byte, contentType, folder string) (string, error)
}

// New selects the provider named by cfg.Provider.
func New(cfg config.StorageConfig) (Uploader, error) {
	switch cfg.Provider {
	case config.StorageCloudinary:
		return NewCloudinaryUploader(cfg)
	case config.StorageS3:
		return NewS3Uploader(cfg)
	case config.StorageLocal:
		return NewLocalUploader(cfg.UploadDir, cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// Allowed image MIME types and the extension stored objects get.
var imageExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/avif":    ".avif",
	"image/heic":    ".heic",
	"image/svg+xml": ".svg",
	"image/bmp":     ".bmp",
}

func extensionFor(contentType string) string {
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}
	return ""
}
