package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/skillbridge-bd/institute-backend/internal/config"
)

// CloudinaryUploader uploads images to Cloudinary and returns the secure URL.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds a client from CLOUDINARY_URL, or from the
// cloud name / key / secret triple when the URL is not set.
func NewCloudinaryUploader(cfg config.StorageConfig) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cfg.CloudinaryURL != "":
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	case cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	default:
		return nil, errors.New("cloudinary credentials are not configured")
	}
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload sends blob to Cloudinary under folder and returns its secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, blob []byte, contentType, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(blob), uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("%w: cloudinary: %v", ErrUploadFailed, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("%w: cloudinary: %s", ErrUploadFailed, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("%w: cloudinary returned no url", ErrUploadFailed)
	}
	return resp.SecureURL, nil
}
