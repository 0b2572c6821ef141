package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/skillbridge-bd/institute-backend/internal/config"
)

// S3Uploader stores images in an S3-compatible bucket (AWS, Backblaze B2, MinIO).
type S3Uploader struct {
	api           s3iface.S3API
	bucket        string
	publicBaseURL string
}

// NewS3Uploader builds an uploader from static credentials.
func NewS3Uploader(cfg config.StorageConfig) (*S3Uploader, error) {
	if cfg.S3Bucket == "" || cfg.S3PublicBaseURL == "" {
		return nil, errors.New("S3_BUCKET and S3_PUBLIC_BASE_URL are required for the s3 provider")
	}
	awsCfg := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.S3KeyID, cfg.S3AppKey, ""),
		Region:           aws.String(cfg.S3Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.S3Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.S3Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}
	return NewS3UploaderWithClient(s3.New(sess), cfg.S3Bucket, cfg.S3PublicBaseURL), nil
}

// NewS3UploaderWithClient wraps an existing S3 client.
func NewS3UploaderWithClient(api s3iface.S3API, bucket, publicBaseURL string) *S3Uploader {
	return &S3Uploader{
		api:           api,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload puts blob as a public object under folder and returns its URL.
func (u *S3Uploader) Upload(ctx context.Context, blob []byte, contentType, folder string) (string, error) {
	key := path.Join(folder, uuid.New().String()+extensionFor(contentType))

	_, err := u.api.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(blob),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("%w: s3 put %s: %v", ErrUploadFailed, key, err)
	}
	return u.publicBaseURL + "/" + key, nil
}
