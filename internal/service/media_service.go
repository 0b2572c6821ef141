package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/metrics"
	"github.com/skillbridge-bd/institute-backend/internal/storage"
)

// Sentinel errors for media uploads.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// Upload folders on the image host.
const (
	FolderEnrollments         = "enrollments"
	FolderCertificates        = "certificates"
	FolderCertificateStudents = "certificates/students"
)

// Upload is an image received from a client, not yet forwarded to the host.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// UploadFromHeader adapts a multipart file. Returns nil for a nil header so
// optional files stay optional.
func UploadFromHeader(h *multipart.FileHeader) *Upload {
	if h == nil {
		return nil
	}
	return &Upload{
		Filename:    h.Filename,
		ContentType: h.Header.Get("Content-Type"),
		Size:        h.Size,
		Open: func() (io.ReadCloser, error) {
			return h.Open()
		},
	}
}

// MediaService validates images and forwards them to the configured uploader.
type MediaService struct {
	uploader storage.Uploader
	maxBytes int64
	log      zerolog.Logger
}

// NewMediaService creates a new MediaService.
func NewMediaService(uploader storage.Uploader, maxBytes int64, log zerolog.Logger) *MediaService {
	return &MediaService{
		uploader: uploader,
		maxBytes: maxBytes,
		log:      log.With().Str("component", "media_service").Logger(),
	}
}

// Validate checks the declared MIME type and size of one upload.
func (s *MediaService) Validate(u *Upload) error {
	if !strings.HasPrefix(u.ContentType, "image/") {
		return fmt.Errorf("%w: %q", ErrUnsupportedFileType, u.ContentType)
	}
	if u.Size > s.maxBytes {
		return fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, u.Size, s.maxBytes)
	}
	return nil
}

// ValidateAll validates every non-nil upload. Callers run it before the first
// provider call so a bad second file never leaves an orphaned first upload.
func (s *MediaService) ValidateAll(uploads ...*Upload) error {
	for _, u := range uploads {
		if u == nil {
			continue
		}
		if err := s.Validate(u); err != nil {
			return err
		}
	}
	return nil
}

// Upload validates u, reads it into memory and sends it to the image host.
// Provider failures are returned wrapping storage.ErrUploadFailed. No retry.
func (s *MediaService) Upload(ctx context.Context, u *Upload, folder string) (string, error) {
	if err := s.Validate(u); err != nil {
		return "", err
	}

	blob, err := s.read(u)
	if err != nil {
		return "", err
	}

	timer := prometheus.NewTimer(metrics.UploadDuration.WithLabelValues(folder))
	url, err := s.uploader.Upload(ctx, blob, u.ContentType, folder)
	timer.ObserveDuration()
	if err != nil {
		metrics.Uploads.WithLabelValues(folder, "failure").Inc()
		s.log.Error().Err(err).
			Str("folder", folder).
			Str("filename", u.Filename).
			Int("bytes", len(blob)).
			Msg("image upload failed")
		if !errors.Is(err, storage.ErrUploadFailed) {
			err = fmt.Errorf("%w: %v", storage.ErrUploadFailed, err)
		}
		return "", err
	}
	metrics.Uploads.WithLabelValues(folder, "success").Inc()
	return url, nil
}

// read loads the file, enforcing the size limit on the actual bytes as well
// as the declared size.
func (s *MediaService) read(u *Upload) ([]byte, error) {
	rc, err := u.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(rc, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if n > s.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, s.maxBytes)
	}
	return buf.Bytes(), nil
}
