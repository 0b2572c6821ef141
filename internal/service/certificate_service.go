package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/cache"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

// Certificate specific failures. Upload errors also wrap storage.ErrUploadFailed.
var (
	ErrCertificateImageRequired = errors.New("certificate image is required")
	ErrStudentImageRequired     = errors.New("student image or student image url is required")
	ErrCertificateImageUpload   = errors.New("certificate image upload failed")
	ErrStudentImageUpload       = errors.New("student image upload failed")
)

// CertificateStore persists certificates.
type CertificateStore interface {
	List(ctx context.Context) ([]model.Certificate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
	Create(ctx context.Context, c *model.Certificate) error
	Update(ctx context.Context, c *model.Certificate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CertificateInput carries the text fields and optional new images of a
// create or update. StudentImageURL keeps an already hosted photo.
type CertificateInput struct {
	Name               string
	RegistrationNumber string
	Roll               string
	StudentImageURL    string
	StudentImage       *Upload
	Certificate        *Upload
}

// CertificateService manages issued certificates.
type CertificateService struct {
	store CertificateStore
	media *MediaService
	cache cache.ListCache
	log   zerolog.Logger
}

// NewCertificateService creates a new CertificateService.
func NewCertificateService(store CertificateStore, media *MediaService, listCache cache.ListCache, log zerolog.Logger) *CertificateService {
	return &CertificateService{
		store: store,
		media: media,
		cache: listCache,
		log:   log.With().Str("component", "certificate_service").Logger(),
	}
}

// List returns all certificates, newest first.
func (s *CertificateService) List(ctx context.Context) ([]model.Certificate, error) {
	return cachedList(ctx, s.cache, s.log, collectionCertificates, s.store.List)
}

// Create requires a certificate image and either a student image file or URL.
// Both files are validated before either is uploaded.
func (s *CertificateService) Create(ctx context.Context, in CertificateInput) (*model.Certificate, error) {
	if in.Certificate == nil {
		return nil, ErrCertificateImageRequired
	}
	if in.StudentImage == nil && in.StudentImageURL == "" {
		return nil, ErrStudentImageRequired
	}
	if err := s.media.ValidateAll(in.Certificate, in.StudentImage); err != nil {
		return nil, err
	}

	certURL, err := s.uploadCertificate(ctx, in.Certificate)
	if err != nil {
		return nil, err
	}

	studentURL := in.StudentImageURL
	if in.StudentImage != nil {
		if studentURL, err = s.uploadStudentImage(ctx, in.StudentImage); err != nil {
			return nil, err
		}
	}

	c := &model.Certificate{
		Name:                in.Name,
		RegistrationNumber:  in.RegistrationNumber,
		Roll:                in.Roll,
		StudentImageURL:     model.Optional(studentURL),
		CertificateImageURL: certURL,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, collectionCertificates)
	return c, nil
}

// Update overwrites the text fields. A new file replaces the stored URL;
// without one the student photo falls back to StudentImageURL, then to the
// stored value.
func (s *CertificateService) Update(ctx context.Context, id uuid.UUID, in CertificateInput) (*model.Certificate, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.media.ValidateAll(in.Certificate, in.StudentImage); err != nil {
		return nil, err
	}

	if in.Certificate != nil {
		certURL, err := s.uploadCertificate(ctx, in.Certificate)
		if err != nil {
			return nil, err
		}
		c.CertificateImageURL = certURL
	}

	switch {
	case in.StudentImage != nil:
		studentURL, err := s.uploadStudentImage(ctx, in.StudentImage)
		if err != nil {
			return nil, err
		}
		c.StudentImageURL = &studentURL
	case in.StudentImageURL != "":
		keep := in.StudentImageURL
		c.StudentImageURL = &keep
	}

	c.Name = in.Name
	c.RegistrationNumber = in.RegistrationNumber
	c.Roll = in.Roll

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, collectionCertificates)
	return c, nil
}

// Delete removes a certificate.
func (s *CertificateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.log, collectionCertificates)
	return nil
}

func (s *CertificateService) uploadCertificate(ctx context.Context, u *Upload) (string, error) {
	url, err := s.media.Upload(ctx, u, FolderCertificates)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCertificateImageUpload, err)
	}
	return url, nil
}

func (s *CertificateService) uploadStudentImage(ctx context.Context, u *Upload) (string, error) {
	url, err := s.media.Upload(ctx, u, FolderCertificateStudents)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStudentImageUpload, err)
	}
	return url, nil
}
