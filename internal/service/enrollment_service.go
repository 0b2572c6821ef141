package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

// EnrollmentStore persists enrollments.
type EnrollmentStore interface {
	List(ctx context.Context) ([]model.Enrollment, error)
	Create(ctx context.Context, e *model.Enrollment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewEnrollment is a validated public enrollment with its two photos.
type NewEnrollment struct {
	Name     string
	Phone    string
	Email    string
	Photo    *Upload
	NIDPhoto *Upload
}

// EnrollmentService handles public enrollment submissions.
type EnrollmentService struct {
	store EnrollmentStore
	media *MediaService
	log   zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(store EnrollmentStore, media *MediaService, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		store: store,
		media: media,
		log:   log.With().Str("component", "enrollment_service").Logger(),
	}
}

// List returns enrollments, newest first.
func (s *EnrollmentService) List(ctx context.Context) ([]model.Enrollment, error) {
	return s.store.List(ctx)
}

// Create uploads both photos, one after the other, then stores the enrollment
// as pending. Nothing is stored if either upload fails.
func (s *EnrollmentService) Create(ctx context.Context, in NewEnrollment) (*model.Enrollment, error) {
	if err := s.media.ValidateAll(in.Photo, in.NIDPhoto); err != nil {
		return nil, err
	}

	photoURL, err := s.media.Upload(ctx, in.Photo, FolderEnrollments)
	if err != nil {
		return nil, err
	}
	nidURL, err := s.media.Upload(ctx, in.NIDPhoto, FolderEnrollments)
	if err != nil {
		return nil, err
	}

	e := &model.Enrollment{
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    model.Optional(in.Email),
		Photo:    photoURL,
		NIDPhoto: nidURL,
		Status:   model.EnrollmentPending,
	}
	if err := s.store.Create(ctx, e); err != nil {
		s.log.Error().Err(err).Msg("failed to store enrollment")
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	return e, nil
}

// Delete removes an enrollment; repository.ErrNotFound when absent.
func (s *EnrollmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}
