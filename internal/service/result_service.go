package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/cache"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

// ResultStore persists exam results.
type ResultStore interface {
	List(ctx context.Context) ([]model.Result, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Result, error)
	Create(ctx context.Context, r *model.Result) error
	Update(ctx context.Context, r *model.Result) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResultService manages published results. The public listing is cached.
type ResultService struct {
	store ResultStore
	cache cache.ListCache
	log   zerolog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(store ResultStore, listCache cache.ListCache, log zerolog.Logger) *ResultService {
	return &ResultService{
		store: store,
		cache: listCache,
		log:   log.With().Str("component", "result_service").Logger(),
	}
}

// List returns all results, newest first.
func (s *ResultService) List(ctx context.Context) ([]model.Result, error) {
	return cachedList(ctx, s.cache, s.log, collectionResults, s.store.List)
}

// Create stores a new result.
func (s *ResultService) Create(ctx context.Context, f model.ResultFields) (*model.Result, error) {
	r := model.NewResult(f)
	if err := s.store.Create(ctx, r); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, collectionResults)
	return r, nil
}

// Update overwrites name, roll and result. An empty certificate URL keeps the
// stored one.
func (s *ResultService) Update(ctx context.Context, id uuid.UUID, f model.ResultFields) (*model.Result, error) {
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Name = f.Name
	r.Roll = f.Roll
	r.Result = f.Result
	if link := f.CertificateLink(); link != "" {
		r.CertificateURL = &link
	}

	if err := s.store.Update(ctx, r); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, collectionResults)
	return r, nil
}

// Delete removes a result.
func (s *ResultService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, s.cache, s.log, collectionResults)
	return nil
}
