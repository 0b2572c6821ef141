package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skillbridge-bd/institute-backend/internal/cache"
	"github.com/skillbridge-bd/institute-backend/internal/model"
	"github.com/skillbridge-bd/institute-backend/internal/repository"
)

// Seminar validation errors.
var (
	ErrInvalidSeminarCount = fmt.Errorf("a seminar set must hold exactly %d seminars", model.SeminarSlots)
	ErrInvalidSeminar      = errors.New("every seminar needs a title, description and date")
)

// SeminarStore persists the seminar set document.
type SeminarStore interface {
	List(ctx context.Context) ([]model.SeminarSet, error)
	Create(ctx context.Context, s *model.SeminarSet) error
	ReplaceSeminars(ctx context.Context, s *model.SeminarSet) error
}

// SeminarService manages the free seminar schedule.
type SeminarService struct {
	store SeminarStore
	cache cache.ListCache
	log   zerolog.Logger
}

// NewSeminarService creates a new SeminarService.
func NewSeminarService(store SeminarStore, listCache cache.ListCache, log zerolog.Logger) *SeminarService {
	return &SeminarService{
		store: store,
		cache: listCache,
		log:   log.With().Str("component", "seminar_service").Logger(),
	}
}

// List returns the stored seminar sets in insertion order.
func (s *SeminarService) List(ctx context.Context) ([]model.SeminarSet, error) {
	return cachedList(ctx, s.cache, s.log, collectionSeminars, s.store.List)
}

// Save replaces the seminars of the set named by rawID. When rawID is empty,
// malformed or unknown a new set is created instead. Concurrent saves on the
// same id are last-write-wins.
func (s *SeminarService) Save(ctx context.Context, rawID string, seminars []model.Seminar) (*model.SeminarSet, error) {
	if err := validateSeminars(seminars); err != nil {
		return nil, err
	}

	set := &model.SeminarSet{Seminars: seminars}

	if id, err := uuid.Parse(strings.TrimSpace(rawID)); err == nil {
		set.ID = id
		err := s.store.ReplaceSeminars(ctx, set)
		switch {
		case err == nil:
			invalidate(ctx, s.cache, s.log, collectionSeminars)
			return set, nil
		case !errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
		s.log.Debug().Str("id", rawID).Msg("seminar set not found, creating a new one")
		set.ID = uuid.Nil
	}

	if err := s.store.Create(ctx, set); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, collectionSeminars)
	return set, nil
}

func validateSeminars(seminars []model.Seminar) error {
	if len(seminars) != model.SeminarSlots {
		return ErrInvalidSeminarCount
	}
	for i := range seminars {
		sem := &seminars[i]
		sem.Title = strings.TrimSpace(sem.Title)
		sem.Description = strings.TrimSpace(sem.Description)
		if sem.Title == "" || sem.Description == "" || sem.Date.IsZero() {
			return fmt.Errorf("%w (seminar %d)", ErrInvalidSeminar, i+1)
		}
	}
	return nil
}
