package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

// SeminarRepository handles the seminar set document. Seminars are stored
// as a JSONB array on a single row.
type SeminarRepository struct {
	pool *pgxpool.Pool
}

// NewSeminarRepository creates a new SeminarRepository.
func NewSeminarRepository(pool *pgxpool.Pool) *SeminarRepository {
	return &SeminarRepository{pool: pool}
}

// List returns every seminar set in insertion order.
func (r *SeminarRepository) List(ctx context.Context) ([]model.SeminarSet, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, seminars, created_at, updated_at FROM seminar_sets ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []model.SeminarSet
	for rows.Next() {
		var s model.SeminarSet
		if err := rows.Scan(&s.ID, &s.Seminars, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// Create inserts a new seminar set.
func (r *SeminarRepository) Create(ctx context.Context, s *model.SeminarSet) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO seminar_sets (seminars) VALUES ($1)
		 RETURNING id, created_at, updated_at`,
		s.Seminars,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// ReplaceSeminars overwrites the seminar list of an existing set.
// Returns ErrNotFound when the id does not exist.
func (r *SeminarRepository) ReplaceSeminars(ctx context.Context, s *model.SeminarSet) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE seminar_sets SET seminars = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		s.ID, s.Seminars,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	return mapError(err)
}
