package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

const resultColumns = `id, name, roll, result, certificate_url, created_at, updated_at`

// ResultRepository handles exam result data access.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

func scanResult(row interface{ Scan(...any) error }, res *model.Result) error {
	return row.Scan(&res.ID, &res.Name, &res.Roll, &res.Result, &res.CertificateURL, &res.CreatedAt, &res.UpdatedAt)
}

// List returns all results, newest first.
func (r *ResultRepository) List(ctx context.Context) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+resultColumns+` FROM results ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var res model.Result
		if err := scanResult(rows, &res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// GetByID retrieves a result by ID.
func (r *ResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Result, error) {
	res := &model.Result{}
	if err := scanResult(r.pool.QueryRow(ctx, `SELECT `+resultColumns+` FROM results WHERE id = $1`, id), res); err != nil {
		return nil, mapError(err)
	}
	return res, nil
}

// Create inserts a new result.
func (r *ResultRepository) Create(ctx context.Context, res *model.Result) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO results (name, roll, result, certificate_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		res.Name, res.Roll, res.Result, res.CertificateURL,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

// Update overwrites every writable field of an existing result.
func (r *ResultRepository) Update(ctx context.Context, res *model.Result) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE results SET name = $2, roll = $3, result = $4, certificate_url = $5, updated_at = NOW()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		res.ID, res.Name, res.Roll, res.Result, res.CertificateURL,
	).Scan(&res.CreatedAt, &res.UpdatedAt)
	return mapError(err)
}

// Delete removes a result.
func (r *ResultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, "results", id)
}
