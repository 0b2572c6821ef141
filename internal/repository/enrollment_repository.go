package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

// EnrollmentRepository handles enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// List returns all enrollments, newest first.
func (r *EnrollmentRepository) List(ctx context.Context) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, phone, email, photo, nid_photo, status, created_at, updated_at
		 FROM enrollments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.Email, &e.Photo, &e.NIDPhoto, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// Create inserts a new enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO enrollments (name, phone, email, photo, nid_photo, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		e.Name, e.Phone, e.Email, e.Photo, e.NIDPhoto, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Delete removes an enrollment. Returns ErrNotFound when no row matched.
func (r *EnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, "enrollments", id)
}
