package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

const adminColumns = `id, username, password_hash, credential_version, created_at, updated_at`

// AdminRepository handles admin identity data access.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func scanAdmin(row interface{ Scan(...any) error }) (*model.Admin, error) {
	a := &model.Admin{}
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CredentialVersion, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

// Exists reports whether at least one admin row is present.
func (r *AdminRepository) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins)`).Scan(&exists)
	return exists, err
}

// CreateIfEmpty inserts the admin only when the table is empty.
// Concurrent callers racing on an empty table still end up with one row.
func (r *AdminRepository) CreateIfEmpty(ctx context.Context, username, passwordHash string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO admins (username, password_hash)
		 SELECT $1, $2
		 WHERE NOT EXISTS (SELECT 1 FROM admins)
		 ON CONFLICT (username) DO NOTHING`,
		username, passwordHash,
	)
	if err != nil {
		return false, mapError(err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByID retrieves an admin by ID.
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

// GetByUsername retrieves an admin by their unique username.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE username = $1`, username))
}

// First returns the oldest admin row.
func (r *AdminRepository) First(ctx context.Context) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins ORDER BY created_at ASC LIMIT 1`))
}

// Rotate overwrites the username and password hash of an existing admin and
// bumps its credential version. It never inserts.
func (r *AdminRepository) Rotate(ctx context.Context, id uuid.UUID, username, passwordHash string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`UPDATE admins
		 SET username = $2, password_hash = $3,
		     credential_version = credential_version + 1, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+adminColumns,
		id, username, passwordHash))
}
