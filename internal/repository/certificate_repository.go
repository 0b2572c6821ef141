package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillbridge-bd/institute-backend/internal/model"
)

const certificateColumns = `id, name, registration_number, roll, student_image_url, certificate_image_url, created_at, updated_at`

// CertificateRepository handles certificate data access.
type CertificateRepository struct {
	pool *pgxpool.Pool
}

// NewCertificateRepository creates a new CertificateRepository.
func NewCertificateRepository(pool *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{pool: pool}
}

func scanCertificate(row interface{ Scan(...any) error }, c *model.Certificate) error {
	return row.Scan(&c.ID, &c.Name, &c.RegistrationNumber, &c.Roll, &c.StudentImageURL, &c.CertificateImageURL, &c.CreatedAt, &c.UpdatedAt)
}

// List returns all certificates, newest first.
func (r *CertificateRepository) List(ctx context.Context) ([]model.Certificate, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+certificateColumns+` FROM certificates ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []model.Certificate
	for rows.Next() {
		var c model.Certificate
		if err := scanCertificate(rows, &c); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// GetByID retrieves a certificate by ID.
func (r *CertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	c := &model.Certificate{}
	if err := scanCertificate(r.pool.QueryRow(ctx, `SELECT `+certificateColumns+` FROM certificates WHERE id = $1`, id), c); err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

// Create inserts a new certificate.
func (r *CertificateRepository) Create(ctx context.Context, c *model.Certificate) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO certificates (name, registration_number, roll, student_image_url, certificate_image_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Name, c.RegistrationNumber, c.Roll, c.StudentImageURL, c.CertificateImageURL,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update overwrites every writable field of an existing certificate.
func (r *CertificateRepository) Update(ctx context.Context, c *model.Certificate) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE certificates
		 SET name = $2, registration_number = $3, roll = $4,
		     student_image_url = $5, certificate_image_url = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		c.ID, c.Name, c.RegistrationNumber, c.Roll, c.StudentImageURL, c.CertificateImageURL,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return mapError(err)
}

// Delete removes a certificate.
func (r *CertificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.pool, "certificates", id)
}
