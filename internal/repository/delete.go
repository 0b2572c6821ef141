package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// deleteByID removes one row from a fixed, trusted table name.
func deleteByID(ctx context.Context, pool *pgxpool.Pool, table string, id uuid.UUID) error {
	tag, err := pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
