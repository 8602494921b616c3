package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// updateStatusCAS commits a status transition with compare-and-swap
// semantics: the row is only updated while its stored status still equals
// from. A guard miss on an existing row returns apperrors.ErrStaleStatus, so
// of two concurrent transitions at most one can win.
func updateStatusCAS(ctx context.Context, pool *pgxpool.Pool, table, idColumn, recordID string, from, to domain.Status, updatedBy string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE %s = $1 AND status = $2;
	`, table, idColumn)

	tag, err := pool.Exec(ctx, query, recordID, from, to, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update %s status for %s: %w", table, recordID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish a missing row from a concurrent status change.
	existsQuery := fmt.Sprintf(`SELECT status FROM %s WHERE %s = $1;`, table, idColumn)
	var current domain.Status
	err = pool.QueryRow(ctx, existsQuery, recordID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to check %s %s after status guard miss: %w", table, recordID, err)
	}
	return fmt.Errorf("%w: expected %q, found %q", apperrors.ErrStaleStatus, from, current)
}
