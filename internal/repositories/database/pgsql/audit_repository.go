package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	oldValues, err := json.Marshal(entry.OldValues)
	if err != nil {
		return fmt.Errorf("failed to encode old values: %w", err)
	}
	newValues, err := json.Marshal(entry.NewValues)
	if err != nil {
		return fmt.Errorf("failed to encode new values: %w", err)
	}

	query := `
		INSERT INTO audit_log (audit_id, user_id, action, table_name, record_id, old_values, new_values, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.Pool.Exec(ctx, query,
		entry.AuditID, entry.UserID, entry.Action, entry.TableName, entry.RecordID,
		oldValues, newValues, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry %s: %w", entry.AuditID, err)
	}
	return nil
}

func (r *PgxAuditRepository) FindAuditEntries(ctx context.Context, limit int, offset int) ([]domain.AuditEntry, error) {
	query := `
		SELECT audit_id, user_id, action, table_name, record_id, old_values, new_values, created_at
		FROM audit_log
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditEntry, error) {
		var entry domain.AuditEntry
		var oldValues, newValues []byte
		err := row.Scan(
			&entry.AuditID,
			&entry.UserID,
			&entry.Action,
			&entry.TableName,
			&entry.RecordID,
			&oldValues,
			&newValues,
			&entry.CreatedAt,
		)
		if err != nil {
			return domain.AuditEntry{}, err
		}
		if len(oldValues) > 0 {
			if err := json.Unmarshal(oldValues, &entry.OldValues); err != nil {
				return domain.AuditEntry{}, fmt.Errorf("failed to decode old values for %s: %w", entry.AuditID, err)
			}
		}
		if len(newValues) > 0 {
			if err := json.Unmarshal(newValues, &entry.NewValues); err != nil {
				return domain.AuditEntry{}, fmt.Errorf("failed to decode new values for %s: %w", entry.AuditID, err)
			}
		}
		return entry, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect audit entries: %w", err)
	}
	return entries, nil
}
