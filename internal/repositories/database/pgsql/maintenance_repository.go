package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
)

type PgxMaintenanceRepository struct {
	BaseRepository
}

func newPgxMaintenanceRepository(pool *pgxpool.Pool) portsrepo.MaintenanceRepositoryFacade {
	return &PgxMaintenanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MaintenanceRepositoryFacade = (*PgxMaintenanceRepository)(nil)

// The asset join is LEFT with COALESCE: records survive their asset's
// deletion, they just lose the resolved name and location.
const maintenanceSelect = `
	SELECT m.maintenance_id, m.asset_id, COALESCE(a.name, 'Unknown Asset'), COALESCE(a.location, ''),
		m.maintenance_date, m.type, m.priority, m.description, m.cost, m.performed_by, m.status,
		m.created_at, m.created_by, m.last_updated_at, m.last_updated_by
	FROM maintenance_records m
	LEFT JOIN assets a ON a.asset_id = m.asset_id
`

func scanMaintenance(row pgx.Row) (*domain.MaintenanceRecord, error) {
	var m domain.MaintenanceRecord
	err := row.Scan(
		&m.MaintenanceID,
		&m.AssetID,
		&m.AssetName,
		&m.AssetLocation,
		&m.MaintenanceDate,
		&m.Type,
		&m.Priority,
		&m.Description,
		&m.Cost,
		&m.PerformedBy,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxMaintenanceRepository) FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceRecord, error) {
	query := maintenanceSelect + ` WHERE m.maintenance_id = $1;`
	record, err := scanMaintenance(r.Pool.QueryRow(ctx, query, maintenanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance record %s: %w", maintenanceID, err)
	}
	return record, nil
}

func (r *PgxMaintenanceRepository) FindMaintenanceRecords(ctx context.Context, limit int, offset int) ([]domain.MaintenanceRecord, error) {
	query := maintenanceSelect + ` ORDER BY m.created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance records: %w", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MaintenanceRecord, error) {
		record, err := scanMaintenance(row)
		if err != nil {
			return domain.MaintenanceRecord{}, err
		}
		return *record, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect maintenance records: %w", err)
	}
	return records, nil
}

func (r *PgxMaintenanceRepository) SaveMaintenance(ctx context.Context, record domain.MaintenanceRecord) error {
	query := `
		INSERT INTO maintenance_records (maintenance_id, asset_id, maintenance_date, type, priority,
			description, cost, performed_by, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.MaintenanceID, record.AssetID, record.MaintenanceDate, record.Type, record.Priority,
		record.Description, record.Cost, record.PerformedBy, record.Status,
		record.CreatedAt, record.CreatedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save maintenance record %s: %w", record.MaintenanceID, err)
	}
	return nil
}

func (r *PgxMaintenanceRepository) UpdateMaintenance(ctx context.Context, record domain.MaintenanceRecord) error {
	query := `
		UPDATE maintenance_records SET maintenance_date = $2, type = $3, priority = $4, description = $5,
			cost = $6, performed_by = $7, last_updated_at = $8, last_updated_by = $9
		WHERE maintenance_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		record.MaintenanceID, record.MaintenanceDate, record.Type, record.Priority, record.Description,
		record.Cost, record.PerformedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update maintenance record %s: %w", record.MaintenanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMaintenanceRepository) UpdateStatus(ctx context.Context, recordID string, from, to domain.Status, updatedBy string) error {
	return updateStatusCAS(ctx, r.Pool, "maintenance_records", "maintenance_id", recordID, from, to, updatedBy)
}
