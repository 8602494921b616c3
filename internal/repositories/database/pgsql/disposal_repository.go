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

type PgxDisposalRepository struct {
	BaseRepository
}

func newPgxDisposalRepository(pool *pgxpool.Pool) portsrepo.DisposalRepositoryFacade {
	return &PgxDisposalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DisposalRepositoryFacade = (*PgxDisposalRepository)(nil)

const disposalSelect = `
	SELECT d.disposal_id, d.asset_id, COALESCE(a.name, 'Unknown Asset'), COALESCE(a.location, ''),
		d.method, d.disposal_date, d.reason, d.proceeds, d.status, d.approved_by,
		d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
	FROM disposal_records d
	LEFT JOIN assets a ON a.asset_id = d.asset_id
`

func scanDisposal(row pgx.Row) (*domain.DisposalRecord, error) {
	var d domain.DisposalRecord
	err := row.Scan(
		&d.DisposalID,
		&d.AssetID,
		&d.AssetName,
		&d.AssetLocation,
		&d.Method,
		&d.DisposalDate,
		&d.Reason,
		&d.Proceeds,
		&d.Status,
		&d.ApprovedBy,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxDisposalRepository) FindDisposalByID(ctx context.Context, disposalID string) (*domain.DisposalRecord, error) {
	query := disposalSelect + ` WHERE d.disposal_id = $1;`
	record, err := scanDisposal(r.Pool.QueryRow(ctx, query, disposalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find disposal %s: %w", disposalID, err)
	}
	return record, nil
}

func (r *PgxDisposalRepository) FindDisposals(ctx context.Context, limit int, offset int) ([]domain.DisposalRecord, error) {
	query := disposalSelect + ` ORDER BY d.created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query disposals: %w", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DisposalRecord, error) {
		record, err := scanDisposal(row)
		if err != nil {
			return domain.DisposalRecord{}, err
		}
		return *record, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect disposals: %w", err)
	}
	return records, nil
}

func (r *PgxDisposalRepository) SaveDisposal(ctx context.Context, record domain.DisposalRecord) error {
	query := `
		INSERT INTO disposal_records (disposal_id, asset_id, method, disposal_date, reason, proceeds,
			status, approved_by, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.DisposalID, record.AssetID, record.Method, record.DisposalDate, record.Reason,
		record.Proceeds, record.Status, record.ApprovedBy,
		record.CreatedAt, record.CreatedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save disposal %s: %w", record.DisposalID, err)
	}
	return nil
}

func (r *PgxDisposalRepository) UpdateDisposal(ctx context.Context, record domain.DisposalRecord) error {
	query := `
		UPDATE disposal_records SET method = $2, disposal_date = $3, reason = $4, proceeds = $5,
			approved_by = $6, last_updated_at = $7, last_updated_by = $8
		WHERE disposal_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		record.DisposalID, record.Method, record.DisposalDate, record.Reason, record.Proceeds,
		record.ApprovedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update disposal %s: %w", record.DisposalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDisposalRepository) UpdateStatus(ctx context.Context, recordID string, from, to domain.Status, updatedBy string) error {
	return updateStatusCAS(ctx, r.Pool, "disposal_records", "disposal_id", recordID, from, to, updatedBy)
}
