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

type PgxTransferRepository struct {
	BaseRepository
}

func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferSelect = `
	SELECT t.transfer_id, t.asset_id, COALESCE(a.name, 'Unknown Asset'), COALESCE(a.location, ''),
		t.type, t.from_location, t.to_location, t.from_custodian, t.to_custodian,
		t.request_date, t.transfer_date, t.reason, t.estimated_cost, t.status, t.approved_by,
		t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
	FROM transfer_records t
	LEFT JOIN assets a ON a.asset_id = t.asset_id
`

func scanTransfer(row pgx.Row) (*domain.TransferRecord, error) {
	var t domain.TransferRecord
	err := row.Scan(
		&t.TransferID,
		&t.AssetID,
		&t.AssetName,
		&t.AssetLocation,
		&t.Type,
		&t.FromLocation,
		&t.ToLocation,
		&t.FromCustodian,
		&t.ToCustodian,
		&t.RequestDate,
		&t.TransferDate,
		&t.Reason,
		&t.EstimatedCost,
		&t.Status,
		&t.ApprovedBy,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.TransferRecord, error) {
	query := transferSelect + ` WHERE t.transfer_id = $1;`
	record, err := scanTransfer(r.Pool.QueryRow(ctx, query, transferID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer %s: %w", transferID, err)
	}
	return record, nil
}

func (r *PgxTransferRepository) FindTransfers(ctx context.Context, limit int, offset int) ([]domain.TransferRecord, error) {
	query := transferSelect + ` ORDER BY t.created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TransferRecord, error) {
		record, err := scanTransfer(row)
		if err != nil {
			return domain.TransferRecord{}, err
		}
		return *record, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect transfers: %w", err)
	}
	return records, nil
}

func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, record domain.TransferRecord) error {
	query := `
		INSERT INTO transfer_records (transfer_id, asset_id, type, from_location, to_location,
			from_custodian, to_custodian, request_date, transfer_date, reason, estimated_cost,
			status, approved_by, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.TransferID, record.AssetID, record.Type, record.FromLocation, record.ToLocation,
		record.FromCustodian, record.ToCustodian, record.RequestDate, record.TransferDate,
		record.Reason, record.EstimatedCost, record.Status, record.ApprovedBy,
		record.CreatedAt, record.CreatedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transfer %s: %w", record.TransferID, err)
	}
	return nil
}

func (r *PgxTransferRepository) UpdateTransfer(ctx context.Context, record domain.TransferRecord) error {
	query := `
		UPDATE transfer_records SET type = $2, to_location = $3, to_custodian = $4, transfer_date = $5,
			reason = $6, estimated_cost = $7, approved_by = $8, last_updated_at = $9, last_updated_by = $10
		WHERE transfer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		record.TransferID, record.Type, record.ToLocation, record.ToCustodian, record.TransferDate,
		record.Reason, record.EstimatedCost, record.ApprovedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer %s: %w", record.TransferID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransferRepository) UpdateStatus(ctx context.Context, recordID string, from, to domain.Status, updatedBy string) error {
	return updateStatusCAS(ctx, r.Pool, "transfer_records", "transfer_id", recordID, from, to, updatedBy)
}
