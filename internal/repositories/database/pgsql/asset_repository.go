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
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
)

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetColumns = `asset_id, name, category, serial_number, location, department, custodian, status,
	purchase_date, purchase_cost, current_value, description, created_at, created_by, last_updated_at, last_updated_by`

func scanAsset(row pgx.Row) (*domain.Asset, error) {
	var a domain.Asset
	err := row.Scan(
		&a.AssetID,
		&a.Name,
		&a.Category,
		&a.SerialNumber,
		&a.Location,
		&a.Department,
		&a.Custodian,
		&a.Status,
		&a.PurchaseDate,
		&a.PurchaseCost,
		&a.CurrentValue,
		&a.Description,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`
	asset, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	return asset, nil
}

func (r *PgxAssetRepository) FindAssets(ctx context.Context, limit int, offset int) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Asset, error) {
		asset, err := scanAsset(row)
		if err != nil {
			return domain.Asset{}, err
		}
		return *asset, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect assets: %w", err)
	}
	return assets, nil
}

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		INSERT INTO assets (asset_id, name, category, serial_number, location, department, custodian, status,
			purchase_date, purchase_cost, current_value, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		asset.AssetID, asset.Name, asset.Category, asset.SerialNumber, asset.Location,
		asset.Department, asset.Custodian, asset.Status, asset.PurchaseDate,
		asset.PurchaseCost, asset.CurrentValue, asset.Description,
		asset.CreatedAt, asset.CreatedBy, asset.LastUpdatedAt, asset.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: serial number %q", apperrors.ErrDuplicate, asset.SerialNumber)
		}
		return fmt.Errorf("failed to save asset %s: %w", asset.AssetID, err)
	}
	return nil
}

func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		UPDATE assets SET name = $2, category = $3, serial_number = $4, department = $5, custodian = $6,
			status = $7, purchase_date = $8, purchase_cost = $9, current_value = $10, description = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE asset_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		asset.AssetID, asset.Name, asset.Category, asset.SerialNumber, asset.Department,
		asset.Custodian, asset.Status, asset.PurchaseDate, asset.PurchaseCost,
		asset.CurrentValue, asset.Description, asset.LastUpdatedAt, asset.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAsset permanently removes an asset row. Completed auctions and
// disposals delete through here; there is no soft-delete for assets.
func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAssetRepository) UpdateAssetLocation(ctx context.Context, assetID string, location string, updatedBy string) error {
	query := `
		UPDATE assets SET location = $2, last_updated_at = $3, last_updated_by = $4
		WHERE asset_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, assetID, location, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to relocate asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
