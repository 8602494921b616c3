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

type PgxAuctionRepository struct {
	BaseRepository
}

func newPgxAuctionRepository(pool *pgxpool.Pool) portsrepo.AuctionRepositoryFacade {
	return &PgxAuctionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuctionRepositoryFacade = (*PgxAuctionRepository)(nil)

// COALESCE keeps completed auctions readable after their asset row is gone.
const auctionSelect = `
	SELECT au.auction_id, au.asset_id, COALESCE(a.name, 'Unknown Asset'), COALESCE(a.location, ''),
		au.type, au.title, au.start_date, au.end_date, au.starting_bid, au.reserve_price,
		au.winning_bid, au.winner_name, au.winner_contact, au.total_bids, au.description, au.status,
		au.created_at, au.created_by, au.last_updated_at, au.last_updated_by
	FROM auction_records au
	LEFT JOIN assets a ON a.asset_id = au.asset_id
`

func scanAuction(row pgx.Row) (*domain.AuctionRecord, error) {
	var a domain.AuctionRecord
	err := row.Scan(
		&a.AuctionID,
		&a.AssetID,
		&a.AssetName,
		&a.AssetLocation,
		&a.Type,
		&a.Title,
		&a.StartDate,
		&a.EndDate,
		&a.StartingBid,
		&a.ReservePrice,
		&a.WinningBid,
		&a.WinnerName,
		&a.WinnerContact,
		&a.TotalBids,
		&a.Description,
		&a.Status,
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

func (r *PgxAuctionRepository) FindAuctionByID(ctx context.Context, auctionID string) (*domain.AuctionRecord, error) {
	query := auctionSelect + ` WHERE au.auction_id = $1;`
	record, err := scanAuction(r.Pool.QueryRow(ctx, query, auctionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find auction %s: %w", auctionID, err)
	}
	return record, nil
}

func (r *PgxAuctionRepository) FindAuctions(ctx context.Context, limit int, offset int) ([]domain.AuctionRecord, error) {
	query := auctionSelect + ` ORDER BY au.created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query auctions: %w", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuctionRecord, error) {
		record, err := scanAuction(row)
		if err != nil {
			return domain.AuctionRecord{}, err
		}
		return *record, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect auctions: %w", err)
	}
	return records, nil
}

func (r *PgxAuctionRepository) SaveAuction(ctx context.Context, record domain.AuctionRecord) error {
	query := `
		INSERT INTO auction_records (auction_id, asset_id, type, title, start_date, end_date,
			starting_bid, reserve_price, winning_bid, winner_name, winner_contact, total_bids,
			description, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		record.AuctionID, record.AssetID, record.Type, record.Title, record.StartDate, record.EndDate,
		record.StartingBid, record.ReservePrice, record.WinningBid, record.WinnerName, record.WinnerContact,
		record.TotalBids, record.Description, record.Status,
		record.CreatedAt, record.CreatedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save auction %s: %w", record.AuctionID, err)
	}
	return nil
}

func (r *PgxAuctionRepository) UpdateAuction(ctx context.Context, record domain.AuctionRecord) error {
	query := `
		UPDATE auction_records SET type = $2, title = $3, start_date = $4, end_date = $5,
			starting_bid = $6, reserve_price = $7, winning_bid = $8, winner_name = $9,
			winner_contact = $10, total_bids = $11, description = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE auction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		record.AuctionID, record.Type, record.Title, record.StartDate, record.EndDate,
		record.StartingBid, record.ReservePrice, record.WinningBid, record.WinnerName,
		record.WinnerContact, record.TotalBids, record.Description,
		record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update auction %s: %w", record.AuctionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAuctionRepository) UpdateStatus(ctx context.Context, recordID string, from, to domain.Status, updatedBy string) error {
	return updateStatusCAS(ctx, r.Pool, "auction_records", "auction_id", recordID, from, to, updatedBy)
}
