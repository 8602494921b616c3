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

type PgxLocationRepository struct {
	BaseRepository
}

func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)

const locationColumns = `location_id, name, address, region, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLocation(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	err := row.Scan(
		&l.LocationID,
		&l.Name,
		&l.Address,
		&l.Region,
		&l.IsActive,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`
	loc, err := scanLocation(r.Pool.QueryRow(ctx, query, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location %s: %w", locationID, err)
	}
	return loc, nil
}

// FindLocationByName matches on exact name. Location names are the join key
// for access control, so there is deliberately no normalization here.
func (r *PgxLocationRepository) FindLocationByName(ctx context.Context, name string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE name = $1;`
	loc, err := scanLocation(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location by name: %w", err)
	}
	return loc, nil
}

func (r *PgxLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Location, error) {
		loc, err := scanLocation(row)
		if err != nil {
			return domain.Location{}, err
		}
		return *loc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect locations: %w", err)
	}
	return locations, nil
}

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	query := `
		INSERT INTO locations (location_id, name, address, region, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		location.LocationID, location.Name, location.Address, location.Region, location.IsActive,
		location.CreatedAt, location.CreatedBy, location.LastUpdatedAt, location.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: location %q", apperrors.ErrDuplicate, location.Name)
		}
		return fmt.Errorf("failed to save location %s: %w", location.LocationID, err)
	}
	return nil
}

func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	// The name column never changes: renaming would orphan every exact-match
	// reference held by assets and user access lists.
	query := `
		UPDATE locations SET address = $2, region = $3, is_active = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE location_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		location.LocationID, location.Address, location.Region, location.IsActive,
		location.LastUpdatedAt, location.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update location %s: %w", location.LocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
