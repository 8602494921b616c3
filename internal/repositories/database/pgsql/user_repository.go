package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, username, password_hash, first_name, last_name, email, role, status,
	department, phone, permissions, asset_access, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

// scanUser maps one row onto a domain.User. The asset_access column carries
// legacy free-form text, so it goes through domain.ParseAssetAccess here and
// nowhere else.
func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var permissionsRaw []byte
	var assetAccessRaw string
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Role,
		&user.Status,
		&user.Department,
		&user.Phone,
		&permissionsRaw,
		&assetAccessRaw,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(permissionsRaw) > 0 {
		if err := json.Unmarshal(permissionsRaw, &user.Permissions); err != nil {
			return nil, fmt.Errorf("failed to decode permissions for user %s: %w", user.UserID, err)
		}
	}
	user.AssetAccess = domain.ParseAssetAccess(assetAccessRaw)
	return &user, nil
}

func encodeUserLists(user domain.User) (permissions []byte, assetAccess string, err error) {
	permissions, err = json.Marshal(user.Permissions)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode permissions: %w", err)
	}
	// New writes always store the normalized JSON array form; reads stay
	// tolerant of the legacy shapes.
	accessRaw, err := json.Marshal(user.AssetAccess)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode asset access: %w", err)
	}
	return permissions, string(accessRaw), nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by id %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND deleted_at IS NULL;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		user, err := scanUser(row)
		if err != nil {
			return domain.User{}, err
		}
		return *user, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect users: %w", err)
	}
	return users, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	permissions, assetAccess, err := encodeUserLists(user)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (user_id, username, password_hash, first_name, last_name, email, role, status,
			department, phone, permissions, asset_access, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = r.Pool.Exec(ctx, query,
		user.UserID, user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Email,
		user.Role, user.Status, user.Department, user.Phone, permissions, assetAccess,
		user.CreatedAt, user.CreatedBy, user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %q", apperrors.ErrDuplicate, user.Username)
		}
		return fmt.Errorf("failed to save user %s: %w", user.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	permissions, assetAccess, err := encodeUserLists(user)
	if err != nil {
		return err
	}

	query := `
		UPDATE users SET first_name = $2, last_name = $3, email = $4, role = $5, status = $6,
			department = $7, phone = $8, permissions = $9, asset_access = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		user.UserID, user.FirstName, user.LastName, user.Email, user.Role, user.Status,
		user.Department, user.Phone, permissions, assetAccess,
		user.LastUpdatedAt, user.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE users SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark user %s deleted: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
