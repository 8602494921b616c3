package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, sender_id, title, message, type, priority,
			entity_type, entity_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		n.NotificationID, n.UserID, n.SenderID, n.Title, n.Message, n.Type, n.Priority,
		n.EntityType, n.EntityID, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", n.NotificationID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) FindNotificationsForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, user_id, sender_id, title, message, type, priority,
			entity_type, entity_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		var n domain.Notification
		err := row.Scan(
			&n.NotificationID,
			&n.UserID,
			&n.SenderID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.Priority,
			&n.EntityType,
			&n.EntityID,
			&n.IsRead,
			&n.CreatedAt,
		)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect notifications: %w", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	// The user_id guard keeps users from flagging each other's notifications.
	query := `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
