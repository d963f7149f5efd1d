package repository

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/notification"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"

	"github.com/google/uuid"
)

const NotificationColumns = `id, client_id, title, body, image, link, status, sent_at`

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notifications (id, client_id, title, body, image, link, status, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.ClientID, n.Title, n.Body, n.Image, n.Link, string(n.Status), n.SentAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status notification.Status) error {
	return execOne(ctx, tx, "notification not found", "failed to update notification status",
		`UPDATE notifications SET status = $2 WHERE id = $1`, id, string(status))
}

func ScanNotification(row rowScanner) (*notification.Notification, error) {
	var (
		n      notification.Notification
		status string
		sentAt time.Time
	)
	if err := row.Scan(&n.ID, &n.ClientID, &n.Title, &n.Body, &n.Image, &n.Link, &status, &sentAt); err != nil {
		return nil, err
	}
	n.Status = notification.Status(status)
	n.SentAt = sentAt
	return &n, nil
}
