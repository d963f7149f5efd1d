package readstore

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/share"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteReadStore struct {
	db db.DBTX
}

func NewFavoriteReadStore(db db.DBTX) *FavoriteReadStore {
	return &FavoriteReadStore{db: db}
}

func (r *FavoriteReadStore) ListActorIDs(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := queryIDs(ctx, r.db, `SELECT actor_id FROM favorites WHERE client_id = $1 ORDER BY created_at DESC, id`, clientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list favorites", err)
	}
	return ids, nil
}

func (r *FavoriteReadStore) ListDetailed(ctx context.Context, clientID uuid.UUID) ([]*queries.PlaceView, error) {
	return collect(ctx, r.db, "failed to list favorite places", scanPlace, `
		SELECT `+placeColumns+`
		FROM favorites f JOIN actors a ON a.id = f.actor_id
		WHERE f.client_id = $1
		ORDER BY f.created_at DESC, f.id`, clientID)
}

type ShareReadStore struct {
	db db.DBTX
}

func NewShareReadStore(db db.DBTX) *ShareReadStore {
	return &ShareReadStore{db: db}
}

func (r *ShareReadStore) CountByChannel(ctx context.Context, actorID uuid.UUID) (map[share.Channel]int, error) {
	type channelCount struct {
		channel share.Channel
		n       int
	}
	rows, err := collect(ctx, r.db, "failed to summarize shares", func(row rowScanner) (channelCount, error) {
		var c channelCount
		err := row.Scan(&c.channel, &c.n)
		return c, err
	}, `SELECT channel, count(*) FROM shares WHERE actor_id = $1 GROUP BY channel`, actorID)
	if err != nil {
		return nil, err
	}
	out := make(map[share.Channel]int, len(rows))
	for _, c := range rows {
		out[c.channel] = c.n
	}
	return out, nil
}

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

const notificationViewSelect = `SELECT id, client_id, title, body, image, link, status, sent_at FROM notifications`

func (r *NotificationReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.NotificationView, error) {
	return collect(ctx, r.db, "failed to list notifications", scanNotificationView, notificationViewSelect+`
		ORDER BY sent_at DESC, id DESC
		LIMIT $1`, limit)
}

func (r *NotificationReadStore) ListKeyset(ctx context.Context, lastSentAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	return collect(ctx, r.db, "failed to list notifications", scanNotificationView, notificationViewSelect+`
		WHERE (sent_at, id) < ($1, $2)
		ORDER BY sent_at DESC, id DESC
		LIMIT $3`, lastSentAt, lastID, limit)
}

func scanNotificationView(row rowScanner) (*queries.NotificationView, error) {
	var v queries.NotificationView
	if err := row.Scan(&v.ID, &v.ClientID, &v.Title, &v.Body, &v.Image, &v.Link, &v.Status, &v.SentAt); err != nil {
		return nil, err
	}
	return &v, nil
}
