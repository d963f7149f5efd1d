package queries

import (
	"context"
	"time"

	"cuponera-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.Kind(errs.ErrInvalidArgument, "invalid cursor")

type NotificationView struct {
	ID       uuid.UUID  `json:"id"`
	ClientID *uuid.UUID `json:"client_id,omitempty"`
	Title    string     `json:"title"`
	Body     string     `json:"body"`
	Image    string     `json:"image,omitempty"`
	Link     string     `json:"link,omitempty"`
	Status   string     `json:"status"`
	SentAt   time.Time  `json:"sent_at"`
}

type NotificationReadStore interface {
	ListFirstPage(ctx context.Context, limit int32) ([]*NotificationView, error)
	ListKeyset(ctx context.Context, lastSentAt time.Time, lastID uuid.UUID, limit int32) ([]*NotificationView, error)
}

type NotificationQueries interface {
	List(ctx context.Context, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*NotificationView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, int32(limit+1))
	} else {
		lastSentAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, lastSentAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.SentAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
