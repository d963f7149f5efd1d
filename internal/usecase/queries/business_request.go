package queries

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/businessrequest"
	"cuponera-backend/internal/infra"

	"github.com/google/uuid"
)

type BusinessRequestView struct {
	ID        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	RUC       string    `json:"ruc"`
	Contact   string    `json:"contact"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Message   string    `json:"message"`
	Origin    string    `json:"origin"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RequestPageKey positions a keyset page; nil starts from the newest request.
type RequestPageKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type BusinessRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BusinessRequestView, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	// List orders by created_at DESC, id DESC. An empty status lists every request.
	List(ctx context.Context, status string, after *RequestPageKey, limit int32) ([]*BusinessRequestView, error)
}

type BusinessRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BusinessRequestView, error)
	// EmailAvailable reports whether a new request may use the email.
	EmailAvailable(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*BusinessRequestView, *Cursor, error)
}

type businessRequestQueriesImpl struct {
	store BusinessRequestReadStore
}

func NewBusinessRequestQueries(store BusinessRequestReadStore) BusinessRequestQueries {
	return &businessRequestQueriesImpl{store: store}
}

func (q *businessRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BusinessRequestView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, businessrequest.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *businessRequestQueriesImpl) EmailAvailable(ctx context.Context, email string) (bool, error) {
	normalized, err := actor.NormalizeEmail(email)
	if err != nil {
		return false, err
	}
	taken, err := q.store.EmailTaken(ctx, normalized)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (q *businessRequestQueriesImpl) List(ctx context.Context, status string, cursor *Cursor, limit int) ([]*BusinessRequestView, *Cursor, error) {
	if status != "" && !businessrequest.Status(status).IsValid() {
		return nil, nil, businessrequest.ErrInvalidStatus
	}
	limit = ValidateLimit(limit)
	var after *RequestPageKey
	if cursor != nil && cursor.After != "" {
		createdAt, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		after = &RequestPageKey{CreatedAt: createdAt, ID: id}
	}
	rows, err := q.store.List(ctx, status, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
