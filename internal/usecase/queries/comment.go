package queries

import (
	"context"
	"time"

	"cuponera-backend/internal/infra"

	"github.com/google/uuid"
)

const (
	DefaultCommentPageSize = 10
	MaxCommentPageSize     = 100
)

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	ActorID    uuid.UUID `json:"actor_id"`
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CommentPage struct {
	Items      []*CommentView `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type CommentEligibility struct {
	Eligible   bool         `json:"eligible"`
	HasComment bool         `json:"has_comment"`
	Comment    *CommentView `json:"comment"`
}

type CommentReadStore interface {
	ListByActor(ctx context.Context, actorID uuid.UUID, offset, limit int) ([]*CommentView, int, error)
	Recent(ctx context.Context, actorID uuid.UUID, limit int) ([]*CommentView, error)
	FindByPair(ctx context.Context, actorID, clientID uuid.UUID) (*CommentView, error)
	ClientRedeemedWith(ctx context.Context, clientID, actorID uuid.UUID) (bool, error)
}

type CommentQueries interface {
	ListByActor(ctx context.Context, actorID uuid.UUID, page, limit int) (*CommentPage, error)
	Eligibility(ctx context.Context, actorID, clientID uuid.UUID) (*CommentEligibility, error)
	// Mine returns nil without error when the client has not commented yet.
	Mine(ctx context.Context, actorID, clientID uuid.UUID) (*CommentView, error)
}

type commentQueriesImpl struct {
	store CommentReadStore
}

func NewCommentQueries(store CommentReadStore) CommentQueries {
	return &commentQueriesImpl{store: store}
}

func (q *commentQueriesImpl) ListByActor(ctx context.Context, actorID uuid.UUID, page, limit int) (*CommentPage, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := q.store.ListByActor(ctx, actorID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return &CommentPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func (q *commentQueriesImpl) Eligibility(ctx context.Context, actorID, clientID uuid.UUID) (*CommentEligibility, error) {
	mine, err := q.Mine(ctx, actorID, clientID)
	if err != nil {
		return nil, err
	}
	eligible, err := q.store.ClientRedeemedWith(ctx, clientID, actorID)
	if err != nil {
		return nil, err
	}
	return &CommentEligibility{Eligible: eligible, HasComment: mine != nil, Comment: mine}, nil
}

func (q *commentQueriesImpl) Mine(ctx context.Context, actorID, clientID uuid.UUID) (*CommentView, error) {
	c, err := q.store.FindByPair(ctx, actorID, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultCommentPageSize
	}
	if limit > MaxCommentPageSize {
		limit = MaxCommentPageSize
	}
	return page, limit
}
