package queries

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/pkg/localtime"

	"github.com/google/uuid"
)

type RedemptionView struct {
	ID        uuid.UUID `json:"id"`
	CouponID  uuid.UUID `json:"coupon_id"`
	Sequence  int       `json:"sequence"`
	BatchID   uuid.UUID `json:"batch_id"`
	BatchName string    `json:"batch_name"`
	ActorID   uuid.UUID `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	GroupID   uuid.UUID `json:"group_id"`
	ScannedAt time.Time `json:"scanned_at"`
}

type RedemptionReadStore interface {
	// ListByRange returns scans with from <= scanned_at < until.
	ListByRange(ctx context.Context, from, until time.Time) ([]*RedemptionView, error)
	// ListByActors filters by scanning actor within w.
	ListByActors(ctx context.Context, actorIDs []uuid.UUID, w Window) ([]*RedemptionView, error)
	CountByCoupon(ctx context.Context, couponID uuid.UUID) (int, error)
}

type RedemptionQueries interface {
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*RedemptionView, error)
	ListByGroup(ctx context.Context, actorID uuid.UUID, r DateRange) ([]*RedemptionView, error)
	ListByActor(ctx context.Context, actorID uuid.UUID) ([]*RedemptionView, error)
	CountByCoupon(ctx context.Context, couponID uuid.UUID) (int, error)
}

type redemptionQueriesImpl struct {
	store RedemptionReadStore
	dir   actor.Directory
}

func NewRedemptionQueries(store RedemptionReadStore, dir actor.Directory) RedemptionQueries {
	return &redemptionQueriesImpl{store: store, dir: dir}
}

func (q *redemptionQueriesImpl) ListByDateRange(ctx context.Context, start, end time.Time) ([]*RedemptionView, error) {
	from, until, err := localtime.DayRange(start, end)
	if err != nil {
		return nil, err
	}
	return q.store.ListByRange(ctx, from, until)
}

func (q *redemptionQueriesImpl) ListByGroup(ctx context.Context, actorID uuid.UUID, r DateRange) ([]*RedemptionView, error) {
	g, err := actor.ResolveGroup(ctx, q.dir, actorID)
	if err != nil {
		return nil, err
	}
	w, err := dayWindow(r)
	if err != nil {
		return nil, err
	}
	return q.store.ListByActors(ctx, g.Members, w)
}

func (q *redemptionQueriesImpl) ListByActor(ctx context.Context, actorID uuid.UUID) ([]*RedemptionView, error) {
	return q.store.ListByActors(ctx, []uuid.UUID{actorID}, Window{})
}

func (q *redemptionQueriesImpl) CountByCoupon(ctx context.Context, couponID uuid.UUID) (int, error) {
	return q.store.CountByCoupon(ctx, couponID)
}

// dayWindow widens the given days to a half-open window of whole local days.
func dayWindow(r DateRange) (Window, error) {
	var w Window
	if r.From != nil {
		from := localtime.StartOfDay(*r.From)
		w.From = &from
	}
	if r.To != nil {
		until := localtime.NextDayStart(*r.To)
		w.Until = &until
	}
	if w.From != nil && w.Until != nil && !w.From.Before(*w.Until) {
		return Window{}, localtime.ErrInvalidRange
	}
	return w, nil
}
