package readstore

import (
	"context"
	"time"

	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/pkg/pgconv"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

const redemptionViewSelect = `
	SELECT rd.id, rd.coupon_id, c.sequence, c.batch_id, b.name, rd.actor_id, a.name, rd.group_id, rd.scanned_at
	FROM redemptions rd
	JOIN coupons c ON c.id = rd.coupon_id
	JOIN batches b ON b.id = c.batch_id
	JOIN actors a ON a.id = rd.actor_id`

type RedemptionReadStore struct {
	db db.DBTX
}

func NewRedemptionReadStore(db db.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{db: db}
}

func (r *RedemptionReadStore) ListByRange(ctx context.Context, from, until time.Time) ([]*queries.RedemptionView, error) {
	return collect(ctx, r.db, "failed to list redemptions by range", scanRedemptionView, redemptionViewSelect+`
		WHERE rd.scanned_at >= $1 AND rd.scanned_at < $2
		ORDER BY rd.scanned_at DESC, rd.id`, from, until)
}

func (r *RedemptionReadStore) ListByActors(ctx context.Context, actorIDs []uuid.UUID, w queries.Window) ([]*queries.RedemptionView, error) {
	return collect(ctx, r.db, "failed to list redemptions by actor", scanRedemptionView, redemptionViewSelect+`
		WHERE rd.actor_id = ANY($1)
			AND ($2::timestamptz IS NULL OR rd.scanned_at >= $2)
			AND ($3::timestamptz IS NULL OR rd.scanned_at < $3)
		ORDER BY rd.scanned_at DESC, rd.id`,
		pgconv.UUIDArray(actorIDs), pgconv.TimePtrToPgtype(w.From), pgconv.TimePtrToPgtype(w.Until))
}

func (r *RedemptionReadStore) CountByCoupon(ctx context.Context, couponID uuid.UUID) (int, error) {
	return count(ctx, r.db, "failed to count coupon redemptions",
		`SELECT count(*) FROM redemptions WHERE coupon_id = $1`, couponID)
}

func scanRedemptionView(row rowScanner) (*queries.RedemptionView, error) {
	var v queries.RedemptionView
	if err := row.Scan(&v.ID, &v.CouponID, &v.Sequence, &v.BatchID, &v.BatchName,
		&v.ActorID, &v.ActorName, &v.GroupID, &v.ScannedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
