package readstore

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/pkg/pgconv"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

const couponViewColumns = `c.id, c.batch_id, b.name, c.sequence, c.state, c.scan_count, c.activated_at, c.expires_at,
	c.activated_by, c.client_id, c.last_scan_at, c.created_at, c.updated_at`

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	v, err := scanCouponView(r.db.QueryRow(ctx, `
		SELECT `+couponViewColumns+`
		FROM coupons c JOIN batches b ON b.id = c.batch_id
		WHERE c.id = $1`, id))
	if err != nil {
		return nil, wrapFind("coupon", err)
	}
	return v, nil
}

func (r *CouponReadStore) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*queries.CouponView, error) {
	return collect(ctx, r.db, "failed to list coupons by batch", scanCouponView, `
		SELECT `+couponViewColumns+`
		FROM coupons c JOIN batches b ON b.id = c.batch_id
		WHERE c.batch_id = $1
		ORDER BY c.sequence`, batchID)
}

func (r *CouponReadStore) ListByActivationRange(ctx context.Context, from, until time.Time) ([]*queries.CouponView, error) {
	return collect(ctx, r.db, "failed to list coupons by activation", scanCouponView, `
		SELECT `+couponViewColumns+`
		FROM coupons c JOIN batches b ON b.id = c.batch_id
		WHERE c.activated_at >= $1 AND c.activated_at < $2
		ORDER BY c.activated_at, c.id`, from, until)
}

func (r *CouponReadStore) ListByClient(ctx context.Context, clientID uuid.UUID, onlyActive bool) ([]*queries.CuponeraItem, error) {
	return collect(ctx, r.db, "failed to list client coupons", scanCuponeraItem, `
		SELECT c.id, b.name, b.description, COALESCE(c.activated_at, c.created_at), c.expires_at,
			c.scan_count, c.sequence, c.state, c.last_scan_at
		FROM coupons c JOIN batches b ON b.id = c.batch_id
		WHERE c.client_id = $1 AND (NOT $2 OR c.state = $3)
		ORDER BY c.created_at DESC, c.id`, clientID, onlyActive, coupon.StateActive.String())
}

func (r *CouponReadStore) CandidatePlaces(ctx context.Context, cityIDs []uuid.UUID) ([]*queries.PlaceView, error) {
	return collect(ctx, r.db, "failed to list candidate places", scanPlace, `
		SELECT `+placeColumns+`
		FROM actors a
		WHERE a.role = $1 AND a.active AND a.promo_title <> ''
			AND (cardinality($2::uuid[]) = 0 OR a.city_ids && $2::uuid[])
		ORDER BY a.name, a.id`, actor.RoleLocal.String(), pgconv.UUIDArray(cityIDs))
}

func (r *CouponReadStore) GroupScanStats(ctx context.Context, couponID uuid.UUID) ([]*queries.GroupScanStat, error) {
	return collect(ctx, r.db, "failed to aggregate coupon scans", func(row rowScanner) (*queries.GroupScanStat, error) {
		var s queries.GroupScanStat
		err := row.Scan(&s.GroupID, &s.Count, &s.LastScanAt)
		return &s, err
	}, `
		SELECT group_id, count(*), max(scanned_at)
		FROM redemptions
		WHERE coupon_id = $1
		GROUP BY group_id`, couponID)
}

func scanCouponView(row rowScanner) (*queries.CouponView, error) {
	var v queries.CouponView
	if err := row.Scan(&v.ID, &v.BatchID, &v.BatchName, &v.Sequence, &v.State, &v.ScanCount,
		&v.ActivatedAt, &v.ExpiresAt, &v.ActivatedBy, &v.ClientID, &v.LastScanAt,
		&v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}

func scanCuponeraItem(row rowScanner) (*queries.CuponeraItem, error) {
	var it queries.CuponeraItem
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.IssuedAt, &it.ExpiresAt,
		&it.TotalScans, &it.Sequence, &it.State, &it.LastScan); err != nil {
		return nil, err
	}
	it.Code = it.ID.String()
	it.QRData = it.Code
	return &it, nil
}
