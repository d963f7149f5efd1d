package queries

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/localtime"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBatchHasNoCoupons = errs.Kind(errs.ErrNotFound, "no coupons found for batch")

type CouponView struct {
	ID          uuid.UUID  `json:"id"`
	BatchID     uuid.UUID  `json:"batch_id"`
	BatchName   string     `json:"batch_name"`
	Sequence    int        `json:"sequence"`
	State       string     `json:"state"`
	ScanCount   int        `json:"scan_count"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ActivatedBy *uuid.UUID `json:"activated_by,omitempty"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	LastScanAt  *time.Time `json:"last_scan_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CuponeraItem is a coupon as shown in the client's wallet.
type CuponeraItem struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Code        string     `json:"code"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	QRData      string     `json:"qr_data"`
	TotalScans  int        `json:"total_scans"`
	Sequence    int        `json:"sequence"`
	State       string     `json:"state"`
	LastScan    *time.Time `json:"last_scan"`
}

// GroupScanStat aggregates the redemptions of one coupon keyed by group root.
type GroupScanStat struct {
	GroupID    uuid.UUID
	Count      int
	LastScanAt time.Time
}

type ScannedPlace struct {
	PlaceView
	Count      int       `json:"count"`
	LastScanAt time.Time `json:"last_scan_at"`
}

type CouponDetail struct {
	Coupon             CouponView     `json:"coupon"`
	Batch              BatchView      `json:"batch"`
	CandidatesTotal    int            `json:"candidates_total"`
	ScannedPlaces      []ScannedPlace `json:"scanned_places"`
	UnscannedPlaces    []PlaceView    `json:"unscanned_places"`
	TotalScannedPlaces int            `json:"total_scanned_places"`
	TotalScans         int            `json:"total_scans"`
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*CouponView, error)
	// ListByActivationRange returns coupons with from <= activated_at < until.
	ListByActivationRange(ctx context.Context, from, until time.Time) ([]*CouponView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID, onlyActive bool) ([]*CuponeraItem, error)
	// CandidatePlaces lists active LOCAL actors with a promotion whose cities overlap cityIDs.
	// An empty cityIDs matches every city.
	CandidatePlaces(ctx context.Context, cityIDs []uuid.UUID) ([]*PlaceView, error)
	GroupScanStats(ctx context.Context, couponID uuid.UUID) ([]*GroupScanStat, error)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*CouponView, error)
	ListByActivationRange(ctx context.Context, start, end time.Time) ([]*CouponView, error)
	ListClientCuponeras(ctx context.Context, clientID uuid.UUID, onlyActive bool) ([]*CuponeraItem, error)
	Detail(ctx context.Context, couponID uuid.UUID) (*CouponDetail, error)
}

type couponQueriesImpl struct {
	store   CouponReadStore
	batches BatchReadStore
	cache   shared.CouponDetailCache
}

func NewCouponQueries(store CouponReadStore, batches BatchReadStore, cache shared.CouponDetailCache) CouponQueries {
	return &couponQueriesImpl{store: store, batches: batches, cache: cache}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	c, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *couponQueriesImpl) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]*CouponView, error) {
	rows, err := q.store.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrBatchHasNoCoupons
	}
	return rows, nil
}

func (q *couponQueriesImpl) ListByActivationRange(ctx context.Context, start, end time.Time) ([]*CouponView, error) {
	from, until, err := localtime.DayRange(start, end)
	if err != nil {
		return nil, err
	}
	return q.store.ListByActivationRange(ctx, from, until)
}

func (q *couponQueriesImpl) ListClientCuponeras(ctx context.Context, clientID uuid.UUID, onlyActive bool) ([]*CuponeraItem, error) {
	return q.store.ListByClient(ctx, clientID, onlyActive)
}

func (q *couponQueriesImpl) Detail(ctx context.Context, couponID uuid.UUID) (*CouponDetail, error) {
	raw, err := q.cache.GetOrLoad(ctx, couponID, func(ctx context.Context) ([]byte, error) {
		d, err := q.buildDetail(ctx, couponID)
		if err != nil {
			return nil, err
		}
		return json.Marshal(d)
	})
	if err != nil {
		return nil, err
	}
	var d CouponDetail
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, errs.Wrap(err, "failed to decode coupon detail")
	}
	return &d, nil
}

func (q *couponQueriesImpl) buildDetail(ctx context.Context, couponID uuid.UUID) (*CouponDetail, error) {
	c, err := q.GetByID(ctx, couponID)
	if err != nil {
		return nil, err
	}
	b, err := q.batches.FindByID(ctx, c.BatchID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, batch.ErrNotFound
		}
		return nil, err
	}
	places, err := q.store.CandidatePlaces(ctx, b.CityIDs())
	if err != nil {
		return nil, err
	}
	stats, err := q.store.GroupScanStats(ctx, couponID)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[uuid.UUID]*GroupScanStat, len(stats))
	for _, s := range stats {
		byGroup[s.GroupID] = s
	}

	d := &CouponDetail{
		Coupon:          *c,
		Batch:           *b,
		CandidatesTotal: len(places),
		ScannedPlaces:   []ScannedPlace{},
		UnscannedPlaces: []PlaceView{},
	}
	for _, p := range places {
		s, ok := byGroup[p.ActorID]
		if !ok {
			d.UnscannedPlaces = append(d.UnscannedPlaces, *p)
			continue
		}
		d.ScannedPlaces = append(d.ScannedPlaces, ScannedPlace{PlaceView: *p, Count: s.Count, LastScanAt: s.LastScanAt})
		d.TotalScans += s.Count
	}
	slices.SortStableFunc(d.ScannedPlaces, func(a, b ScannedPlace) int {
		return b.LastScanAt.Compare(a.LastScanAt)
	})
	d.TotalScannedPlaces = len(d.ScannedPlaces)
	return d, nil
}
