package repository

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const CouponColumns = `id, batch_id, sequence, state, scan_count, activated_at, expires_at,
	activated_by, client_id, last_scan_at, created_at, updated_at`

var couponCopyColumns = []string{"id", "batch_id", "sequence", "state", "scan_count", "activated_at", "expires_at", "created_at", "updated_at"}

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO coupons (id, batch_id, sequence, state, scan_count, activated_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID(), c.BatchID(), c.Sequence(), c.State().String(), c.ScanCount(),
		c.ActivatedAt(), c.ExpiresAt(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// CopyBatch bulk-inserts a generated series with COPY.
func (r *CouponRepository) CopyBatch(ctx context.Context, tx db.DBTX, cs []*coupon.Coupon) (int64, error) {
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"coupons"}, couponCopyColumns,
		pgx.CopyFromSlice(len(cs), func(i int) ([]any, error) {
			c := cs[i]
			return []any{
				c.ID(), c.BatchID(), c.Sequence(), c.State().String(), c.ScanCount(),
				c.ActivatedAt(), c.ExpiresAt(), c.CreatedAt(), c.UpdatedAt(),
			}, nil
		}),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to copy coupon series", err)
	}
	return n, nil
}

func (r *CouponRepository) CountByBatch(ctx context.Context, tx db.DBTX, batchID uuid.UUID) (int, error) {
	var n int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM coupons WHERE batch_id = $1`, batchID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count coupons in batch", err)
	}
	return n, nil
}

func (r *CouponRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*coupon.Coupon, error) {
	row := tx.QueryRow(ctx, `SELECT `+CouponColumns+` FROM coupons WHERE id = $1 FOR UPDATE`, id)
	c, err := ScanCoupon(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock coupon", err)
	}
	return c, nil
}

func (r *CouponRepository) LockBySequence(ctx context.Context, tx db.DBTX, batchID uuid.UUID, sequence int) (*coupon.Coupon, error) {
	row := tx.QueryRow(ctx, `SELECT `+CouponColumns+` FROM coupons WHERE batch_id = $1 AND sequence = $2 FOR UPDATE`, batchID, sequence)
	c, err := ScanCoupon(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock coupon by sequence", err)
	}
	return c, nil
}

// Save persists lifecycle and ownership fields. Counters are only touched by the increment methods.
func (r *CouponRepository) Save(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error {
	return execOne(ctx, tx, "coupon not found", "failed to save coupon", `
		UPDATE coupons
		SET state = $2, activated_at = $3, expires_at = $4, activated_by = $5, client_id = $6, updated_at = $7
		WHERE id = $1`,
		c.ID(), c.State().String(), c.ActivatedAt(), c.ExpiresAt(), c.ActivatedBy(), c.ClientID(), c.UpdatedAt(),
	)
}

func (r *CouponRepository) IncrementScan(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) error {
	return execOne(ctx, tx, "coupon not found", "failed to increment scan count", `
		UPDATE coupons SET scan_count = scan_count + 1, last_scan_at = $2 WHERE id = $1`,
		id, now,
	)
}

func (r *CouponRepository) IncrementScanWithinCeiling(ctx context.Context, tx db.DBTX, id uuid.UUID, ceiling int, now time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
		UPDATE coupons SET scan_count = scan_count + 1, last_scan_at = $3
		WHERE id = $1 AND scan_count < $2`,
		id, ceiling, now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment scan count", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CouponRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "coupon not found", "failed to delete coupon", `DELETE FROM coupons WHERE id = $1`, id)
}

// ScanCoupon maps a row selected with CouponColumns.
func ScanCoupon(row rowScanner) (*coupon.Coupon, error) {
	var (
		id, batchID            uuid.UUID
		sequence, scanCount    int
		state                  string
		activatedAt, expiresAt *time.Time
		activatedBy, clientID  *uuid.UUID
		lastScanAt             *time.Time
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&id, &batchID, &sequence, &state, &scanCount, &activatedAt, &expiresAt,
		&activatedBy, &clientID, &lastScanAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return coupon.Reconstruct(id, batchID, sequence, coupon.State(state), scanCount,
		activatedAt, expiresAt, activatedBy, clientID, lastScanAt, createdAt, updatedAt), nil
}
