package commands

import (
	"context"
	"log/slog"
	"time"

	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var couponErrs = repoErrs{
	notFound:  coupon.ErrNotFound,
	duplicate: coupon.ErrDuplicateSequence,
	byConstraint: map[string]error{
		"coupons_batch_id_fkey":      batch.ErrNotFound,
		"coupons_client_id_fkey":     client.ErrNotFound,
		"redemptions_coupon_id_fkey": coupon.ErrHasRedemptions,
	},
}

type CreateCouponInput struct {
	BatchID  uuid.UUID
	Sequence *int
	Window   coupon.Window
}

type GenerateBatchInput struct {
	BatchID     uuid.UUID
	Count       int
	ActivatedAt *time.Time
	ExpiresAt   *time.Time
}

type GenerateBatchResult struct {
	Created       int64
	FirstSequence int
	LastSequence  int
}

type CouponCommands interface {
	Create(ctx context.Context, in CreateCouponInput) (uuid.UUID, error)
	GenerateBatch(ctx context.Context, in GenerateBatchInput) (*GenerateBatchResult, error)
	ActivateBySequence(ctx context.Context, batchID uuid.UUID, sequence int, actorID uuid.UUID) (uuid.UUID, error)
	DeactivateBySequence(ctx context.Context, batchID uuid.UUID, sequence int) (uuid.UUID, error)
	IncrementScan(ctx context.Context, couponID uuid.UUID) error
	AssignToClient(ctx context.Context, couponID, clientID uuid.UUID, override bool) error
	Delete(ctx context.Context, couponID uuid.UUID) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.CouponDetailCache
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, cache shared.CouponDetailCache, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *couponCommandsImpl) Create(ctx context.Context, in CreateCouponInput) (uuid.UUID, error) {
	if err := in.Window.Validate(); err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Locking the batch serializes sequence allocation.
		if _, err := tx.Batches().LockByID(ctx, tx.DB(), in.BatchID); err != nil {
			return translate(err, repoErrs{notFound: batch.ErrNotFound})
		}
		seq := 0
		if in.Sequence != nil {
			seq = *in.Sequence
		} else {
			n, err := tx.Coupons().CountByBatch(ctx, tx.DB(), in.BatchID)
			if err != nil {
				return err
			}
			seq = n + 1
		}
		c, err := coupon.NewCoupon(in.BatchID, seq, in.Window, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Coupons().Create(ctx, tx.DB(), c); err != nil {
			return translate(err, couponErrs)
		}
		id = c.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *couponCommandsImpl) GenerateBatch(ctx context.Context, in GenerateBatchInput) (*GenerateBatchResult, error) {
	window := coupon.Window{ActivatedAt: in.ActivatedAt, ExpiresAt: in.ExpiresAt}
	if err := coupon.ValidateSeriesSize(in.Count); err != nil {
		return nil, err
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	var res GenerateBatchResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Batches().LockByID(ctx, tx.DB(), in.BatchID); err != nil {
			return translate(err, repoErrs{notFound: batch.ErrNotFound})
		}
		existing, err := tx.Coupons().CountByBatch(ctx, tx.DB(), in.BatchID)
		if err != nil {
			return err
		}
		series, err := coupon.NewSeries(in.BatchID, existing, in.Count, window, uc.clock.Now())
		if err != nil {
			return err
		}
		n, err := tx.Coupons().CopyBatch(ctx, tx.DB(), series)
		if err != nil {
			return translate(err, couponErrs)
		}
		res = GenerateBatchResult{Created: n, FirstSequence: existing + 1, LastSequence: existing + in.Count}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("coupon series generated", "batch_id", in.BatchID, "count", res.Created)
	return &res, nil
}

func (uc *couponCommandsImpl) ActivateBySequence(ctx context.Context, batchID uuid.UUID, sequence int, actorID uuid.UUID) (uuid.UUID, error) {
	return uc.updateBySequence(ctx, batchID, sequence, func(c *coupon.Coupon, now time.Time) error {
		return c.Activate(actorID, now)
	})
}

func (uc *couponCommandsImpl) DeactivateBySequence(ctx context.Context, batchID uuid.UUID, sequence int) (uuid.UUID, error) {
	return uc.updateBySequence(ctx, batchID, sequence, func(c *coupon.Coupon, now time.Time) error {
		c.Deactivate(now)
		return nil
	})
}

func (uc *couponCommandsImpl) updateBySequence(ctx context.Context, batchID uuid.UUID, sequence int, mutate func(*coupon.Coupon, time.Time) error) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().LockBySequence(ctx, tx.DB(), batchID, sequence)
		if err != nil {
			return translate(err, couponErrs)
		}
		if err := mutate(c, uc.clock.Now()); err != nil {
			return err
		}
		id = c.ID()
		return translate(tx.Coupons().Save(ctx, tx.DB(), c), couponErrs)
	})
	if err != nil {
		return uuid.Nil, err
	}
	uc.invalidate(ctx, id)
	return id, nil
}

func (uc *couponCommandsImpl) IncrementScan(ctx context.Context, couponID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Coupons().IncrementScan(ctx, tx.DB(), couponID, uc.clock.Now()), couponErrs)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, couponID)
	return nil
}

func (uc *couponCommandsImpl) AssignToClient(ctx context.Context, couponID, clientID uuid.UUID, override bool) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().LockByID(ctx, tx.DB(), couponID)
		if err != nil {
			if !override {
				// Without override a missing coupon is reported like an unavailable one.
				return translate(err, repoErrs{notFound: coupon.ErrNotAssignable})
			}
			return translate(err, couponErrs)
		}
		if err := c.AssignTo(clientID, override, uc.clock.Now()); err != nil {
			return err
		}
		return translate(tx.Coupons().Save(ctx, tx.DB(), c), couponErrs)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, couponID)
	return nil
}

func (uc *couponCommandsImpl) Delete(ctx context.Context, couponID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Coupons().Delete(ctx, tx.DB(), couponID), repoErrs{
			notFound:   coupon.ErrNotFound,
			foreignKey: coupon.ErrHasRedemptions,
		})
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, couponID)
	return nil
}

func (uc *couponCommandsImpl) invalidate(ctx context.Context, couponID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, couponID); err != nil {
		slog.Warn("failed to invalidate coupon detail cache", "coupon_id", couponID, "error", err.Error())
	}
}
