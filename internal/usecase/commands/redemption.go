package commands

import (
	"context"
	"log/slog"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/domain/redemption"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var redemptionErrs = repoErrs{
	duplicate: redemption.ErrDuplicateRedemption,
	byConstraint: map[string]error{
		"redemptions_actor_id_fkey":  actor.ErrNotFound,
		"redemptions_coupon_id_fkey": coupon.ErrNotFound,
	},
}

type ScanResult struct {
	RedemptionID uuid.UUID
	CouponID     uuid.UUID
	ActorID      uuid.UUID
	GroupID      uuid.UUID
	ScannedAt    time.Time
}

type ScanValidation struct {
	Valid   bool
	Message string
}

type RedemptionCommands interface {
	RegisterScan(ctx context.Context, couponID, actorID uuid.UUID) (*ScanResult, error)
	// ValidateBeforeRegister runs the scan rules without writing. Rule violations are reported in the result.
	ValidateBeforeRegister(ctx context.Context, couponID, actorID uuid.UUID) (*ScanValidation, error)
}

type redemptionCommandsImpl struct {
	uow      shared.UnitOfWork
	cache    shared.CouponDetailCache
	observer shared.ScanObserver
	clock    clock.Clock
}

func NewRedemptionCommands(uow shared.UnitOfWork, cache shared.CouponDetailCache, observer shared.ScanObserver, clk clock.Clock) RedemptionCommands {
	return &redemptionCommandsImpl{uow: uow, cache: cache, observer: observer, clock: clk}
}

func (uc *redemptionCommandsImpl) RegisterScan(ctx context.Context, couponID, actorID uuid.UUID) (*ScanResult, error) {
	var rec *redemption.Record
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		e, err := loadEligibility(ctx, tx.Reads(), couponID, actorID, func(ctx context.Context) (*coupon.Coupon, error) {
			return tx.Coupons().LockByID(ctx, tx.DB(), couponID)
		})
		if err != nil {
			return err
		}
		if err := e.Check(now); err != nil {
			return err
		}

		rec = redemption.NewRecord(couponID, actorID, e.Group.Root.ID(), now)
		if err := tx.Redemptions().Insert(ctx, tx.DB(), rec); err != nil {
			return translate(err, redemptionErrs)
		}
		ok, err := tx.Coupons().IncrementScanWithinCeiling(ctx, tx.DB(), couponID, e.Batch.RedemptionCeiling(), now)
		if err != nil {
			return err
		}
		if !ok {
			return redemption.ErrCeilingReached
		}
		return nil
	})
	if err != nil {
		uc.observer.ScanRejected(errs.KindName(err))
		return nil, err
	}
	uc.observer.ScanRegistered()

	if err := uc.cache.Invalidate(ctx, couponID); err != nil {
		slog.Warn("failed to invalidate coupon detail cache", "coupon_id", couponID, "error", err.Error())
	}
	return &ScanResult{
		RedemptionID: rec.ID(),
		CouponID:     rec.CouponID(),
		ActorID:      rec.ActorID(),
		GroupID:      rec.GroupID(),
		ScannedAt:    rec.ScannedAt(),
	}, nil
}

func (uc *redemptionCommandsImpl) ValidateBeforeRegister(ctx context.Context, couponID, actorID uuid.UUID) (*ScanValidation, error) {
	var verdict error
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		e, err := loadEligibility(ctx, reads, couponID, actorID, func(ctx context.Context) (*coupon.Coupon, error) {
			return reads.CouponByID(ctx, couponID)
		})
		if err != nil {
			verdict = err
		} else {
			verdict = e.Check(uc.clock.Now())
		}
		if verdict != nil && errs.KindOf(verdict) != nil {
			return nil
		}
		return verdict
	})
	if err != nil {
		return nil, err
	}
	if verdict != nil {
		return &ScanValidation{Valid: false, Message: verdict.Error()}, nil
	}
	return &ScanValidation{Valid: true, Message: "coupon can be redeemed"}, nil
}

// loadEligibility gathers the scan inputs in rule order. loadCoupon decides whether the row is locked.
func loadEligibility(
	ctx context.Context,
	reads shared.CommandReads,
	couponID, actorID uuid.UUID,
	loadCoupon func(context.Context) (*coupon.Coupon, error),
) (*redemption.Eligibility, error) {
	g, err := actor.ResolveGroup(ctx, shared.NewDirectory(reads), actorID)
	if err != nil {
		return nil, err
	}
	redeemed, err := reads.HasGroupRedemption(ctx, couponID, g.Members, g.Root.ID())
	if err != nil {
		return nil, err
	}
	e := &redemption.Eligibility{Group: g, AlreadyRedeemed: redeemed}
	if redeemed {
		return e, nil
	}

	c, err := loadCoupon(ctx)
	if err != nil {
		return nil, translate(err, couponErrs)
	}
	b, err := reads.BatchByID(ctx, c.BatchID())
	if err != nil {
		return nil, translate(err, repoErrs{notFound: batch.ErrNotFound})
	}
	e.Coupon, e.Batch = c, b
	return e, nil
}
