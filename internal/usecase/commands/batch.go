package commands

import (
	"context"

	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var batchErrs = repoErrs{
	notFound:   batch.ErrNotFound,
	duplicate:  batch.ErrDuplicateName,
	foreignKey: batch.ErrInUse,
}

type CreateBatchInput struct {
	Name              string
	Active            bool
	RedemptionCeiling int
	CityIDs           []uuid.UUID
	Description       string
}

type BatchCommands interface {
	Create(ctx context.Context, in CreateBatchInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p batch.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type batchCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBatchCommands(uow shared.UnitOfWork, clk clock.Clock) BatchCommands {
	return &batchCommandsImpl{uow: uow, clock: clk}
}

func (uc *batchCommandsImpl) Create(ctx context.Context, in CreateBatchInput) (uuid.UUID, error) {
	b, err := batch.NewBatch(in.Name, in.Active, in.RedemptionCeiling, in.CityIDs, in.Description, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Batches().Create(ctx, tx.DB(), b), batchErrs)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return b.ID(), nil
}

func (uc *batchCommandsImpl) Update(ctx context.Context, id uuid.UUID, p batch.Patch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Batches().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return translate(err, batchErrs)
		}
		if err := b.Apply(p, uc.clock.Now()); err != nil {
			return err
		}
		return translate(tx.Batches().Update(ctx, tx.DB(), b), batchErrs)
	})
}

// Delete refuses batches that still own coupons. Coupons are never cascade-deleted.
func (uc *batchCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Batches().Delete(ctx, tx.DB(), id), batchErrs)
	})
}
