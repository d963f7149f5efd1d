package commands

import (
	"context"

	"cuponera-backend/internal/domain/businessrequest"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var requestErrs = repoErrs{
	notFound:  businessrequest.ErrNotFound,
	duplicate: businessrequest.ErrDuplicateEmail,
	byConstraint: map[string]error{
		"business_requests_email_key":    businessrequest.ErrDuplicateEmail,
		"business_requests_status_check": businessrequest.ErrInvalidStatus,
	},
}

// BusinessRequestCommands handles sign-up requests sent by prospective businesses.
type BusinessRequestCommands interface {
	Create(ctx context.Context, in businessrequest.NewInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, patch businessrequest.Patch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type businessRequestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBusinessRequestCommands(uow shared.UnitOfWork, clk clock.Clock) BusinessRequestCommands {
	return &businessRequestCommandsImpl{uow: uow, clock: clk}
}

func (uc *businessRequestCommandsImpl) Create(ctx context.Context, in businessrequest.NewInput) (uuid.UUID, error) {
	r, err := businessrequest.New(in, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.BusinessRequests().Create(ctx, tx.DB(), r), requestErrs)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return r.ID(), nil
}

func (uc *businessRequestCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch businessrequest.Patch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.BusinessRequests().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return translate(err, requestErrs)
		}
		if err := r.Apply(patch, uc.clock.Now()); err != nil {
			return err
		}
		return translate(tx.BusinessRequests().Update(ctx, tx.DB(), r), requestErrs)
	})
}

func (uc *businessRequestCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.BusinessRequests().Delete(ctx, tx.DB(), id), requestErrs)
	})
}
