package commands

import (
	"context"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/domain/share"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var favoriteErrs = repoErrs{
	byConstraint: map[string]error{
		"favorites_actor_id_fkey":  actor.ErrNotFound,
		"favorites_client_id_fkey": client.ErrNotFound,
	},
}

var shareErrs = repoErrs{
	byConstraint: map[string]error{
		"shares_actor_id_fkey":  actor.ErrNotFound,
		"shares_client_id_fkey": client.ErrNotFound,
		"shares_channel_check":  share.ErrInvalidChannel,
	},
}

type FavoriteCommands interface {
	// Add reports whether the favorite was newly created. Repeating it is not an error.
	Add(ctx context.Context, clientID, actorID uuid.UUID) (bool, error)
	Remove(ctx context.Context, clientID, actorID uuid.UUID) (bool, error)
	// Toggle returns the resulting state.
	Toggle(ctx context.Context, clientID, actorID uuid.UUID) (bool, error)
}

type favoriteCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewFavoriteCommands(uow shared.UnitOfWork) FavoriteCommands {
	return &favoriteCommandsImpl{uow: uow}
}

func (uc *favoriteCommandsImpl) Add(ctx context.Context, clientID, actorID uuid.UUID) (bool, error) {
	var added bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) (err error) {
		added, err = tx.Favorites().Add(ctx, tx.DB(), clientID, actorID)
		return translate(err, favoriteErrs)
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

func (uc *favoriteCommandsImpl) Remove(ctx context.Context, clientID, actorID uuid.UUID) (bool, error) {
	var removed bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) (err error) {
		removed, err = tx.Favorites().Remove(ctx, tx.DB(), clientID, actorID)
		return translate(err, favoriteErrs)
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (uc *favoriteCommandsImpl) Toggle(ctx context.Context, clientID, actorID uuid.UUID) (bool, error) {
	var favorite bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Favorites().Remove(ctx, tx.DB(), clientID, actorID)
		if err != nil {
			return translate(err, favoriteErrs)
		}
		if removed {
			favorite = false
			return nil
		}
		if _, err := tx.Favorites().Add(ctx, tx.DB(), clientID, actorID); err != nil {
			return translate(err, favoriteErrs)
		}
		favorite = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return favorite, nil
}

type ShareCommands interface {
	Record(ctx context.Context, in share.NewShareInput) (uuid.UUID, error)
}

type shareCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewShareCommands(uow shared.UnitOfWork, clk clock.Clock) ShareCommands {
	return &shareCommandsImpl{uow: uow, clock: clk}
}

func (uc *shareCommandsImpl) Record(ctx context.Context, in share.NewShareInput) (uuid.UUID, error) {
	s, err := share.NewShare(in, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Shares().Create(ctx, tx.DB(), s), shareErrs)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return s.ID, nil
}
