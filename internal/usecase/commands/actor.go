package commands

import (
	"context"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/pkg/password"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var actorErrs = repoErrs{
	notFound:  actor.ErrNotFound,
	duplicate: actor.ErrDuplicateEmail,
	byConstraint: map[string]error{
		"actors_responsible_party_id_fkey": actor.ErrResponsibleNotFound,
		"actors_staff_responsible_check":   actor.ErrStaffWithoutResponsible,
	},
}

type CreateActorInput struct {
	Name               string
	Email              string
	Identification     string
	Password           string
	Role               string
	ResponsiblePartyID *uuid.UUID
	Phone              string
	CityIDs            []uuid.UUID
	CategoryIDs        []uuid.UUID
}

type ActorCommands interface {
	// CreateStaff adds a STAFF actor under the creator's base local-admin.
	CreateStaff(ctx context.Context, creatorID uuid.UUID, in CreateActorInput) (uuid.UUID, error)
	CreateActor(ctx context.Context, in CreateActorInput) (uuid.UUID, error)
	UpdatePromotion(ctx context.Context, actorID uuid.UUID, p actor.Promotion) error
}

type actorCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewActorCommands(uow shared.UnitOfWork, clk clock.Clock) ActorCommands {
	return &actorCommandsImpl{uow: uow, clock: clk}
}

func (uc *actorCommandsImpl) CreateStaff(ctx context.Context, creatorID uuid.UUID, in CreateActorInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		base, err := actor.ResolveBaseLocalAdmin(ctx, shared.NewDirectory(tx.Reads()), creatorID)
		if err != nil {
			return err
		}
		baseID := base.ID()
		in.Role = actor.RoleStaff.String()
		in.ResponsiblePartyID = &baseID
		if len(in.CityIDs) == 0 {
			in.CityIDs = base.CityIDs()
		}
		if len(in.CategoryIDs) == 0 {
			in.CategoryIDs = base.CategoryIDs()
		}
		id, err = uc.create(ctx, tx, in)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *actorCommandsImpl) CreateActor(ctx context.Context, in CreateActorInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) (err error) {
		id, err = uc.create(ctx, tx, in)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *actorCommandsImpl) create(ctx context.Context, tx shared.Tx, in CreateActorInput) (uuid.UUID, error) {
	role, err := actor.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	a, err := actor.NewActor(actor.NewActorInput{
		Name:               in.Name,
		Email:              in.Email,
		Identification:     in.Identification,
		PasswordHash:       hash,
		Role:               role,
		ResponsiblePartyID: in.ResponsiblePartyID,
		Phone:              in.Phone,
		CityIDs:            in.CityIDs,
		CategoryIDs:        in.CategoryIDs,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err := tx.Actors().Create(ctx, tx.DB(), a); err != nil {
		return uuid.Nil, translate(err, actorErrs)
	}
	return a.ID(), nil
}

func (uc *actorCommandsImpl) UpdatePromotion(ctx context.Context, actorID uuid.UUID, p actor.Promotion) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Reads().ActorByID(ctx, actorID)
		if err != nil {
			return translate(err, actorErrs)
		}
		a.UpdatePromotion(p, uc.clock.Now())
		return translate(tx.Actors().UpdatePromotion(ctx, tx.DB(), a), actorErrs)
	})
}
