package commands

import (
	"context"

	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/pkg/password"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var clientErrs = repoErrs{
	notFound: client.ErrNotFound,
	byConstraint: map[string]error{
		"clients_email_key":          client.ErrDuplicateEmail,
		"clients_identification_key": client.ErrDuplicateIdentification,
	},
}

type RegisterClientInput struct {
	FirstName          string
	LastName           string
	IdentificationType string
	Identification     string
	Email              string
	Password           string
	Phone              string
	Address            string
}

type ClientCommands interface {
	Register(ctx context.Context, in RegisterClientInput) (uuid.UUID, error)
	UpdateMe(ctx context.Context, clientID uuid.UUID, u client.Update) error
}

type clientCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClientCommands(uow shared.UnitOfWork, clk clock.Clock) ClientCommands {
	return &clientCommandsImpl{uow: uow, clock: clk}
}

func (uc *clientCommandsImpl) Register(ctx context.Context, in RegisterClientInput) (uuid.UUID, error) {
	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	c, err := client.NewClient(client.NewClientInput{
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		IdentificationType: client.IdentificationType(in.IdentificationType),
		Identification:     in.Identification,
		Email:              in.Email,
		PasswordHash:       hash,
		Phone:              in.Phone,
		Address:            in.Address,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Clients().Create(ctx, tx.DB(), c), clientErrs)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *clientCommandsImpl) UpdateMe(ctx context.Context, clientID uuid.UUID, u client.Update) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().ClientByID(ctx, clientID)
		if err != nil {
			return translate(err, clientErrs)
		}
		if err := c.ApplyUpdate(u, uc.clock.Now()); err != nil {
			return err
		}
		return translate(tx.Clients().Update(ctx, tx.DB(), c), clientErrs)
	})
}
