package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"cuponera-backend/internal/domain/auth"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/jwt"
	"cuponera-backend/internal/pkg/password"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// ClientRole is the role claim carried by client tokens.
const ClientRole = "CLIENT"

var (
	ErrInvalidCredentials = auth.ErrInvalidCredentials
	ErrAccountInactive    = auth.ErrInactiveAccount
	ErrSubjectNotFound    = errs.Kind(errs.ErrNotFound, "authenticated subject not found")
	ErrTokenGeneration    = errs.New("token generation failed")
)

// Subject is the authenticated principal, either an actor or a client.
type Subject struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
	Kind  string
}

type AuthUseCase interface {
	LoginActor(ctx context.Context, credentials auth.Credentials) (string, *Subject, error)
	LoginClient(ctx context.Context, credentials auth.Credentials) (string, *Subject, error)
	GetCurrent(ctx context.Context, id uuid.UUID, kind string) (*Subject, error)
}

type authUseCaseImpl struct {
	reads      shared.CommandReads
	jwtService *jwt.Service
	mailer     shared.Mailer
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service, mailer shared.Mailer) AuthUseCase {
	return &authUseCaseImpl{
		reads:      uow.CommandReads(),
		jwtService: jwtService,
		mailer:     mailer,
	}
}

func (a *authUseCaseImpl) LoginActor(ctx context.Context, credentials auth.Credentials) (string, *Subject, error) {
	act, err := a.reads.ActorByEmail(ctx, credentials.Email())
	if err != nil {
		return "", nil, notFoundAsInvalid(err)
	}
	if err := checkPassword(act.IsActive(), act.PasswordHash(), credentials); err != nil {
		return "", nil, err
	}
	return a.issue(ctx, &Subject{
		ID:    act.ID(),
		Name:  act.Name(),
		Email: act.Email(),
		Role:  act.Role().String(),
		Kind:  jwt.KindActor,
	})
}

func (a *authUseCaseImpl) LoginClient(ctx context.Context, credentials auth.Credentials) (string, *Subject, error) {
	cl, err := a.reads.ClientByEmail(ctx, credentials.Email())
	if err != nil {
		return "", nil, notFoundAsInvalid(err)
	}
	if err := checkPassword(cl.IsActive(), cl.PasswordHash(), credentials); err != nil {
		return "", nil, err
	}
	return a.issue(ctx, &Subject{
		ID:    cl.ID(),
		Name:  cl.FullName(),
		Email: cl.Email(),
		Role:  ClientRole,
		Kind:  jwt.KindClient,
	})
}

func (a *authUseCaseImpl) GetCurrent(ctx context.Context, id uuid.UUID, kind string) (*Subject, error) {
	switch kind {
	case jwt.KindActor:
		act, err := a.reads.ActorByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, ErrSubjectNotFound)
		}
		if !act.IsActive() {
			return nil, ErrAccountInactive
		}
		return &Subject{ID: act.ID(), Name: act.Name(), Email: act.Email(), Role: act.Role().String(), Kind: kind}, nil
	case jwt.KindClient:
		cl, err := a.reads.ClientByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, ErrSubjectNotFound)
		}
		if !cl.IsActive() {
			return nil, ErrAccountInactive
		}
		return &Subject{ID: cl.ID(), Name: cl.FullName(), Email: cl.Email(), Role: ClientRole, Kind: kind}, nil
	default:
		return nil, ErrSubjectNotFound
	}
}

func (a *authUseCaseImpl) issue(ctx context.Context, s *Subject) (string, *Subject, error) {
	token, err := a.jwtService.GenerateToken(s.ID, s.Role, s.Kind)
	if err != nil {
		slog.Error("failed to sign token", "subject_id", s.ID, "error", err.Error())
		return "", nil, ErrTokenGeneration
	}
	a.mailer.Send(ctx, s.Email, "Nuevo inicio de sesión",
		fmt.Sprintf("<p>Hola %s, se registró un nuevo inicio de sesión en tu cuenta.</p>", s.Name))
	return token, s, nil
}

func checkPassword(active bool, hash string, credentials auth.Credentials) error {
	if !active {
		return ErrAccountInactive
	}
	if err := password.ComparePassword(hash, credentials.Password()); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// notFoundAsInvalid hides whether the email exists.
func notFoundAsInvalid(err error) error {
	return notFoundAs(err, ErrInvalidCredentials)
}

func notFoundAs(err, target error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}
