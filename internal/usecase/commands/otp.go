package commands

import (
	"context"
	"fmt"
	"log/slog"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/otp"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/password"
	"cuponera-backend/internal/usecase/shared"
)

var otpErrs = repoErrs{notFound: otp.ErrNotFound}

// OTPCommands issues and consumes e-mail verification codes.
type OTPCommands interface {
	// Generate retires any earlier code for the email and mails a fresh one.
	Generate(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
}

type otpCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	mailer shared.Mailer
}

func NewOTPCommands(uow shared.UnitOfWork, clk clock.Clock, mailer shared.Mailer) OTPCommands {
	return &otpCommandsImpl{uow: uow, clock: clk, mailer: mailer}
}

func (uc *otpCommandsImpl) Generate(ctx context.Context, email string) error {
	email, err := actor.NormalizeEmail(email)
	if err != nil {
		return err
	}
	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}
	hash, err := password.HashCode(code)
	if err != nil {
		return errs.Wrap(err, "failed to hash OTP code")
	}
	o := otp.New(email, hash, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.OTPs().Create(ctx, tx.DB(), o); err != nil {
			return err
		}
		return tx.OTPs().DeactivateActive(ctx, tx.DB(), email, o.ID(), o.CreatedAt())
	})
	if err != nil {
		return err
	}
	slog.Info("otp issued", "otp_id", o.ID())
	uc.mailer.Send(ctx, email, "Código de verificación",
		fmt.Sprintf("<p>Tu código de verificación es <b>%s</b>. Vence en %d minutos.</p>", code, int(otp.TTL.Minutes())))
	return nil
}

func (uc *otpCommandsImpl) Verify(ctx context.Context, email, code string) error {
	email, err := actor.NormalizeEmail(email)
	if err != nil {
		return otp.ErrNotFound
	}
	var verr error
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.OTPs().LockLatestActive(ctx, tx.DB(), email)
		if err != nil {
			return translate(err, otpErrs)
		}
		now := uc.clock.Now()
		verr = o.Verify(code, now, func(hash, code string) bool {
			return password.ComparePassword(hash, code) == nil
		})
		switch {
		case errs.Is(verr, otp.ErrExpired):
			// the deactivation must commit even though verification fails
			return tx.OTPs().Save(ctx, tx.DB(), o)
		case verr != nil:
			return verr
		}
		if err := tx.OTPs().Save(ctx, tx.DB(), o); err != nil {
			return err
		}
		return tx.OTPs().DeactivateActive(ctx, tx.DB(), email, o.ID(), now)
	})
	if err != nil {
		return err
	}
	return verr
}
