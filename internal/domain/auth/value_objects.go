package auth

import (
	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrInactiveAccount    = errs.New("account is disabled")
)

type Credentials struct {
	email    string
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := actor.NormalizeEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if len(passwordStr) < password.MinLength {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() string {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
