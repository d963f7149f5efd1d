package password

import (
	"errors"

	"cuponera-backend/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.Kind(errs.ErrInvalidArgument, "password must have at least 6 characters")
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinLength   = 6
)

func HashPassword(password string) (string, error) {
	if len(password) < MinLength {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// HashCode hashes short verification codes, which are exempt from MinLength.
func HashCode(code string) (string, error) {
	if code == "" {
		return "", ErrInvalidPassword
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashedBytes), nil
}
