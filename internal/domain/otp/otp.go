// Package otp models one-time e-mail verification codes.
package otp

import (
	"crypto/rand"
	"math/big"
	"time"

	"cuponera-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	// TTL is how long a generated code stays usable.
	TTL = 5 * time.Minute

	codeMin = 10000
	codeMax = 99999
)

var (
	ErrNotFound = errs.Kind(errs.ErrNotFound, "OTP code is incorrect or was not found")
	ErrExpired  = errs.Kind(errs.ErrInvalidArgument, "OTP code has expired")
	ErrUsed     = errs.Kind(errs.ErrInvalidArgument, "OTP code was already used")
	ErrMismatch = errs.Kind(errs.ErrInvalidArgument, "OTP code is incorrect")
)

// GenerateCode returns a uniformly drawn 5-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", errs.Wrap(err, "failed to draw OTP code")
	}
	return big.NewInt(0).Add(n, big.NewInt(codeMin)).String(), nil
}

// OTP keeps only the bcrypt hash of the code. A code is usable while active, unused and unexpired.
type OTP struct {
	id        uuid.UUID
	email     string
	codeHash  string
	expiresAt time.Time
	used      bool
	usedAt    *time.Time
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func New(email, codeHash string, now time.Time) *OTP {
	return &OTP{
		id:        uuid.New(),
		email:     email,
		codeHash:  codeHash,
		expiresAt: now.Add(TTL),
		active:    true,
		createdAt: now,
		updatedAt: now,
	}
}

type Snapshot struct {
	ID        uuid.UUID
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	Used      bool
	UsedAt    *time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func Reconstruct(s Snapshot) *OTP {
	return &OTP{
		id:        s.ID,
		email:     s.Email,
		codeHash:  s.CodeHash,
		expiresAt: s.ExpiresAt,
		used:      s.Used,
		usedAt:    s.UsedAt,
		active:    s.Active,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

// Verify consumes the code. An expired code is deactivated before ErrExpired is returned,
// so callers must persist the OTP on that error too.
func (o *OTP) Verify(code string, now time.Time, matches func(hash, code string) bool) error {
	if !o.active {
		return ErrNotFound
	}
	if now.After(o.expiresAt) {
		o.active = false
		o.updatedAt = now
		return ErrExpired
	}
	if o.used {
		return ErrUsed
	}
	if !matches(o.codeHash, code) {
		return ErrMismatch
	}
	o.used = true
	o.usedAt = &now
	o.active = false
	o.updatedAt = now
	return nil
}

func (o *OTP) ID() uuid.UUID        { return o.id }
func (o *OTP) Email() string        { return o.email }
func (o *OTP) CodeHash() string     { return o.codeHash }
func (o *OTP) ExpiresAt() time.Time { return o.expiresAt }
func (o *OTP) Used() bool           { return o.used }
func (o *OTP) UsedAt() *time.Time   { return o.usedAt }
func (o *OTP) Active() bool         { return o.active }
func (o *OTP) CreatedAt() time.Time { return o.createdAt }
func (o *OTP) UpdatedAt() time.Time { return o.updatedAt }
