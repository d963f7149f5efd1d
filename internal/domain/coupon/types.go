package coupon

import "cuponera-backend/internal/pkg/errs"

const (
	ValidityYears = 1
	MaxSeriesSize = 5000
)

var (
	ErrNotFound          = errs.Kind(errs.ErrNotFound, "coupon not found")
	ErrAlreadyActive     = errs.Kind(errs.ErrInvalidState, "coupon is already active")
	ErrBlocked           = errs.Kind(errs.ErrInvalidState, "coupon is blocked")
	ErrNotActive         = errs.Kind(errs.ErrInvalidState, "coupon is not active")
	ErrExpired           = errs.Kind(errs.ErrInvalidState, "coupon has expired")
	ErrInvalidWindow     = errs.Kind(errs.ErrInvalidArgument, "activation date must be before expiry date")
	ErrInvalidSequence   = errs.Kind(errs.ErrInvalidArgument, "sequence must be a positive number")
	ErrInvalidSeriesSize = errs.Kind(errs.ErrInvalidArgument, "coupon count must be between 1 and 5000")
	ErrInvalidState      = errs.Kind(errs.ErrInvalidArgument, "invalid coupon state")
	ErrNotAssignable     = errs.Kind(errs.ErrConflict, "coupon is already assigned or not active")
	ErrHasRedemptions    = errs.Kind(errs.ErrConflict, "coupon has redemption history")
	ErrDuplicateSequence = errs.Kind(errs.ErrConflict, "sequence already exists in batch")
)

type State string

const (
	StateInactive State = "INACTIVE"
	StateActive   State = "ACTIVE"
	StateBlocked  State = "BLOCKED"
)

func (s State) String() string { return string(s) }

func (s State) IsValid() bool {
	switch s {
	case StateInactive, StateActive, StateBlocked:
		return true
	default:
		return false
	}
}

func ParseState(s string) (State, error) {
	st := State(s)
	if !st.IsValid() {
		return "", ErrInvalidState
	}
	return st, nil
}
