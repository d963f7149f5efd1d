package coupon

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	id          uuid.UUID
	batchID     uuid.UUID
	sequence    int
	state       State
	scanCount   int
	activatedAt *time.Time
	expiresAt   *time.Time
	activatedBy *uuid.UUID
	clientID    *uuid.UUID
	lastScanAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// Window is an optional activation/expiry pair supplied on creation.
type Window struct {
	ActivatedAt *time.Time
	ExpiresAt   *time.Time
}

func (w Window) Validate() error {
	if w.ActivatedAt != nil && w.ExpiresAt != nil && !w.ActivatedAt.Before(*w.ExpiresAt) {
		return ErrInvalidWindow
	}
	return nil
}

func NewCoupon(batchID uuid.UUID, sequence int, window Window, now time.Time) (*Coupon, error) {
	if sequence < 1 {
		return nil, ErrInvalidSequence
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}
	return &Coupon{
		id:          uuid.New(),
		batchID:     batchID,
		sequence:    sequence,
		state:       StateInactive,
		activatedAt: window.ActivatedAt,
		expiresAt:   window.ExpiresAt,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewSeries builds count inactive coupons numbered after the current batch size.
func NewSeries(batchID uuid.UUID, existing, count int, window Window, now time.Time) ([]*Coupon, error) {
	if err := ValidateSeriesSize(count); err != nil {
		return nil, err
	}
	out := make([]*Coupon, 0, count)
	for i := 1; i <= count; i++ {
		c, err := NewCoupon(batchID, existing+i, window, now)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func ValidateSeriesSize(count int) error {
	if count < 1 || count > MaxSeriesSize {
		return ErrInvalidSeriesSize
	}
	return nil
}

func Reconstruct(
	id, batchID uuid.UUID,
	sequence int,
	state State,
	scanCount int,
	activatedAt, expiresAt *time.Time,
	activatedBy, clientID *uuid.UUID,
	lastScanAt *time.Time,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:          id,
		batchID:     batchID,
		sequence:    sequence,
		state:       state,
		scanCount:   scanCount,
		activatedAt: activatedAt,
		expiresAt:   expiresAt,
		activatedBy: activatedBy,
		clientID:    clientID,
		lastScanAt:  lastScanAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ExpiryFor returns the end of the validity period starting at activation.
func ExpiryFor(activatedAt time.Time) time.Time {
	return activatedAt.AddDate(ValidityYears, 0, 0)
}

func (c *Coupon) Activate(actorID uuid.UUID, now time.Time) error {
	switch c.state {
	case StateActive:
		return ErrAlreadyActive
	case StateBlocked:
		return ErrBlocked
	}
	c.activateAt(now)
	c.activatedBy = &actorID
	return nil
}

// Deactivate resets the coupon. It is idempotent and also applies to BLOCKED coupons.
func (c *Coupon) Deactivate(now time.Time) {
	c.state = StateInactive
	c.activatedAt = nil
	c.expiresAt = nil
	c.activatedBy = nil
	c.updatedAt = now
}

// AssignTo binds the coupon to a client. Without override only an unowned ACTIVE coupon qualifies.
func (c *Coupon) AssignTo(clientID uuid.UUID, override bool, now time.Time) error {
	if !override && (c.clientID != nil || c.state != StateActive) {
		return ErrNotAssignable
	}
	c.clientID = &clientID
	if c.state == StateInactive {
		c.activateAt(now)
	}
	c.updatedAt = now
	return nil
}

// CheckRedeemable reports whether the coupon may be scanned at now.
func (c *Coupon) CheckRedeemable(now time.Time) error {
	switch c.state {
	case StateInactive:
		return ErrNotActive
	case StateBlocked:
		return ErrBlocked
	}
	if c.expiresAt != nil && now.After(*c.expiresAt) {
		return ErrExpired
	}
	return nil
}

func (c *Coupon) activateAt(now time.Time) {
	expires := ExpiryFor(now)
	c.state = StateActive
	c.activatedAt = &now
	c.expiresAt = &expires
	c.updatedAt = now
}

func (c *Coupon) ID() uuid.UUID           { return c.id }
func (c *Coupon) BatchID() uuid.UUID      { return c.batchID }
func (c *Coupon) Sequence() int           { return c.sequence }
func (c *Coupon) State() State            { return c.state }
func (c *Coupon) ScanCount() int          { return c.scanCount }
func (c *Coupon) ActivatedAt() *time.Time { return c.activatedAt }
func (c *Coupon) ExpiresAt() *time.Time   { return c.expiresAt }
func (c *Coupon) ActivatedBy() *uuid.UUID { return c.activatedBy }
func (c *Coupon) ClientID() *uuid.UUID    { return c.clientID }
func (c *Coupon) LastScanAt() *time.Time  { return c.lastScanAt }
func (c *Coupon) CreatedAt() time.Time    { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time    { return c.updatedAt }
