package batch

import (
	"strings"
	"time"

	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errs.Kind(errs.ErrNotFound, "coupon batch not found")
	ErrBlankName      = errs.Kind(errs.ErrInvalidArgument, "batch name is required")
	ErrInvalidCeiling = errs.Kind(errs.ErrInvalidArgument, "redemption ceiling must be at least 1")
	ErrDuplicateName  = errs.Kind(errs.ErrConflict, "a batch with this name already exists")
	ErrInUse          = errs.Kind(errs.ErrConflict, "batch still has coupons")
)

// Batch is a campaign definition ("version" of the cuponera).
type Batch struct {
	id                uuid.UUID
	name              string
	active            bool
	redemptionCeiling int
	cityIDs           []uuid.UUID
	description       string
	createdAt         time.Time
	updatedAt         time.Time
}

type Patch struct {
	Name              *string
	Active            *bool
	RedemptionCeiling *int
	CityIDs           []uuid.UUID
	Description       *string
}

func NewBatch(name string, active bool, ceiling int, cityIDs []uuid.UUID, description string, now time.Time) (*Batch, error) {
	b := &Batch{
		id:                uuid.New(),
		name:              strings.TrimSpace(name),
		active:            active,
		redemptionCeiling: ceiling,
		cityIDs:           dedupe(cityIDs),
		description:       strings.TrimSpace(description),
		createdAt:         now,
		updatedAt:         now,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func Reconstruct(id uuid.UUID, name string, active bool, ceiling int, cityIDs []uuid.UUID, description string, createdAt, updatedAt time.Time) *Batch {
	return &Batch{
		id:                id,
		name:              name,
		active:            active,
		redemptionCeiling: ceiling,
		cityIDs:           cityIDs,
		description:       description,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (b *Batch) Apply(p Patch, now time.Time) error {
	next := *b
	if p.Name != nil {
		next.name = strings.TrimSpace(*p.Name)
	}
	next.active = patch.Coalesce(p.Active, b.active)
	next.redemptionCeiling = patch.Coalesce(p.RedemptionCeiling, b.redemptionCeiling)
	next.cityIDs = dedupe(patch.CoalesceSlice(p.CityIDs, b.cityIDs))
	if p.Description != nil {
		next.description = strings.TrimSpace(*p.Description)
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*b = next
	return nil
}

func (b *Batch) validate() error {
	if b.name == "" {
		return ErrBlankName
	}
	if b.redemptionCeiling < 1 {
		return ErrInvalidCeiling
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (b *Batch) ID() uuid.UUID          { return b.id }
func (b *Batch) Name() string           { return b.name }
func (b *Batch) Active() bool           { return b.active }
func (b *Batch) RedemptionCeiling() int { return b.redemptionCeiling }
func (b *Batch) CityIDs() []uuid.UUID   { return b.cityIDs }
func (b *Batch) Description() string    { return b.description }
func (b *Batch) CreatedAt() time.Time   { return b.createdAt }
func (b *Batch) UpdatedAt() time.Time   { return b.updatedAt }
