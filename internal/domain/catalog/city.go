package catalog

import (
	"strings"
	"time"

	"cuponera-backend/internal/pkg/patch"

	"github.com/google/uuid"
)

type City struct {
	id                     uuid.UUID
	name                   string
	active                 bool
	visibleForRegistration bool
	geo                    *Geo
	createdAt              time.Time
	updatedAt              time.Time
}

// CityPatch leaves nil fields untouched. ClearGeo drops the coordinates and wins over Geo.
type CityPatch struct {
	Name                   *string
	Active                 *bool
	VisibleForRegistration *bool
	Geo                    *Geo
	ClearGeo               bool
}

// NewCity starts active.
func NewCity(name string, geo *Geo, visibleForRegistration bool, now time.Time) (*City, error) {
	c := &City{
		id:                     uuid.New(),
		name:                   strings.TrimSpace(name),
		active:                 true,
		visibleForRegistration: visibleForRegistration,
		geo:                    geo,
		createdAt:              now,
		updatedAt:              now,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCity(id uuid.UUID, name string, active, visibleForRegistration bool, geo *Geo, createdAt, updatedAt time.Time) *City {
	return &City{
		id:                     id,
		name:                   name,
		active:                 active,
		visibleForRegistration: visibleForRegistration,
		geo:                    geo,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}
}

func (c *City) Apply(p CityPatch, now time.Time) error {
	next := *c
	if p.Name != nil {
		next.name = strings.TrimSpace(*p.Name)
	}
	next.active = patch.Coalesce(p.Active, c.active)
	next.visibleForRegistration = patch.Coalesce(p.VisibleForRegistration, c.visibleForRegistration)
	switch {
	case p.ClearGeo:
		next.geo = nil
	case p.Geo != nil:
		g := *p.Geo
		next.geo = &g
	}
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*c = next
	return nil
}

// SetActive is idempotent.
func (c *City) SetActive(active bool, now time.Time) {
	if c.active == active {
		return
	}
	c.active = active
	c.updatedAt = now
}

func (c *City) validate() error {
	if c.name == "" {
		return ErrBlankName
	}
	if c.geo != nil {
		return c.geo.validate()
	}
	return nil
}

func (c *City) ID() uuid.UUID                { return c.id }
func (c *City) Name() string                 { return c.name }
func (c *City) Active() bool                 { return c.active }
func (c *City) VisibleForRegistration() bool { return c.visibleForRegistration }
func (c *City) Geo() *Geo                    { return c.geo }
func (c *City) CreatedAt() time.Time         { return c.createdAt }
func (c *City) UpdatedAt() time.Time         { return c.updatedAt }
