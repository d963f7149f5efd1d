package catalog

import (
	"strings"
	"time"

	"cuponera-backend/internal/pkg/patch"

	"github.com/google/uuid"
)

type Category struct {
	id          uuid.UUID
	name        string
	description string
	icon        string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

type CategoryPatch struct {
	Name        *string
	Description *string
	Icon        *string
	Active      *bool
}

// NewCategory starts active.
func NewCategory(name, description, icon string, now time.Time) (*Category, error) {
	c := &Category{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		icon:        strings.TrimSpace(icon),
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}
	if c.name == "" {
		return nil, ErrBlankName
	}
	return c, nil
}

func ReconstructCategory(id uuid.UUID, name, description, icon string, active bool, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		icon:        icon,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) Apply(p CategoryPatch, now time.Time) error {
	next := *c
	if p.Name != nil {
		next.name = strings.TrimSpace(*p.Name)
	}
	if p.Description != nil {
		next.description = strings.TrimSpace(*p.Description)
	}
	if p.Icon != nil {
		next.icon = strings.TrimSpace(*p.Icon)
	}
	next.active = patch.Coalesce(p.Active, c.active)
	if next.name == "" {
		return ErrBlankName
	}
	next.updatedAt = now
	*c = next
	return nil
}

// SetActive is idempotent.
func (c *Category) SetActive(active bool, now time.Time) {
	if c.active == active {
		return
	}
	c.active = active
	c.updatedAt = now
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) Icon() string         { return c.icon }
func (c *Category) Active() bool         { return c.active }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }
