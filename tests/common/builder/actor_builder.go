//go:build unit || e2e

package builder

import (
	"time"

	"cuponera-backend/internal/domain/actor"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PasswordHash is bcrypt("password123").
const PasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type ActorBuilder struct {
	ID                 uuid.UUID
	Name               string
	Email              string
	Role               actor.Role
	Active             bool
	ResponsiblePartyID *uuid.UUID
	CityIDs            []uuid.UUID
	CategoryIDs        []uuid.UUID
	Promotion          actor.Promotion
	Rating             actor.Rating
	Now                time.Time
}

func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{
		ID:     uuid.New(),
		Name:   "Café Central",
		Email:  "local@cuponera.ec",
		Role:   actor.RoleLocal,
		Active: true,
		Rating: actor.Rating{Average: decimal.Zero},
		Now:    time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
	}
}

func (b *ActorBuilder) With(mutate func(*ActorBuilder)) *ActorBuilder {
	mutate(b)
	return b
}

func (b *ActorBuilder) AsAdmin() *ActorBuilder {
	b.Role = actor.RoleAdmin
	b.ResponsiblePartyID = nil
	return b
}

// AsStaffOf makes the actor a STAFF member reporting to responsible.
func (b *ActorBuilder) AsStaffOf(responsible uuid.UUID) *ActorBuilder {
	b.Role = actor.RoleStaff
	b.ResponsiblePartyID = &responsible
	return b
}

func (b *ActorBuilder) InCities(ids ...uuid.UUID) *ActorBuilder {
	b.CityIDs = ids
	return b
}

func (b *ActorBuilder) AsInactive() *ActorBuilder {
	b.Active = false
	return b
}

func (b *ActorBuilder) Build() *actor.Actor {
	return actor.Reconstruct(actor.Snapshot{
		ID:                 b.ID,
		Name:               b.Name,
		Email:              b.Email,
		PasswordHash:       PasswordHash,
		Role:               b.Role,
		Active:             b.Active,
		ResponsiblePartyID: b.ResponsiblePartyID,
		CityIDs:            b.CityIDs,
		CategoryIDs:        b.CategoryIDs,
		Promotion:          b.Promotion,
		Rating:             b.Rating,
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	})
}
