package actor

import (
	"context"

	"github.com/google/uuid"
)

// Directory is the lookup surface group resolution needs.
// FindByID returns (nil, nil) when the actor does not exist.
type Directory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Actor, error)
	DependentIDs(ctx context.Context, responsibleID uuid.UUID) ([]uuid.UUID, error)
}

// ResolveBaseLocalAdmin maps a STAFF actor to its responsible party and any other actor to itself.
func ResolveBaseLocalAdmin(ctx context.Context, dir Directory, actorID uuid.UUID) (*Actor, error) {
	a, err := dir.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	if a.role != RoleStaff {
		return a, nil
	}
	if a.responsiblePartyID == nil {
		return nil, ErrStaffWithoutResponsible
	}
	base, err := dir.FindByID(ctx, *a.responsiblePartyID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, ErrResponsibleNotFound
	}
	return base, nil
}

// Group is the set of actors that share redemption rights on a coupon.
type Group struct {
	Root    *Actor
	Members []uuid.UUID
}

func (g Group) Contains(id uuid.UUID) bool {
	for _, m := range g.Members {
		if m == id {
			return true
		}
	}
	return false
}

// ResolveGroup returns root = base local-admin and members = {root} plus its direct dependents.
func ResolveGroup(ctx context.Context, dir Directory, actorID uuid.UUID) (Group, error) {
	root, err := ResolveBaseLocalAdmin(ctx, dir, actorID)
	if err != nil {
		return Group{}, err
	}
	deps, err := dir.DependentIDs(ctx, root.id)
	if err != nil {
		return Group{}, err
	}
	members := make([]uuid.UUID, 0, len(deps)+1)
	members = append(members, root.id)
	for _, id := range deps {
		if id != root.id {
			members = append(members, id)
		}
	}
	return Group{Root: root, Members: members}, nil
}
