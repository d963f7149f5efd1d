package shared

import (
	"context"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/infra"

	"github.com/google/uuid"
)

type directory struct {
	reads CommandReads
}

// NewDirectory exposes CommandReads as the actor lookup used by group resolution.
func NewDirectory(reads CommandReads) actor.Directory {
	return &directory{reads: reads}
}

func (d *directory) FindByID(ctx context.Context, id uuid.UUID) (*actor.Actor, error) {
	a, err := d.reads.ActorByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (d *directory) DependentIDs(ctx context.Context, responsibleID uuid.UUID) ([]uuid.UUID, error) {
	return d.reads.ActorDependentIDs(ctx, responsibleID)
}
