package repository

import (
	"context"

	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"

	"github.com/google/uuid"
)

type FavoriteRepository struct{}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

// Add is idempotent; the unique pair is absorbed by ON CONFLICT.
func (r *FavoriteRepository) Add(ctx context.Context, tx db.DBTX, clientID, actorID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `
		INSERT INTO favorites (client_id, actor_id) VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT favorites_client_actor_key DO NOTHING`,
		clientID, actorID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to add favorite", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, tx db.DBTX, clientID, actorID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM favorites WHERE client_id = $1 AND actor_id = $2`, clientID, actorID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove favorite", err)
	}
	return tag.RowsAffected() > 0, nil
}
