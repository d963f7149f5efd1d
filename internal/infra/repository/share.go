package repository

import (
	"context"

	"cuponera-backend/internal/domain/share"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
)

type ShareRepository struct{}

func NewShareRepository() *ShareRepository {
	return &ShareRepository{}
}

func (r *ShareRepository) Create(ctx context.Context, tx db.DBTX, s *share.Share) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO shares (id, client_id, actor_id, channel, destination_phone, message, origin, origin_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		s.ID, s.ClientID, s.ActorID, string(s.Channel), s.DestinationPhone, s.Message, s.Origin, s.OriginID, s.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record share", err)
	}
	return nil
}
