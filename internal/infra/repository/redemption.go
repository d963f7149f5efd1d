package repository

import (
	"context"

	"cuponera-backend/internal/domain/redemption"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
)

type RedemptionRepository struct{}

func NewRedemptionRepository() *RedemptionRepository {
	return &RedemptionRepository{}
}

// Insert relies on redemptions_coupon_group_key to reject a second record for the same group.
func (r *RedemptionRepository) Insert(ctx context.Context, tx db.DBTX, rec *redemption.Record) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO redemptions (id, coupon_id, actor_id, group_id, scanned_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.ID(), rec.CouponID(), rec.ActorID(), rec.GroupID(), rec.ScannedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert redemption", err)
	}
	return nil
}
