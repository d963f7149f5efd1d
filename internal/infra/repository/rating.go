package repository

import (
	"context"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/comment"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// applyRatingDelta evaluates the new aggregate server-side in one statement.
// The average is always derived from the stored sum so repeated edits never drift.
// Dropping to zero comments resets all three columns.
const applyRatingDelta = `
	UPDATE actors
	SET rating_sum = CASE WHEN rating_count + $3 <= 0 THEN 0 ELSE rating_sum + $2 END,
		rating_count = GREATEST(rating_count + $3, 0),
		rating_average = CASE WHEN rating_count + $3 <= 0 THEN 0
			ELSE ROUND((rating_sum + $2)::numeric / (rating_count + $3), 2) END
	WHERE id = $1
	RETURNING rating_sum, rating_count, rating_average`

type RatingRepository struct{}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{}
}

func (r *RatingRepository) Apply(ctx context.Context, tx db.DBTX, actorID uuid.UUID, d comment.Delta) (actor.Rating, error) {
	var (
		out     actor.Rating
		average pgtype.Numeric
	)
	err := tx.QueryRow(ctx, applyRatingDelta, actorID, d.Sum, d.Count).Scan(&out.Sum, &out.Count, &average)
	if err != nil {
		return actor.Rating{}, infra.WrapRepoErr("failed to apply rating delta", err)
	}
	out.Average = pgconv.DecimalFromNumeric(average)
	return out, nil
}
