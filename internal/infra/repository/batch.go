package repository

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const BatchColumns = `id, name, active, redemption_ceiling, city_ids, description, created_at, updated_at`

type BatchRepository struct{}

func NewBatchRepository() *BatchRepository {
	return &BatchRepository{}
}

func (r *BatchRepository) Create(ctx context.Context, tx db.DBTX, b *batch.Batch) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO batches (id, name, active, redemption_ceiling, city_ids, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.Name(), b.Active(), b.RedemptionCeiling(), pgconv.UUIDArray(b.CityIDs()), b.Description(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create batch", err)
	}
	return nil
}

// LockByID serializes writers that derive sequences from the batch size.
func (r *BatchRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*batch.Batch, error) {
	b, err := ScanBatch(tx.QueryRow(ctx, `SELECT `+BatchColumns+` FROM batches WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock batch", err)
	}
	return b, nil
}

func (r *BatchRepository) Update(ctx context.Context, tx db.DBTX, b *batch.Batch) error {
	return execOne(ctx, tx, "batch not found", "failed to update batch", `
		UPDATE batches
		SET name = $2, active = $3, redemption_ceiling = $4, city_ids = $5, description = $6, updated_at = $7
		WHERE id = $1`,
		b.ID(), b.Name(), b.Active(), b.RedemptionCeiling(), pgconv.UUIDArray(b.CityIDs()), b.Description(), b.UpdatedAt(),
	)
}

func (r *BatchRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "batch not found", "failed to delete batch", `DELETE FROM batches WHERE id = $1`, id)
}

func ScanBatch(row rowScanner) (*batch.Batch, error) {
	var (
		id                   uuid.UUID
		name, description    string
		active               bool
		ceiling              int
		cityIDs              []uuid.UUID
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &active, &ceiling, &cityIDs, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return batch.Reconstruct(id, name, active, ceiling, cityIDs, description, createdAt, updatedAt), nil
}
