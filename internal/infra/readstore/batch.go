package readstore

import (
	"context"

	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

// Cities are resolved in the order stored on the batch.
const batchViewSelect = `
	SELECT b.id, b.name, b.active, b.redemption_ceiling, b.description, b.created_at, b.updated_at,
		COALESCE(array_agg(ci.id ORDER BY u.ord) FILTER (WHERE ci.id IS NOT NULL), '{}'),
		COALESCE(array_agg(ci.name ORDER BY u.ord) FILTER (WHERE ci.id IS NOT NULL), '{}')
	FROM batches b
	LEFT JOIN LATERAL unnest(b.city_ids) WITH ORDINALITY AS u(city_id, ord) ON true
	LEFT JOIN cities ci ON ci.id = u.city_id`

type BatchReadStore struct {
	db db.DBTX
}

func NewBatchReadStore(db db.DBTX) *BatchReadStore {
	return &BatchReadStore{db: db}
}

func (r *BatchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BatchView, error) {
	v, err := scanBatchView(r.db.QueryRow(ctx, batchViewSelect+`
		WHERE b.id = $1
		GROUP BY b.id`, id))
	if err != nil {
		return nil, wrapFind("batch", err)
	}
	return v, nil
}

func (r *BatchReadStore) List(ctx context.Context) ([]*queries.BatchView, error) {
	return collect(ctx, r.db, "failed to list batches", scanBatchView, batchViewSelect+`
		GROUP BY b.id
		ORDER BY b.created_at DESC, b.id`)
}

func scanBatchView(row rowScanner) (*queries.BatchView, error) {
	var (
		v     queries.BatchView
		ids   []uuid.UUID
		names []string
	)
	if err := row.Scan(&v.ID, &v.Name, &v.Active, &v.RedemptionCeiling, &v.Description,
		&v.CreatedAt, &v.UpdatedAt, &ids, &names); err != nil {
		return nil, err
	}
	v.Cities = zipCities(ids, names)
	return &v, nil
}

func zipCities(ids []uuid.UUID, names []string) []queries.CityRef {
	out := make([]queries.CityRef, 0, len(ids))
	for i, id := range ids {
		if i < len(names) {
			out = append(out, queries.CityRef{ID: id, Name: names[i]})
		}
	}
	return out
}
