package queries

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/infra"

	"github.com/google/uuid"
)

type BatchView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Active            bool      `json:"active"`
	RedemptionCeiling int       `json:"redemption_ceiling"`
	Cities            []CityRef `json:"cities"`
	Description       string    `json:"description"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CityIDs lists the ids of the batch cities in display order.
func (b *BatchView) CityIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Cities))
	for _, c := range b.Cities {
		ids = append(ids, c.ID)
	}
	return ids
}

type BatchReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BatchView, error)
	List(ctx context.Context) ([]*BatchView, error)
}

type BatchQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BatchView, error)
	List(ctx context.Context) ([]*BatchView, error)
}

type batchQueriesImpl struct {
	store BatchReadStore
}

func NewBatchQueries(store BatchReadStore) BatchQueries {
	return &batchQueriesImpl{store: store}
}

func (q *batchQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BatchView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, batch.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *batchQueriesImpl) List(ctx context.Context) ([]*BatchView, error) {
	return q.store.List(ctx)
}
