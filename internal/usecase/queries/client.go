package queries

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/infra"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const TopCategoriesLimit = 10

type ClientView struct {
	ID                 uuid.UUID `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	IdentificationType string    `json:"identification_type"`
	Identification     string    `json:"identification"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}

type ClientProfile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Favorites     int       `json:"favorites"`
	Cuponeras     int       `json:"cuponeras"`
	Scans         int       `json:"scans"`
	Cities        []string  `json:"cities"`
	TopCategories []string  `json:"top_categories"`
}

type ClientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	CountFavorites(ctx context.Context, clientID uuid.UUID) (int, error)
	CountCoupons(ctx context.Context, clientID uuid.UUID) (int, error)
	CountScans(ctx context.Context, clientID uuid.UUID) (int, error)
	// CityNames lists the distinct cities of the batches the client's coupons belong to.
	CityNames(ctx context.Context, clientID uuid.UUID) ([]string, error)
	// TopCategories ranks categories of the actors that redeemed the client's coupons.
	TopCategories(ctx context.Context, clientID uuid.UUID, limit int) ([]string, error)
}

type ClientQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	Profile(ctx context.Context, clientID uuid.UUID) (*ClientProfile, error)
}

type clientQueriesImpl struct {
	store ClientReadStore
}

func NewClientQueries(store ClientReadStore) ClientQueries {
	return &clientQueriesImpl{store: store}
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	c, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *clientQueriesImpl) Profile(ctx context.Context, clientID uuid.UUID) (*ClientProfile, error) {
	c, err := q.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	p := &ClientProfile{ID: c.ID, Name: fullName(c.FirstName, c.LastName), Email: c.Email}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		p.Favorites, err = q.store.CountFavorites(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		p.Cuponeras, err = q.store.CountCoupons(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		p.Scans, err = q.store.CountScans(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		p.Cities, err = q.store.CityNames(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		p.TopCategories, err = q.store.TopCategories(gctx, clientID, TopCategoriesLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return p, nil
}

func fullName(first, last string) string {
	if last == "" {
		return first
	}
	if first == "" {
		return last
	}
	return first + " " + last
}
