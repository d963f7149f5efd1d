package queries

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/catalog"
	"cuponera-backend/internal/infra"

	"github.com/google/uuid"
)

const DefaultCatalogLimit = 50

type CityView struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Active                 bool      `json:"active"`
	VisibleForRegistration bool      `json:"visible_for_registration"`
	Geo                    *GeoView  `json:"geo,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type GeoView struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CategoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CatalogFilter narrows admin listings. Query matches names case-insensitively.
type CatalogFilter struct {
	Query  string
	Active *bool
	Page   int
	Limit  int
}

func (f CatalogFilter) normalized() CatalogFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultCatalogLimit
	case f.Limit > MaxListLimit:
		f.Limit = MaxListLimit
	}
	return f
}

func (f CatalogFilter) Offset() int { return (f.Page - 1) * f.Limit }

type CatalogPage[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type CatalogReadStore interface {
	ListCities(ctx context.Context, f CatalogFilter) ([]*CityView, int, error)
	FindCity(ctx context.Context, id uuid.UUID) (*CityView, error)
	// RegistrationCities lists cities flagged visible for sign-up forms.
	RegistrationCities(ctx context.Context) ([]CityRef, error)
	ActiveCities(ctx context.Context) ([]CityRef, error)
	ListCategories(ctx context.Context, f CatalogFilter) ([]*CategoryView, int, error)
	FindCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	ActiveCategories(ctx context.Context) ([]CategoryRef, error)
	CitiesByIDs(ctx context.Context, ids []uuid.UUID) ([]CityRef, error)
	CategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]CategoryRef, error)
}

type CatalogQueries interface {
	// Cities lists active cities for the public pickers.
	Cities(ctx context.Context) ([]CityRef, error)
	RegistrationCities(ctx context.Context) ([]CityRef, error)
	// PromotionCities feeds the city filter of the promotions screen.
	PromotionCities(ctx context.Context) ([]CityRef, error)
	Categories(ctx context.Context) ([]CategoryRef, error)

	ListCities(ctx context.Context, f CatalogFilter) (*CatalogPage[*CityView], error)
	GetCity(ctx context.Context, id uuid.UUID) (*CityView, error)
	ListCategories(ctx context.Context, f CatalogFilter) (*CatalogPage[*CategoryView], error)
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) Cities(ctx context.Context) ([]CityRef, error) {
	return q.store.ActiveCities(ctx)
}

func (q *catalogQueriesImpl) RegistrationCities(ctx context.Context) ([]CityRef, error) {
	return q.store.RegistrationCities(ctx)
}

func (q *catalogQueriesImpl) PromotionCities(ctx context.Context) ([]CityRef, error) {
	return q.store.ActiveCities(ctx)
}

func (q *catalogQueriesImpl) Categories(ctx context.Context) ([]CategoryRef, error) {
	return q.store.ActiveCategories(ctx)
}

func (q *catalogQueriesImpl) ListCities(ctx context.Context, f CatalogFilter) (*CatalogPage[*CityView], error) {
	f = f.normalized()
	items, total, err := q.store.ListCities(ctx, f)
	if err != nil {
		return nil, err
	}
	return &CatalogPage[*CityView]{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (q *catalogQueriesImpl) GetCity(ctx context.Context, id uuid.UUID) (*CityView, error) {
	v, err := q.store.FindCity(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrCityNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context, f CatalogFilter) (*CatalogPage[*CategoryView], error) {
	f = f.normalized()
	items, total, err := q.store.ListCategories(ctx, f)
	if err != nil {
		return nil, err
	}
	return &CatalogPage[*CategoryView]{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (q *catalogQueriesImpl) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	v, err := q.store.FindCategory(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, err
	}
	return v, nil
}
