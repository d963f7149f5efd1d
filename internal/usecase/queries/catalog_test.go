//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cuponera-backend/internal/domain/catalog"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/pkg/ptr"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogStoreMock struct {
	queries.CatalogReadStore
	mock.Mock
}

func (m *catalogStoreMock) ListCities(ctx context.Context, f queries.CatalogFilter) ([]*queries.CityView, int, error) {
	args := m.Called(ctx, f)
	v, _ := args.Get(0).([]*queries.CityView)
	return v, args.Int(1), args.Error(2)
}

func (m *catalogStoreMock) FindCity(ctx context.Context, id uuid.UUID) (*queries.CityView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.CityView)
	return v, args.Error(1)
}

func (m *catalogStoreMock) FindCategory(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.CategoryView)
	return v, args.Error(1)
}

func (m *catalogStoreMock) ActiveCities(ctx context.Context) ([]queries.CityRef, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]queries.CityRef)
	return v, args.Error(1)
}

func TestCatalogQueries_ListCities(t *testing.T) {
	testCases := []struct {
		name      string
		in        queries.CatalogFilter
		wantPage  int
		wantLimit int
		offset    int
	}{
		{name: "defaults", in: queries.CatalogFilter{}, wantPage: 1, wantLimit: queries.DefaultCatalogLimit, offset: 0},
		{name: "second page", in: queries.CatalogFilter{Page: 2, Limit: 10}, wantPage: 2, wantLimit: 10, offset: 10},
		{name: "limit capped", in: queries.CatalogFilter{Page: 1, Limit: 5000}, wantPage: 1, wantLimit: queries.MaxListLimit, offset: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &catalogStoreMock{}
			store.On("ListCities", mock.Anything, mock.MatchedBy(func(f queries.CatalogFilter) bool {
				return f.Page == tc.wantPage && f.Limit == tc.wantLimit && f.Offset() == tc.offset
			})).Return([]*queries.CityView{{Name: "Ambato"}}, 7, nil).Once()

			page, err := queries.NewCatalogQueries(store).ListCities(context.Background(), tc.in)
			require.NoError(t, err)
			assert.Equal(t, 7, page.Total)
			assert.Equal(t, tc.wantPage, page.Page)
			assert.Equal(t, tc.wantLimit, page.Limit)
			assert.Len(t, page.Items, 1)
			store.AssertExpectations(t)
		})
	}
}

func TestCatalogQueries_FilterPassesThrough(t *testing.T) {
	store := &catalogStoreMock{}
	store.On("ListCities", mock.Anything, queries.CatalogFilter{Query: "amb", Active: ptr.To(false), Page: 1, Limit: 50}).
		Return([]*queries.CityView{}, 0, nil).Once()

	_, err := queries.NewCatalogQueries(store).ListCities(context.Background(), queries.CatalogFilter{Query: "amb", Active: ptr.To(false)})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestCatalogQueries_NotFound(t *testing.T) {
	missing := infra.WrapRepoErr("not found", nil, infra.KindNotFound)
	store := &catalogStoreMock{}
	store.On("FindCity", mock.Anything, mock.Anything).Return(nil, missing)
	store.On("FindCategory", mock.Anything, mock.Anything).Return(nil, missing)
	q := queries.NewCatalogQueries(store)

	_, err := q.GetCity(context.Background(), uuid.New())
	assert.ErrorIs(t, err, catalog.ErrCityNotFound)
	_, err = q.GetCategory(context.Background(), uuid.New())
	assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
}

func TestCatalogQueries_PromotionCitiesAreActiveCities(t *testing.T) {
	store := &catalogStoreMock{}
	active := []queries.CityRef{{ID: uuid.New(), Name: "Quito"}}
	store.On("ActiveCities", mock.Anything).Return(active, nil).Twice()
	q := queries.NewCatalogQueries(store)

	got, err := q.PromotionCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, active, got)
	got, err = q.Cities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, active, got)
	store.AssertExpectations(t)
}
