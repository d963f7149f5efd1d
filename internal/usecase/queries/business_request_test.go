//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cuponera-backend/internal/domain/businessrequest"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestStoreMock struct{ mock.Mock }

func (m *requestStoreMock) FindByID(ctx context.Context, id uuid.UUID) (*queries.BusinessRequestView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.BusinessRequestView)
	return v, args.Error(1)
}

func (m *requestStoreMock) EmailTaken(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *requestStoreMock) List(ctx context.Context, status string, after *queries.RequestPageKey, limit int32) ([]*queries.BusinessRequestView, error) {
	args := m.Called(ctx, status, after, limit)
	v, _ := args.Get(0).([]*queries.BusinessRequestView)
	return v, args.Error(1)
}

func TestBusinessRequestQueries_EmailAvailable(t *testing.T) {
	store := &requestStoreMock{}
	store.On("EmailTaken", mock.Anything, "ventas@correo.ec").Return(true, nil).Once()
	store.On("EmailTaken", mock.Anything, "nuevo@correo.ec").Return(false, nil).Once()
	q := queries.NewBusinessRequestQueries(store)

	ok, err := q.EmailAvailable(context.Background(), " Ventas@Correo.ec")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = q.EmailAvailable(context.Background(), "nuevo@correo.ec")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = q.EmailAvailable(context.Background(), "sin-arroba")
	assert.Error(t, err)
	store.AssertExpectations(t)
}

func TestBusinessRequestQueries_List(t *testing.T) {
	base := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	rows := make([]*queries.BusinessRequestView, 3)
	for i := range rows {
		rows[i] = &queries.BusinessRequestView{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}

	store := &requestStoreMock{}
	store.On("List", mock.Anything, "PENDIENTE", (*queries.RequestPageKey)(nil), int32(3)).Return(rows, nil).Once()
	q := queries.NewBusinessRequestQueries(store)

	items, next, err := q.List(context.Background(), "PENDIENTE", nil, 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	require.NotNil(t, next)

	store.On("List", mock.Anything, "PENDIENTE", mock.MatchedBy(func(k *queries.RequestPageKey) bool {
		return k != nil && k.ID == rows[1].ID && k.CreatedAt.Equal(rows[1].CreatedAt)
	}), int32(3)).Return(rows[2:], nil).Once()
	items, next, err = q.List(context.Background(), "PENDIENTE", next, 2)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Nil(t, next)
	store.AssertExpectations(t)

	_, _, err = q.List(context.Background(), "ARCHIVADO", nil, 2)
	assert.ErrorIs(t, err, businessrequest.ErrInvalidStatus)
	_, _, err = q.List(context.Background(), "", &queries.Cursor{After: "%%%"}, 2)
	assert.ErrorIs(t, err, queries.ErrInvalidCursor)
}
