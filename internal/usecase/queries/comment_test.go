//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentStoreMock struct{ mock.Mock }

func (m *commentStoreMock) ListByActor(ctx context.Context, actorID uuid.UUID, offset, limit int) ([]*queries.CommentView, int, error) {
	args := m.Called(ctx, actorID, offset, limit)
	v, _ := args.Get(0).([]*queries.CommentView)
	return v, args.Int(1), args.Error(2)
}

func (m *commentStoreMock) Recent(ctx context.Context, actorID uuid.UUID, limit int) ([]*queries.CommentView, error) {
	args := m.Called(ctx, actorID, limit)
	v, _ := args.Get(0).([]*queries.CommentView)
	return v, args.Error(1)
}

func (m *commentStoreMock) FindByPair(ctx context.Context, actorID, clientID uuid.UUID) (*queries.CommentView, error) {
	args := m.Called(ctx, actorID, clientID)
	v, _ := args.Get(0).(*queries.CommentView)
	return v, args.Error(1)
}

func (m *commentStoreMock) ClientRedeemedWith(ctx context.Context, clientID, actorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clientID, actorID)
	return args.Bool(0), args.Error(1)
}

func TestCommentQueries_ListByActor(t *testing.T) {
	actorID := uuid.New()

	testCases := []struct {
		name        string
		page, limit int
		offset      int
		wantLimit   int
		wantPage    int
		total       int
		totalPages  int
	}{
		{name: "defaults", page: 0, limit: 0, offset: 0, wantLimit: queries.DefaultCommentPageSize, wantPage: 1, total: 0, totalPages: 0},
		{name: "third page", page: 3, limit: 5, offset: 10, wantLimit: 5, wantPage: 3, total: 11, totalPages: 3},
		{name: "limit capped", page: 1, limit: 1000, offset: 0, wantLimit: queries.MaxCommentPageSize, wantPage: 1, total: 100, totalPages: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &commentStoreMock{}
			store.On("ListByActor", mock.Anything, actorID, tc.offset, tc.wantLimit).
				Return([]*queries.CommentView{}, tc.total, nil).Once()

			page, err := queries.NewCommentQueries(store).ListByActor(context.Background(), actorID, tc.page, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, page.Page)
			assert.Equal(t, tc.wantLimit, page.Limit)
			assert.Equal(t, tc.total, page.Total)
			assert.Equal(t, tc.totalPages, page.TotalPages)
			store.AssertExpectations(t)
		})
	}
}

func TestCommentQueries_Eligibility(t *testing.T) {
	actorID, clientID := uuid.New(), uuid.New()

	t.Run("eligible without comment", func(t *testing.T) {
		store := &commentStoreMock{}
		store.On("FindByPair", mock.Anything, actorID, clientID).Return(nil, infra.WrapRepoErr("comment not found", nil, infra.KindNotFound))
		store.On("ClientRedeemedWith", mock.Anything, clientID, actorID).Return(true, nil)

		res, err := queries.NewCommentQueries(store).Eligibility(context.Background(), actorID, clientID)
		require.NoError(t, err)
		assert.Equal(t, &queries.CommentEligibility{Eligible: true}, res)
	})

	t.Run("existing comment is returned", func(t *testing.T) {
		mine := &queries.CommentView{ID: uuid.New(), Rating: 4}
		store := &commentStoreMock{}
		store.On("FindByPair", mock.Anything, actorID, clientID).Return(mine, nil)
		store.On("ClientRedeemedWith", mock.Anything, clientID, actorID).Return(true, nil)

		res, err := queries.NewCommentQueries(store).Eligibility(context.Background(), actorID, clientID)
		require.NoError(t, err)
		assert.True(t, res.HasComment)
		assert.Same(t, mine, res.Comment)
	})

	t.Run("storage failure", func(t *testing.T) {
		boom := errors.New("connection refused")
		store := &commentStoreMock{}
		store.On("FindByPair", mock.Anything, actorID, clientID).Return(nil, boom)

		_, err := queries.NewCommentQueries(store).Eligibility(context.Background(), actorID, clientID)
		assert.ErrorIs(t, err, boom)
	})
}
