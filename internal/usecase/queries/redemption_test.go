//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/pkg/localtime"
	"cuponera-backend/internal/pkg/ptr"
	"cuponera-backend/internal/usecase/queries"
	"cuponera-backend/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sameInstant(want time.Time) any {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

type redemptionStoreMock struct{ mock.Mock }

func (m *redemptionStoreMock) ListByRange(ctx context.Context, from, to time.Time) ([]*queries.RedemptionView, error) {
	args := m.Called(ctx, from, to)
	v, _ := args.Get(0).([]*queries.RedemptionView)
	return v, args.Error(1)
}

func (m *redemptionStoreMock) ListByActors(ctx context.Context, actorIDs []uuid.UUID, w queries.Window) ([]*queries.RedemptionView, error) {
	args := m.Called(ctx, actorIDs, w)
	v, _ := args.Get(0).([]*queries.RedemptionView)
	return v, args.Error(1)
}

func (m *redemptionStoreMock) CountByCoupon(ctx context.Context, couponID uuid.UUID) (int, error) {
	args := m.Called(ctx, couponID)
	return args.Int(0), args.Error(1)
}

// directory is a fixed actor tree.
type directory map[uuid.UUID]*actor.Actor

func (d directory) FindByID(_ context.Context, id uuid.UUID) (*actor.Actor, error) {
	return d[id], nil
}

func (d directory) DependentIDs(_ context.Context, responsibleID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, a := range d {
		if p := a.ResponsiblePartyID(); p != nil && *p == responsibleID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func TestRedemptionQueries_ListByDateRange(t *testing.T) {
	// 23:30 local on March 9 is already March 10 in UTC.
	start := time.Date(2025, 3, 10, 4, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	store := &redemptionStoreMock{}
	store.On("ListByRange", mock.Anything,
		sameInstant(time.Date(2025, 3, 9, 0, 0, 0, 0, localtime.Zone)),
		sameInstant(time.Date(2025, 3, 13, 0, 0, 0, 0, localtime.Zone)),
	).Return([]*queries.RedemptionView{{Sequence: 4}}, nil).Once()

	rows, err := queries.NewRedemptionQueries(store, directory{}).ListByDateRange(context.Background(), start, end)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	store.AssertExpectations(t)

	_, err = queries.NewRedemptionQueries(store, directory{}).ListByDateRange(context.Background(), end, start)
	assert.ErrorIs(t, err, localtime.ErrInvalidRange)
}

func TestRedemptionQueries_ListByGroup(t *testing.T) {
	local := builder.NewActorBuilder().Build()
	staff := builder.NewActorBuilder().With(func(b *builder.ActorBuilder) { b.Email = "staff@cuponera.ec" }).AsStaffOf(local.ID()).Build()
	dir := directory{local.ID(): local, staff.ID(): staff}

	isGroup := mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 2 && ids[0] == local.ID() && ids[1] == staff.ID()
	})

	t.Run("staff sees the whole group", func(t *testing.T) {
		store := &redemptionStoreMock{}
		store.On("ListByActors", mock.Anything, isGroup, queries.Window{}).
			Return([]*queries.RedemptionView{{ActorID: local.ID()}, {ActorID: staff.ID()}}, nil).Once()

		rows, err := queries.NewRedemptionQueries(store, dir).ListByGroup(context.Background(), staff.ID(), queries.DateRange{})
		require.NoError(t, err)
		assert.Len(t, rows, 2)
		store.AssertExpectations(t)
	})

	t.Run("bounds widen to local days", func(t *testing.T) {
		day := time.Date(2025, 3, 10, 0, 0, 0, 0, localtime.Zone)
		store := &redemptionStoreMock{}
		store.On("ListByActors", mock.Anything, isGroup, mock.MatchedBy(func(w queries.Window) bool {
			return w.From != nil && w.Until != nil &&
				w.From.Equal(day) &&
				w.Until.Equal(day.AddDate(0, 0, 1))
		})).Return([]*queries.RedemptionView{}, nil).Once()

		_, err := queries.NewRedemptionQueries(store, dir).ListByGroup(context.Background(), local.ID(),
			queries.DateRange{From: ptr.To(day.Add(9 * time.Hour)), To: ptr.To(day.Add(10 * time.Hour))})
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("reversed bounds", func(t *testing.T) {
		_, err := queries.NewRedemptionQueries(&redemptionStoreMock{}, dir).ListByGroup(context.Background(), local.ID(),
			queries.DateRange{From: ptr.To(time.Now()), To: ptr.To(time.Now().AddDate(0, 0, -2))})
		assert.ErrorIs(t, err, localtime.ErrInvalidRange)
	})

	t.Run("unknown actor", func(t *testing.T) {
		_, err := queries.NewRedemptionQueries(&redemptionStoreMock{}, dir).ListByGroup(context.Background(), uuid.New(), queries.DateRange{})
		assert.ErrorIs(t, err, actor.ErrNotFound)
	})
}
