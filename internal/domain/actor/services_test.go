//go:build unit

package actor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	actors     map[uuid.UUID]*actor.Actor
	dependents map[uuid.UUID][]uuid.UUID
	err        error
}

func (d *fakeDirectory) FindByID(_ context.Context, id uuid.UUID) (*actor.Actor, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.actors[id], nil
}

func (d *fakeDirectory) DependentIDs(_ context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return d.dependents[id], nil
}

func newActor(role actor.Role, responsible *uuid.UUID) *actor.Actor {
	return actor.Reconstruct(actor.Snapshot{
		ID:                 uuid.New(),
		Name:               "Local",
		Role:               role,
		Active:             true,
		ResponsiblePartyID: responsible,
		CreatedAt:          time.Now(),
	})
}

func directoryWith(actors ...*actor.Actor) *fakeDirectory {
	d := &fakeDirectory{actors: map[uuid.UUID]*actor.Actor{}, dependents: map[uuid.UUID][]uuid.UUID{}}
	for _, a := range actors {
		d.actors[a.ID()] = a
		if rp := a.ResponsiblePartyID(); rp != nil {
			d.dependents[*rp] = append(d.dependents[*rp], a.ID())
		}
	}
	return d
}

func TestResolveBaseLocalAdmin(t *testing.T) {
	ctx := context.Background()
	local := newActor(actor.RoleLocal, nil)
	localID := local.ID()
	staff := newActor(actor.RoleStaff, &localID)
	ghostID := uuid.New()
	orphan := newActor(actor.RoleStaff, &ghostID)
	broken := newActor(actor.RoleStaff, nil)
	dir := directoryWith(local, staff, orphan, broken)

	testCases := []struct {
		name    string
		actorID uuid.UUID
		want    uuid.UUID
		errIs   error
		kind    error
	}{
		{name: "local resolves to itself", actorID: local.ID(), want: local.ID()},
		{name: "staff resolves to responsible", actorID: staff.ID(), want: local.ID()},
		{name: "missing actor", actorID: uuid.New(), errIs: actor.ErrNotFound, kind: errs.ErrNotFound},
		{name: "staff with missing responsible", actorID: orphan.ID(), errIs: actor.ErrResponsibleNotFound, kind: errs.ErrInvalidArgument},
		{name: "staff without responsible", actorID: broken.ID(), errIs: actor.ErrStaffWithoutResponsible, kind: errs.ErrInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := actor.ResolveBaseLocalAdmin(ctx, dir, tc.actorID)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, tc.kind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.ID())
		})
	}

	t.Run("lookup failure propagates", func(t *testing.T) {
		boom := errors.New("db down")
		_, err := actor.ResolveBaseLocalAdmin(ctx, &fakeDirectory{err: boom}, uuid.New())
		assert.ErrorIs(t, err, boom)
	})
}

func TestResolveGroup(t *testing.T) {
	ctx := context.Background()
	local := newActor(actor.RoleLocal, nil)
	localID := local.ID()
	staffA := newActor(actor.RoleStaff, &localID)
	staffB := newActor(actor.RoleStaff, &localID)
	otherLocal := newActor(actor.RoleLocal, nil)
	dir := directoryWith(local, staffA, staffB, otherLocal)

	want := []uuid.UUID{local.ID(), staffA.ID(), staffB.ID()}

	for _, start := range []*actor.Actor{local, staffA, staffB} {
		g, err := actor.ResolveGroup(ctx, dir, start.ID())
		require.NoError(t, err)
		assert.Equal(t, local.ID(), g.Root.ID())
		if diff := cmp.Diff(want, g.Members); diff != "" {
			t.Errorf("group mismatch from %s (-want +got):\n%s", start.ID(), diff)
		}
		assert.True(t, g.Contains(start.ID()))
		assert.False(t, g.Contains(otherLocal.ID()))
	}

	g, err := actor.ResolveGroup(ctx, dir, otherLocal.ID())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{otherLocal.ID()}, g.Members)
}

func TestNewActor(t *testing.T) {
	responsible := uuid.New()
	base := actor.NewActorInput{Name: "Café Quito", Email: " Owner@Cafe.EC ", Role: actor.RoleLocal}

	a, err := actor.NewActor(base, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "owner@cafe.ec", a.Email())
	assert.NotNil(t, a.CityIDs())
	assert.True(t, a.Rating().Average.IsZero())

	testCases := []struct {
		name   string
		mutate func(*actor.NewActorInput)
		errIs  error
	}{
		{name: "blank name", mutate: func(in *actor.NewActorInput) { in.Name = " " }, errIs: actor.ErrBlankName},
		{name: "bad email", mutate: func(in *actor.NewActorInput) { in.Email = "nope" }, errIs: actor.ErrInvalidEmail},
		{name: "bad role", mutate: func(in *actor.NewActorInput) { in.Role = "OWNER" }, errIs: actor.ErrInvalidRole},
		{name: "staff needs responsible", mutate: func(in *actor.NewActorInput) { in.Role = actor.RoleStaff }, errIs: actor.ErrStaffWithoutResponsible},
		{name: "staff with responsible", mutate: func(in *actor.NewActorInput) {
			in.Role = actor.RoleStaff
			in.ResponsiblePartyID = &responsible
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := actor.NewActor(in, time.Now())
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
