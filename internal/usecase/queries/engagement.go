package queries

import (
	"context"

	"cuponera-backend/internal/domain/share"

	"github.com/google/uuid"
)

type ShareSummary struct {
	Total     int            `json:"total"`
	ByChannel ChannelSummary `json:"by_channel"`
}

type ChannelSummary struct {
	Whatsapp int `json:"whatsapp"`
	Sistema  int `json:"sistema"`
}

type FavoriteReadStore interface {
	ListActorIDs(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error)
	ListDetailed(ctx context.Context, clientID uuid.UUID) ([]*PlaceView, error)
}

type ShareReadStore interface {
	CountByChannel(ctx context.Context, actorID uuid.UUID) (map[share.Channel]int, error)
}

type FavoriteQueries interface {
	ListActorIDs(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error)
	ListDetailed(ctx context.Context, clientID uuid.UUID) ([]*PlaceView, error)
}

type ShareQueries interface {
	SummaryByActor(ctx context.Context, actorID uuid.UUID) (*ShareSummary, error)
}

type favoriteQueriesImpl struct {
	store FavoriteReadStore
}

func NewFavoriteQueries(store FavoriteReadStore) FavoriteQueries {
	return &favoriteQueriesImpl{store: store}
}

func (q *favoriteQueriesImpl) ListActorIDs(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error) {
	return q.store.ListActorIDs(ctx, clientID)
}

func (q *favoriteQueriesImpl) ListDetailed(ctx context.Context, clientID uuid.UUID) ([]*PlaceView, error) {
	return q.store.ListDetailed(ctx, clientID)
}

type shareQueriesImpl struct {
	store ShareReadStore
}

func NewShareQueries(store ShareReadStore) ShareQueries {
	return &shareQueriesImpl{store: store}
}

func (q *shareQueriesImpl) SummaryByActor(ctx context.Context, actorID uuid.UUID) (*ShareSummary, error) {
	counts, err := q.store.CountByChannel(ctx, actorID)
	if err != nil {
		return nil, err
	}
	s := &ShareSummary{
		ByChannel: ChannelSummary{
			Whatsapp: counts[share.ChannelWhatsapp],
			Sistema:  counts[share.ChannelSistema],
		},
	}
	for _, n := range counts {
		s.Total += n
	}
	return s, nil
}
