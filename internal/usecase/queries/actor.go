package queries

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/infra"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const BusinessMiniCommentLimit = 30

type ActorView struct {
	ID                 uuid.UUID     `json:"id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Identification     string        `json:"identification"`
	Role               string        `json:"role"`
	Active             bool          `json:"active"`
	ResponsiblePartyID *uuid.UUID    `json:"responsible_party_id,omitempty"`
	Phone              string        `json:"phone"`
	CityIDs            []uuid.UUID   `json:"city_ids"`
	CategoryIDs        []uuid.UUID   `json:"category_ids"`
	Promotion          PromotionView `json:"promotion"`
	Rating             RatingView    `json:"rating"`
	CreatedAt          time.Time     `json:"created_at"`
}

// BusinessMini is the compact business card shown to clients.
type BusinessMini struct {
	ActorID        uuid.UUID      `json:"actor_id"`
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	Promotion      PromotionView  `json:"promotion"`
	Cities         []CityRef      `json:"cities"`
	Categories     []CategoryRef  `json:"categories"`
	Rating         RatingView     `json:"rating"`
	RecentComments []*CommentView `json:"recent_comments"`
}

type ActorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ActorView, error)
	ListByResponsible(ctx context.Context, responsibleID uuid.UUID) ([]*ActorView, error)
	ListByCitiesWithPromo(ctx context.Context, cityIDs []uuid.UUID) ([]*PlaceView, error)
}

type ActorQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ActorView, error)
	ListByResponsible(ctx context.Context, actorID uuid.UUID) ([]*ActorView, error)
	ListByCitiesWithPromo(ctx context.Context, cityIDs []uuid.UUID) ([]*PlaceView, error)
	BusinessMini(ctx context.Context, actorID uuid.UUID) (*BusinessMini, error)
}

type actorQueriesImpl struct {
	store    ActorReadStore
	catalog  CatalogReadStore
	comments CommentReadStore
	dir      actor.Directory
}

func NewActorQueries(store ActorReadStore, catalog CatalogReadStore, comments CommentReadStore, dir actor.Directory) ActorQueries {
	return &actorQueriesImpl{store: store, catalog: catalog, comments: comments, dir: dir}
}

func (q *actorQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ActorView, error) {
	a, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, actor.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListByResponsible lists the dependents of the actor's base local-admin.
func (q *actorQueriesImpl) ListByResponsible(ctx context.Context, actorID uuid.UUID) ([]*ActorView, error) {
	base, err := actor.ResolveBaseLocalAdmin(ctx, q.dir, actorID)
	if err != nil {
		return nil, err
	}
	return q.store.ListByResponsible(ctx, base.ID())
}

func (q *actorQueriesImpl) ListByCitiesWithPromo(ctx context.Context, cityIDs []uuid.UUID) ([]*PlaceView, error) {
	if len(cityIDs) == 0 {
		return []*PlaceView{}, nil
	}
	return q.store.ListByCitiesWithPromo(ctx, cityIDs)
}

func (q *actorQueriesImpl) BusinessMini(ctx context.Context, actorID uuid.UUID) (*BusinessMini, error) {
	a, err := q.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	out := &BusinessMini{
		ActorID:   a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Promotion: a.Promotion,
		Rating:    a.Rating,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cities, err := q.catalog.CitiesByIDs(gctx, a.CityIDs)
		out.Cities = cities
		return err
	})
	g.Go(func() error {
		cats, err := q.catalog.CategoriesByIDs(gctx, a.CategoryIDs)
		out.Categories = cats
		return err
	})
	g.Go(func() error {
		recent, err := q.comments.Recent(gctx, actorID, BusinessMiniCommentLimit)
		out.RecentComments = recent
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
