package commands

import (
	"context"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/domain/comment"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var commentErrs = repoErrs{
	notFound:  comment.ErrNotFound,
	duplicate: comment.ErrAlreadyCommented,
	byConstraint: map[string]error{
		"comments_actor_id_fkey":  actor.ErrNotFound,
		"comments_client_id_fkey": client.ErrNotFound,
		"comments_rating_check":   comment.ErrInvalidRating,
	},
}

// CommentResult is the written comment plus the aggregate it produced.
type CommentResult struct {
	CommentID uuid.UUID
	ActorID   uuid.UUID
	ClientID  uuid.UUID
	Rating    int
	Text      string
	Aggregate actor.Rating
}

type CommentEdit struct {
	Rating *int
	Text   *string
}

type CommentCommands interface {
	Create(ctx context.Context, actorID, clientID uuid.UUID, rating int, text string) (*CommentResult, error)
	Update(ctx context.Context, commentID uuid.UUID, edit CommentEdit) (*CommentResult, error)
	Delete(ctx context.Context, commentID uuid.UUID) (actor.Rating, error)
	UpsertMine(ctx context.Context, actorID, clientID uuid.UUID, rating int, text string) (*CommentResult, error)
	DeleteMine(ctx context.Context, actorID, clientID uuid.UUID) (actor.Rating, error)
}

type commentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentCommands(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentCommandsImpl{uow: uow, clock: clk}
}

func (uc *commentCommandsImpl) Create(ctx context.Context, actorID, clientID uuid.UUID, rating int, text string) (*CommentResult, error) {
	var res *CommentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) (err error) {
		res, err = uc.create(ctx, tx, actorID, clientID, rating, text)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *commentCommandsImpl) Update(ctx context.Context, commentID uuid.UUID, edit CommentEdit) (*CommentResult, error) {
	var res *CommentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Comments().LockByID(ctx, tx.DB(), commentID)
		if err != nil {
			return translate(err, commentErrs)
		}
		res, err = uc.edit(ctx, tx, c, edit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *commentCommandsImpl) Delete(ctx context.Context, commentID uuid.UUID) (actor.Rating, error) {
	var agg actor.Rating
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Comments().LockByID(ctx, tx.DB(), commentID)
		if err != nil {
			return translate(err, commentErrs)
		}
		agg, err = uc.remove(ctx, tx, c)
		return err
	})
	if err != nil {
		return actor.Rating{}, err
	}
	return agg, nil
}

// UpsertMine creates the client's comment when eligible, or edits the existing one.
func (uc *commentCommandsImpl) UpsertMine(ctx context.Context, actorID, clientID uuid.UUID, rating int, text string) (*CommentResult, error) {
	var res *CommentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := uc.lockMine(ctx, tx, actorID, clientID)
		if err != nil {
			return err
		}
		if c == nil {
			res, err = uc.create(ctx, tx, actorID, clientID, rating, text)
			return err
		}
		res, err = uc.edit(ctx, tx, c, CommentEdit{Rating: &rating, Text: &text})
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *commentCommandsImpl) DeleteMine(ctx context.Context, actorID, clientID uuid.UUID) (actor.Rating, error) {
	var agg actor.Rating
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := uc.lockMine(ctx, tx, actorID, clientID)
		if err != nil {
			return err
		}
		if c == nil {
			return comment.ErrNotFound
		}
		agg, err = uc.remove(ctx, tx, c)
		return err
	})
	if err != nil {
		return actor.Rating{}, err
	}
	return agg, nil
}

func (uc *commentCommandsImpl) create(ctx context.Context, tx shared.Tx, actorID, clientID uuid.UUID, rating int, text string) (*CommentResult, error) {
	c, err := comment.NewComment(actorID, clientID, rating, text, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	eligible, err := tx.Reads().ClientRedeemedWith(ctx, clientID, actorID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, comment.ErrNotEligible
	}
	if err := tx.Comments().Create(ctx, tx.DB(), c); err != nil {
		return nil, translate(err, commentErrs)
	}
	agg, err := tx.Ratings().Apply(ctx, tx.DB(), actorID, comment.Add(c.Rating()))
	if err != nil {
		return nil, translate(err, repoErrs{notFound: actor.ErrNotFound})
	}
	return resultOf(c, agg), nil
}

func (uc *commentCommandsImpl) edit(ctx context.Context, tx shared.Tx, c *comment.Comment, edit CommentEdit) (*CommentResult, error) {
	delta, err := c.Edit(edit.Rating, edit.Text, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := tx.Comments().Update(ctx, tx.DB(), c); err != nil {
		return nil, translate(err, commentErrs)
	}
	var agg actor.Rating
	if delta.IsZero() {
		a, err := tx.Reads().ActorByID(ctx, c.ActorID())
		if err != nil {
			return nil, translate(err, repoErrs{notFound: actor.ErrNotFound})
		}
		agg = a.Rating()
	} else {
		agg, err = tx.Ratings().Apply(ctx, tx.DB(), c.ActorID(), delta)
		if err != nil {
			return nil, translate(err, repoErrs{notFound: actor.ErrNotFound})
		}
	}
	return resultOf(c, agg), nil
}

func (uc *commentCommandsImpl) remove(ctx context.Context, tx shared.Tx, c *comment.Comment) (actor.Rating, error) {
	if err := tx.Comments().Delete(ctx, tx.DB(), c.ID()); err != nil {
		return actor.Rating{}, translate(err, commentErrs)
	}
	agg, err := tx.Ratings().Apply(ctx, tx.DB(), c.ActorID(), comment.Remove(c.Rating()))
	if err != nil {
		return actor.Rating{}, translate(err, repoErrs{notFound: actor.ErrNotFound})
	}
	return agg, nil
}

// lockMine returns nil without error when the client has no comment for the actor.
func (uc *commentCommandsImpl) lockMine(ctx context.Context, tx shared.Tx, actorID, clientID uuid.UUID) (*comment.Comment, error) {
	c, err := tx.Comments().LockByPair(ctx, tx.DB(), actorID, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, translate(err, commentErrs)
	}
	return c, nil
}

func resultOf(c *comment.Comment, agg actor.Rating) *CommentResult {
	return &CommentResult{
		CommentID: c.ID(),
		ActorID:   c.ActorID(),
		ClientID:  c.ClientID(),
		Rating:    c.Rating().Value(),
		Text:      c.Text().String(),
		Aggregate: agg,
	}
}
