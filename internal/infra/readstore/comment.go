package readstore

import (
	"context"

	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

const commentViewSelect = `
	SELECT cm.id, cm.actor_id, cm.client_id, trim(cl.first_name || ' ' || cl.last_name), cm.rating, cm.text,
		cm.created_at, cm.updated_at
	FROM comments cm
	JOIN clients cl ON cl.id = cm.client_id`

type CommentReadStore struct {
	db       db.DBTX
	commands *CommandReadStore
}

func NewCommentReadStore(db db.DBTX) *CommentReadStore {
	return &CommentReadStore{db: db, commands: NewCommandReadStore(db)}
}

func (r *CommentReadStore) ListByActor(ctx context.Context, actorID uuid.UUID, offset, limit int) ([]*queries.CommentView, int, error) {
	total, err := count(ctx, r.db, "failed to count comments", `SELECT count(*) FROM comments WHERE actor_id = $1`, actorID)
	if err != nil {
		return nil, 0, err
	}
	items, err := collect(ctx, r.db, "failed to list comments", scanCommentView, commentViewSelect+`
		WHERE cm.actor_id = $1
		ORDER BY cm.created_at DESC, cm.id
		OFFSET $2 LIMIT $3`, actorID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CommentReadStore) Recent(ctx context.Context, actorID uuid.UUID, limit int) ([]*queries.CommentView, error) {
	return collect(ctx, r.db, "failed to list recent comments", scanCommentView, commentViewSelect+`
		WHERE cm.actor_id = $1
		ORDER BY cm.created_at DESC, cm.id
		LIMIT $2`, actorID, limit)
}

func (r *CommentReadStore) FindByPair(ctx context.Context, actorID, clientID uuid.UUID) (*queries.CommentView, error) {
	v, err := scanCommentView(r.db.QueryRow(ctx, commentViewSelect+`
		WHERE cm.actor_id = $1 AND cm.client_id = $2`, actorID, clientID))
	if err != nil {
		return nil, wrapFind("comment", err)
	}
	return v, nil
}

func (r *CommentReadStore) ClientRedeemedWith(ctx context.Context, clientID, actorID uuid.UUID) (bool, error) {
	return r.commands.ClientRedeemedWith(ctx, clientID, actorID)
}

func scanCommentView(row rowScanner) (*queries.CommentView, error) {
	var v queries.CommentView
	if err := row.Scan(&v.ID, &v.ActorID, &v.ClientID, &v.ClientName, &v.Rating, &v.Text,
		&v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
