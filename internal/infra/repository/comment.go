package repository

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/comment"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"

	"github.com/google/uuid"
)

const commentColumns = `id, actor_id, client_id, rating, text, created_at, updated_at`

type CommentRepository struct{}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, tx db.DBTX, c *comment.Comment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO comments (id, actor_id, client_id, rating, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID(), c.ActorID(), c.ClientID(), c.Rating().Value(), c.Text().String(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create comment", err)
	}
	return nil
}

func (r *CommentRepository) Update(ctx context.Context, tx db.DBTX, c *comment.Comment) error {
	return execOne(ctx, tx, "comment not found", "failed to update comment", `
		UPDATE comments SET rating = $2, text = $3, updated_at = $4 WHERE id = $1`,
		c.ID(), c.Rating().Value(), c.Text().String(), c.UpdatedAt(),
	)
}

func (r *CommentRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "comment not found", "failed to delete comment", `DELETE FROM comments WHERE id = $1`, id)
}

// LockByID holds the row so the rating delta is computed from the committed value.
func (r *CommentRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*comment.Comment, error) {
	c, err := scanComment(tx.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock comment", err)
	}
	return c, nil
}

func (r *CommentRepository) LockByPair(ctx context.Context, tx db.DBTX, actorID, clientID uuid.UUID) (*comment.Comment, error) {
	c, err := scanComment(tx.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE actor_id = $1 AND client_id = $2 FOR UPDATE`, actorID, clientID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock comment", err)
	}
	return c, nil
}

func scanComment(row rowScanner) (*comment.Comment, error) {
	var (
		id, actorID, clientID uuid.UUID
		rating                int
		text                  string
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(&id, &actorID, &clientID, &rating, &text, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return comment.Reconstruct(id, actorID, clientID, rating, text, createdAt, updatedAt), nil
}
