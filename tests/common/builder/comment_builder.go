//go:build unit || e2e

package builder

import (
	"time"

	"cuponera-backend/internal/domain/comment"
	reqdto "cuponera-backend/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CommentBuilder struct {
	ActorID  uuid.UUID
	ClientID uuid.UUID
	Rating   int
	Text     string
	Now      time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ActorID:  uuid.New(),
		ClientID: uuid.New(),
		Rating:   5,
		Text:     "Muy buena atención",
		Now:      time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
	}
}

func (b *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(b)
	return b
}

func (b *CommentBuilder) WithRating(rating int) *CommentBuilder {
	b.Rating = rating
	return b
}

func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.Text = text
	return b
}

func (b *CommentBuilder) BuildDomain() (*comment.Comment, error) {
	return comment.NewComment(b.ActorID, b.ClientID, b.Rating, b.Text, b.Now)
}

func (b *CommentBuilder) BuildCreateRequestDTO() reqdto.CreateCommentRequest {
	return reqdto.CreateCommentRequest{
		ActorID: b.ActorID,
		Rating:  b.Rating,
		Text:    b.Text,
	}
}
