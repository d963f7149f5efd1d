package response

import (
	"cuponera-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CommentResultResponse struct {
	CommentID uuid.UUID      `json:"comment_id"`
	ActorID   uuid.UUID      `json:"actor_id"`
	ClientID  uuid.UUID      `json:"client_id"`
	Rating    int            `json:"rating"`
	Text      string         `json:"text"`
	Aggregate RatingResponse `json:"aggregate"`
}

func FromCommentResult(r *commands.CommentResult) *CommentResultResponse {
	return &CommentResultResponse{
		CommentID: r.CommentID,
		ActorID:   r.ActorID,
		ClientID:  r.ClientID,
		Rating:    r.Rating,
		Text:      r.Text,
		Aggregate: FromRating(r.Aggregate),
	}
}

type CommentRemovedResponse struct {
	Aggregate RatingResponse `json:"aggregate"`
}
