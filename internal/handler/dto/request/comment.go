package request

import (
	"cuponera-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	ActorID uuid.UUID `json:"actor_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Text    string    `json:"text" binding:"max=1000"`
}

type UpsertCommentRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"max=1000"`
}

type UpdateCommentRequest struct {
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Text   *string `json:"text" binding:"omitempty,max=1000"`
}

func (r *UpdateCommentRequest) ToEdit() commands.CommentEdit {
	return commands.CommentEdit{Rating: r.Rating, Text: r.Text}
}

type CommentPageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
