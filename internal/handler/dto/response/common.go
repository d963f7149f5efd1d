package response

import (
	"cuponera-backend/internal/domain/actor"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RatingResponse struct {
	Average decimal.Decimal `json:"average"`
	Count   int             `json:"count"`
}

func FromRating(r actor.Rating) RatingResponse {
	return RatingResponse{Average: r.Average, Count: r.Count}
}

type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

// NewItems keeps an empty result as [] in JSON.
func NewItems[T any](items []T) ItemsResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ItemsResponse[T]{Items: items}
}
