package request

import (
	"cuponera-backend/internal/domain/share"

	"github.com/google/uuid"
)

type ShareRequest struct {
	ActorID          uuid.UUID `json:"actor_id" binding:"required"`
	Channel          string    `json:"channel" binding:"required"`
	DestinationPhone string    `json:"destination_phone" binding:"max=20"`
	Message          string    `json:"message" binding:"max=1000"`
	Origin           string    `json:"origin" binding:"max=50"`
	OriginID         string    `json:"origin_id" binding:"max=100"`
}

// ToInput attaches the sharing client when the request is authenticated as one.
func (r *ShareRequest) ToInput(clientID *uuid.UUID) share.NewShareInput {
	return share.NewShareInput{
		ClientID:         clientID,
		ActorID:          r.ActorID,
		Channel:          r.Channel,
		DestinationPhone: r.DestinationPhone,
		Message:          r.Message,
		Origin:           r.Origin,
		OriginID:         r.OriginID,
	}
}
