package share

import (
	"strings"
	"time"

	"cuponera-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidChannel = errs.Kind(errs.ErrInvalidArgument, "channel must be whatsapp or sistema")

type Channel string

const (
	ChannelWhatsapp Channel = "whatsapp"
	ChannelSistema  Channel = "sistema"
)

func ParseChannel(s string) (Channel, error) {
	ch := Channel(strings.ToLower(strings.TrimSpace(s)))
	switch ch {
	case ChannelWhatsapp, ChannelSistema:
		return ch, nil
	default:
		return "", ErrInvalidChannel
	}
}

// Share records a client promoting a business through one channel.
type Share struct {
	ID               uuid.UUID
	ClientID         *uuid.UUID
	ActorID          uuid.UUID
	Channel          Channel
	DestinationPhone string
	Message          string
	Origin           string
	OriginID         string
	CreatedAt        time.Time
}

type NewShareInput struct {
	ClientID         *uuid.UUID
	ActorID          uuid.UUID
	Channel          string
	DestinationPhone string
	Message          string
	Origin           string
	OriginID         string
}

func NewShare(in NewShareInput, now time.Time) (*Share, error) {
	ch, err := ParseChannel(in.Channel)
	if err != nil {
		return nil, err
	}
	return &Share{
		ID:               uuid.New(),
		ClientID:         in.ClientID,
		ActorID:          in.ActorID,
		Channel:          ch,
		DestinationPhone: strings.TrimSpace(in.DestinationPhone),
		Message:          strings.TrimSpace(in.Message),
		Origin:           strings.TrimSpace(in.Origin),
		OriginID:         strings.TrimSpace(in.OriginID),
		CreatedAt:        now,
	}, nil
}
