package notification

import (
	"strings"
	"time"

	"cuponera-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errs.Kind(errs.ErrNotFound, "notification not found")
	ErrBlankTitle = errs.Kind(errs.ErrInvalidArgument, "title and body are required")
)

type Status string

const (
	StatusQueued Status = "QUEUED"
	StatusSent   Status = "SENT"
	StatusFailed Status = "FAILED"
)

// Notification is a push message. A nil ClientID addresses every client.
type Notification struct {
	ID       uuid.UUID
	ClientID *uuid.UUID
	Title    string
	Body     string
	Image    string
	Link     string
	Status   Status
	SentAt   time.Time
}

func NewNotification(title, body, image, link string, clientID *uuid.UUID, now time.Time) (*Notification, error) {
	title, body = strings.TrimSpace(title), strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, ErrBlankTitle
	}
	return &Notification{
		ID:       uuid.New(),
		ClientID: clientID,
		Title:    title,
		Body:     body,
		Image:    strings.TrimSpace(image),
		Link:     strings.TrimSpace(link),
		Status:   StatusQueued,
		SentAt:   now,
	}, nil
}

func (n *Notification) IsBroadcast() bool {
	return n.ClientID == nil
}
