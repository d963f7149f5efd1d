package comment

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	id        uuid.UUID
	actorID   uuid.UUID
	clientID  uuid.UUID
	rating    Rating
	text      Text
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(actorID, clientID uuid.UUID, ratingValue int, text string, now time.Time) (*Comment, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	t, err := NewText(text)
	if err != nil {
		return nil, err
	}
	return &Comment{
		id:        uuid.New(),
		actorID:   actorID,
		clientID:  clientID,
		rating:    rating,
		text:      t,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, actorID, clientID uuid.UUID, rating int, text string, createdAt, updatedAt time.Time) *Comment {
	return &Comment{
		id:        id,
		actorID:   actorID,
		clientID:  clientID,
		rating:    Rating{value: rating},
		text:      Text{text: text},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Edit applies the provided fields and returns the aggregate change it causes.
// A nil field is left untouched.
func (c *Comment) Edit(ratingValue *int, text *string, now time.Time) (Delta, error) {
	if ratingValue == nil && text == nil {
		return Delta{}, ErrEmptyEdit
	}
	rating := c.rating
	if ratingValue != nil {
		r, err := NewRating(*ratingValue)
		if err != nil {
			return Delta{}, err
		}
		rating = r
	}
	t := c.text
	if text != nil {
		nt, err := NewText(*text)
		if err != nil {
			return Delta{}, err
		}
		t = nt
	}

	delta := Replace(c.rating, rating)
	c.rating = rating
	c.text = t
	c.updatedAt = now
	return delta, nil
}

func (c *Comment) ID() uuid.UUID        { return c.id }
func (c *Comment) ActorID() uuid.UUID   { return c.actorID }
func (c *Comment) ClientID() uuid.UUID  { return c.clientID }
func (c *Comment) Rating() Rating       { return c.rating }
func (c *Comment) Text() Text           { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }
