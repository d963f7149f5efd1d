package comment

import "strings"

const MaxTextLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Text may be empty; a rating alone is a valid comment.
type Text struct {
	text string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if len([]rune(t)) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{text: t}, nil
}

func (t Text) String() string { return t.text }
