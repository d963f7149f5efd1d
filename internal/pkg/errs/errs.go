package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Kind builds a sentinel that also matches one of the taxonomy kinds via errors.Is.
func Kind(kind error, msg string) error {
	return cr.Mark(cr.New(msg), kind)
}

// WithCause returns sentinel with cause attached as detail. The sentinel stays in the Unwrap chain.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return cr.WithSecondaryError(sentinel, cause)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
