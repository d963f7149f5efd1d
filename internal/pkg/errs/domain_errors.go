package errs

import "errors"

// Failure kinds surfaced to callers. Every domain and usecase error is marked with one of them.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

// KindOf returns the taxonomy kind carried by err, or nil for unexpected failures.
func KindOf(err error) error {
	for _, k := range []error{ErrNotFound, ErrInvalidState, ErrInvalidArgument, ErrConflict} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}

func KindName(err error) string {
	switch KindOf(err) {
	case ErrNotFound:
		return "NotFound"
	case ErrInvalidState:
		return "InvalidState"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrConflict:
		return "Conflict"
	default:
		return "Internal"
	}
}
