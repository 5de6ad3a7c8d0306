package models

import "errors"

// Failure kinds surfaced across the service boundary. Handlers map these to
// HTTP statuses, but the kind travels in the response body too so clients can
// distinguish failures independent of transport codes.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrPersistence  = errors.New("persistence failure")
)

const (
	KindInvalidInput = "invalid_input"
	KindNotFound     = "not_found"
	KindPersistence  = "persistence"
)

func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrPersistence):
		return KindPersistence
	default:
		return ""
	}
}
