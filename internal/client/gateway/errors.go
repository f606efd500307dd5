package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the request never produced a usable response:
	// connection refused, DNS failure, or timeout. Callers may retry.
	ErrUnavailable = errors.New("server unavailable")

	// ErrAuthExpired means the backend returned 401 for a call that carried
	// a token: the session is no longer accepted.
	ErrAuthExpired = errors.New("session expired")
)

// APIError is an explicit rejection from the backend: a non-2xx status or a
// success:false envelope. Message carries the backend's human-readable
// explanation, Details any per-field errors.
type APIError struct {
	Status  int
	Message string
	Details []string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, msg)
}
