package session

import (
	"errors"
	"fmt"
)

// Kind is the closed set of authentication failure classes. Every error
// returned by the service carries exactly one of these, so callers can
// handle the taxonomy exhaustively instead of duck-typing.
type Kind int

const (
	// KindInvalidCredentials: the backend explicitly rejected the login.
	// User-correctable, shown inline on the login form.
	KindInvalidCredentials Kind = iota + 1

	// KindNetworkUnavailable: the request never reached the backend
	// (offline, DNS, timeout). Correctable by retry.
	KindNetworkUnavailable

	// KindAuthExpired: a previously valid session is no longer accepted.
	KindAuthExpired

	// KindUnexpected: anything else, including malformed success responses
	// and storage write failures.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindNetworkUnavailable:
		return "network_unavailable"
	case KindAuthExpired:
		return "auth_expired"
	case KindUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// AuthError is a classified session failure. Message is safe to show to the
// operator; Err preserves the underlying cause for logs.
type AuthError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return e.Kind.String()
}

func (e *AuthError) Unwrap() error { return e.Err }

// KindOf extracts the failure class from err, or KindUnexpected when err is
// not an AuthError.
func KindOf(err error) Kind {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	return KindUnexpected
}
