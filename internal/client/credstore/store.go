// Package credstore persists the operator's session credentials: the opaque
// bearer token and the cached profile snapshot. It is the only durable state
// the admin client keeps between runs.
//
// Reads fail open: a missing, corrupt, or unreadable entry reads as absent
// and never fails the caller. Writes propagate their errors, since failing
// silently on write would hide data loss.
package credstore

import (
	"context"

	"github.com/bethub/admincli/internal/client/models"
)

// Storage keys for the two persisted entries.
const (
	keyToken   = "token"
	keyProfile = "profile"
)

// Store is the capability interface the session layer works against.
// Implementations must keep SetSession atomic: either both the token and
// the profile are stored, or neither is.
type Store interface {
	// SetSession stores the token and profile together, overwriting any
	// previous session.
	SetSession(ctx context.Context, token string, profile *models.Profile) error

	// Token returns the stored token, or "" when absent.
	Token(ctx context.Context) (string, error)

	// Profile returns the stored profile snapshot, or nil when absent or
	// unreadable.
	Profile(ctx context.Context) (*models.Profile, error)

	// Clear removes both entries. Idempotent.
	Clear(ctx context.Context) error

	// Close releases underlying resources.
	Close() error
}
