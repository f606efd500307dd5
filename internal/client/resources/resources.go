// Package resources contains the typed API clients for the admin surface:
// users, payment methods, promotions, transactions, games, sliders, and
// contact settings. Each is a thin wrapper over the shared gateway; the
// bearer header and error mapping come from there, never from here.
package resources

import "context"

// Caller is the slice of the gateway the resource clients use. The real
// gateway satisfies it; tests can substitute a fake.
type Caller interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
