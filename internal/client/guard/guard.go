// Package guard provides the render-vs-redirect decisions for the two view
// categories of the admin surface: protected views (everything behind
// login) and public-only views (the login screen itself). Decisions are
// pure and computed fresh on every navigation, since login and logout can
// happen between navigations.
package guard

import "context"

// Route is a navigation target.
type Route string

const (
	// RouteLogin is the public entry point for unauthenticated operators.
	RouteLogin Route = "/login"

	// RouteHome is the authenticated landing area.
	RouteHome Route = "/"
)

// Decision is the outcome of a guard check: render the requested view, or
// redirect elsewhere.
type Decision struct {
	Allowed    bool
	RedirectTo Route
}

// SessionChecker reports the current authentication state. The session
// service satisfies it.
type SessionChecker interface {
	IsAuthenticated(ctx context.Context) bool
}

// Guard evaluates access decisions against the current session state. It
// keeps no memory of past decisions.
type Guard struct {
	sessions SessionChecker
}

func New(sessions SessionChecker) *Guard {
	return &Guard{sessions: sessions}
}

// Protected allows the view for authenticated sessions and redirects
// everyone else to the login entry point.
func (g *Guard) Protected(ctx context.Context) Decision {
	if !g.sessions.IsAuthenticated(ctx) {
		return Decision{RedirectTo: RouteLogin}
	}
	return Decision{Allowed: true}
}

// PublicOnly is the inverse: an already authenticated session is redirected
// away from public-only views to the landing area.
func (g *Guard) PublicOnly(ctx context.Context) Decision {
	if g.sessions.IsAuthenticated(ctx) {
		return Decision{RedirectTo: RouteHome}
	}
	return Decision{Allowed: true}
}
