// Package session owns the session lifecycle: login, logout, and the
// authentication checks the rest of the client builds on. It is the only
// writer of the credential store.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bethub/admincli/internal/client/credstore"
	"github.com/bethub/admincli/internal/client/gateway"
	"github.com/bethub/admincli/internal/client/models"
	"github.com/bethub/admincli/internal/logging"
)

// Backend is the slice of the gateway the session service uses. The real
// gateway satisfies it; tests can substitute a fake.
type Backend interface {
	Post(ctx context.Context, path string, body, out any) error
	OnAuthExpired(fn func(context.Context))
}

// Service exposes the session lifecycle. Construct once and share.
type Service struct {
	api   Backend
	store credstore.Store
	log   logging.Logger
}

// NewService wires the service to the gateway and the credential store, and
// installs the central 401 reaction: when an authenticated call is rejected
// the store is cleared here, so no call site re-implements expiry handling.
func NewService(api Backend, store credstore.Store, log logging.Logger) *Service {
	s := &Service{api: api, store: store, log: log}
	api.OnAuthExpired(s.expire)
	return s
}

func (s *Service) expire(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear credentials after session expiry", "err", err)
		return
	}
	s.log.Info(ctx, "session expired, credentials cleared")
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	User  *models.Profile `json:"user"`
	Token string          `json:"token"`
}

// Login authenticates against POST /users/login and persists the returned
// token and profile atomically. On any failure nothing is persisted and the
// error is an *AuthError carrying one of the closed Kind values.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	var payload loginPayload
	if err := s.api.Post(ctx, "/users/login", credentials{Email: email, Password: password}, &payload); err != nil {
		return nil, s.classify(ctx, err)
	}

	if payload.Token == "" || payload.User == nil {
		return nil, &AuthError{Kind: KindUnexpected, Message: "login response missing token or user"}
	}

	if err := s.store.SetSession(ctx, payload.Token, payload.User); err != nil {
		return nil, &AuthError{Kind: KindUnexpected, Message: "failed to persist session", Err: err}
	}

	s.log.Info(ctx, "login succeeded", "email", email)
	return payload.User, nil
}

// classify maps gateway failures onto the closed taxonomy. Explicit backend
// rejections (401/400 or a success:false body) become InvalidCredentials;
// transport failures become NetworkUnavailable; the rest is Unexpected.
func (s *Service) classify(ctx context.Context, err error) *AuthError {
	switch {
	case errors.Is(err, gateway.ErrUnavailable):
		return &AuthError{Kind: KindNetworkUnavailable, Message: "server unreachable", Err: err}
	case errors.Is(err, gateway.ErrAuthExpired):
		return &AuthError{Kind: KindAuthExpired, Message: "session expired", Err: err}
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest ||
			(apiErr.Status >= 200 && apiErr.Status < 300) {
			return &AuthError{Kind: KindInvalidCredentials, Message: apiErr.Message, Err: err}
		}
		return &AuthError{Kind: KindUnexpected, Message: apiErr.Message, Err: err}
	}

	s.log.Warn(ctx, "unclassified login failure", "err", err)
	return &AuthError{Kind: KindUnexpected, Message: "login failed", Err: err}
}

// Logout clears the credential store. Server-side token invalidation is a
// best-effort side call: its failure is logged and ignored, local logout
// always completes. Safe to call with no active session.
func (s *Service) Logout(ctx context.Context) error {
	if s.IsAuthenticated(ctx) {
		if err := s.api.Post(ctx, "/users/logout", nil, nil); err != nil {
			s.log.Warn(ctx, "server-side logout failed, clearing local session anyway", "err", err)
		}
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// IsAuthenticated reports whether a token is currently stored. Token
// presence is the sole signal; validity is the backend's call, surfaced as
// a 401 on the next authenticated request.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	token, err := s.store.Token(ctx)
	return err == nil && token != ""
}

// CurrentUser returns the cached profile snapshot, or nil when none is
// stored. Never fetches over the network.
func (s *Service) CurrentUser(ctx context.Context) *models.Profile {
	profile, err := s.store.Profile(ctx)
	if err != nil {
		return nil
	}
	return profile
}
