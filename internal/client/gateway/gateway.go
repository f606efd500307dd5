// Package gateway is the single egress point for all backend calls. It owns
// the cross-cutting request behavior so call sites never repeat it: bearer
// injection from the credential store, request IDs, JSON envelope decoding,
// timeout enforcement, and status-to-error mapping.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/bethub/admincli/internal/logging"
)

// DefaultTimeout bounds every request when no explicit timeout is
// configured.
const DefaultTimeout = 10 * time.Second

// TokenSource yields the current session token, or "" when no session
// exists. Implementations must not block on the network.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Gateway is a shared HTTP client bound to the backend base URL. Construct
// one per process and pass it to everything that talks to the backend.
type Gateway struct {
	baseURL *url.URL
	http    httpDoer
	tokens  TokenSource
	log     logging.Logger

	onAuthExpired func(context.Context)
}

// New builds a Gateway for baseURL. A non-positive timeout falls back to
// DefaultTimeout.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) (*Gateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}, nil
}

// OnAuthExpired registers the single handler invoked when an authenticated
// call comes back 401. The session service installs the handler that clears
// the credential store; the rejection still propagates to the caller as
// ErrAuthExpired.
func (g *Gateway) OnAuthExpired(fn func(context.Context)) {
	g.onAuthExpired = fn
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPost, path, body, out)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out any) error {
	return g.do(ctx, http.MethodPut, path, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil)
}

func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("invalid request path %q: %w", path, err)
	}
	u := g.baseURL.JoinPath(rel.Path)
	u.RawQuery = rel.RawQuery

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Token injection is unconditional and automatic; call sites never
	// attach the token themselves. A store read failure reads as anonymous.
	token, err := g.tokens.Token(ctx)
	if err != nil {
		g.log.Warn(ctx, "token read failed, sending anonymous request", "err", err)
		token = ""
	}
	authed := token != ""
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		g.log.Warn(ctx, "response read failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized && authed {
		// The backend stopped accepting a previously valid token. One
		// central reaction: notify the registered handler (which clears the
		// store) and surface a typed rejection.
		g.log.Warn(ctx, "authenticated call rejected with 401", "method", method, "path", path)
		if g.onAuthExpired != nil {
			g.onAuthExpired(ctx)
		}
		return ErrAuthExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Message
			apiErr.Details = env.Errors
		}
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("malformed response body: %w", decodeErr)
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message, Details: env.Errors}
	}

	if out != nil {
		if len(env.Data) == 0 {
			return fmt.Errorf("malformed response: missing data")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("malformed response data: %w", err)
		}
	}
	return nil
}
