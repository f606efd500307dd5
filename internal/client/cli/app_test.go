package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bethub/admincli/internal/client/config"
	"github.com/bethub/admincli/internal/client/credstore"
	"github.com/bethub/admincli/internal/client/gateway"
	"github.com/bethub/admincli/internal/client/guard"
	"github.com/bethub/admincli/internal/client/models"
	"github.com/bethub/admincli/internal/client/resources"
	"github.com/bethub/admincli/internal/client/session"
	"github.com/bethub/admincli/internal/logging"
)

func testApp(t *testing.T, backendURL string, input string) (*App, *bytes.Buffer) {
	t.Helper()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := credstore.NewMemoryStore()

	gw, err := gateway.New(backendURL, 2*time.Second, store, log)
	require.NoError(t, err)

	sessions := session.NewService(gw, store, log)
	out := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:   cfg,
		store:    store,
		sessions: sessions,
		access:   guard.New(sessions),
		users:    resources.NewUserService(gw),
		methods:  resources.NewPaymentMethodService(gw),
		promos:   resources.NewPromotionService(gw),
		txns:     resources.NewTransactionService(gw),
		games:    resources.NewGameService(gw),
		sliders:  resources.NewSliderService(gw),
		contacts: resources.NewContactService(gw),
		log:      log,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}, out
}

func seedSession(t *testing.T, a *App) {
	t.Helper()
	require.NoError(t, a.store.SetSession(context.Background(), "tok123", &models.Profile{
		ID: "u-1", Name: "Admin", Email: "a@b.com",
	}))
}

func TestDispatch_ProtectedCommandWhileLoggedOut(t *testing.T) {
	a, out := testApp(t, "http://127.0.0.1:0", "")

	exit := a.dispatch(context.Background(), "users", nil)
	require.False(t, exit)
	require.Contains(t, out.String(), "Please log in first")
}

func TestDispatch_LoginWhileLoggedIn(t *testing.T) {
	a, out := testApp(t, "http://127.0.0.1:0", "")
	seedSession(t, a)

	a.dispatch(context.Background(), "login", nil)
	require.Contains(t, out.String(), "Already logged in")
}

func TestDispatch_ExitReturnsTrue(t *testing.T) {
	a, _ := testApp(t, "http://127.0.0.1:0", "")
	require.True(t, a.dispatch(context.Background(), "exit", nil))
	require.True(t, a.dispatch(context.Background(), "quit", nil))
}

func TestDispatch_HelpMatchesAuthState(t *testing.T) {
	a, out := testApp(t, "http://127.0.0.1:0", "")

	a.dispatch(context.Background(), "help", nil)
	require.Contains(t, out.String(), "login, exit")

	seedSession(t, a)
	out.Reset()
	a.dispatch(context.Background(), "help", nil)
	require.Contains(t, out.String(), "users")
	require.Contains(t, out.String(), "logout")
}

func TestDispatch_UsersListsThroughBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"u-9","email":"p@q.com","status":"active","balance":"42"}]}`))
	}))
	defer srv.Close()

	a, out := testApp(t, srv.URL, "")
	seedSession(t, a)

	a.dispatch(context.Background(), "users", nil)
	require.Contains(t, out.String(), "u-9")
	require.Contains(t, out.String(), "p@q.com")
}

func TestDispatch_SlidersResolveAssetURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sliders", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":[` +
			`{"id":"s-1","title":"Welcome","image_url":"/uploads/banner.png","position":1,"active":true},` +
			`{"id":"s-2","title":"Promo","image_url":"https://cdn.bethub.io/promo.png","position":2,"active":true}]}`))
	}))
	defer srv.Close()

	a, out := testApp(t, srv.URL, "")
	seedSession(t, a)

	a.dispatch(context.Background(), "sliders", nil)
	// relative paths are joined with the content base, absolute URLs pass through
	require.Contains(t, out.String(), a.config.ContentBaseURL+"/uploads/banner.png")
	require.Contains(t, out.String(), "https://cdn.bethub.io/promo.png")
}

func TestDispatch_LoginFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{"user":{"id":"u-1","name":"Admin","email":"a@b.com"},"token":"tok123"}}`))
	}))
	defer srv.Close()

	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(int) ([]byte, error) { return []byte("x"), nil }

	a, out := testApp(t, srv.URL, "a@b.com\n")

	a.dispatch(context.Background(), "login", nil)
	require.Contains(t, out.String(), "Welcome, Admin")
	require.True(t, a.sessions.IsAuthenticated(context.Background()))
}

func TestDispatch_Whoami(t *testing.T) {
	a, out := testApp(t, "http://127.0.0.1:0", "")
	seedSession(t, a)

	a.dispatch(context.Background(), "whoami", nil)
	require.Contains(t, out.String(), "a@b.com")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	a, out := testApp(t, "http://127.0.0.1:0", "")
	seedSession(t, a)

	a.dispatch(context.Background(), "frobnicate", nil)
	require.Contains(t, out.String(), "Unknown command")
}
