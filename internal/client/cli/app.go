// Package cli implements the interactive terminal application for BetHub
// operators. Commands are dispatched through a REPL; access to each command
// is decided per dispatch by the route guard, mirroring how the web
// dashboard guards its views per navigation.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/bethub/admincli/internal/client/config"
	"github.com/bethub/admincli/internal/client/credstore"
	"github.com/bethub/admincli/internal/client/gateway"
	"github.com/bethub/admincli/internal/client/guard"
	"github.com/bethub/admincli/internal/client/resources"
	"github.com/bethub/admincli/internal/client/session"
	"github.com/bethub/admincli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	store    credstore.Store
	sessions *session.Service
	access   *guard.Guard

	users    *resources.UserService
	methods  *resources.PaymentMethodService
	promos   *resources.PromotionService
	txns     *resources.TransactionService
	games    *resources.GameService
	sliders  *resources.SliderService
	contacts *resources.ContactService

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the whole client: credential store, gateway, session
// service, guard, and the resource clients. Everything shares the one
// gateway instance, so every call inherits the bearer header.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := credstore.Open(ctx, cfg.CredentialsPath, log)
	if err != nil {
		return nil, err
	}

	gw, err := gateway.New(cfg.APIBaseURL, cfg.RequestTimeout, store, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	sessions := session.NewService(gw, store, log)

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
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()
	a.Root(ctx)
}
