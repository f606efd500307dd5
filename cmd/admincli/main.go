package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bethub/admincli/internal/client/cli"
	"github.com/bethub/admincli/internal/client/config"
	"github.com/bethub/admincli/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "err", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
