package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/orwel/orwel-cli/internal/buildinfo"
	"github.com/orwel/orwel-cli/internal/client/cli"
	"github.com/orwel/orwel-cli/internal/client/config"
	"github.com/orwel/orwel-cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
