package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/mlb-scoreboard/internal/config"
	"github.com/preston-bernstein/mlb-scoreboard/internal/logging"
	"github.com/preston-bernstein/mlb-scoreboard/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "mlb-scoreboard: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "mlb-scoreboard",
		Version: appVersion,
	})

	srv := server.New(cfg, logger, os.Getenv(config.EnvConfigPath))
	srv.Run(ctx, stop)
}
