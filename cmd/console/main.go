package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rahmatrdn/go-pg-manager/internal/bootstrap"
	"github.com/rahmatrdn/go-pg-manager/internal/config"
	"github.com/rahmatrdn/go-pg-manager/internal/console"
	"github.com/rahmatrdn/go-pg-manager/internal/logger"
	"github.com/rahmatrdn/go-pg-manager/internal/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Only warnings reach the terminal; the REPL prints its own results.
	log, err := logger.New(cfg.App.Env, "warn")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	c, err := bootstrap.NewConsole(ctx, cfg, postgres.NewDialer(), log)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if err := c.Close(context.Background()); err != nil {
			log.Warn("closing console", zap.Error(err))
		}
	}()

	repl := console.NewREPL(c.Usecase, cfg.Postgres.Params(), os.Stdout, os.Stderr)
	return repl.Run(ctx, cfg.App.HistoryFile)
}
