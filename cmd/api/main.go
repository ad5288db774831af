package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/rahmatrdn/go-pg-manager/internal/bootstrap"
	"github.com/rahmatrdn/go-pg-manager/internal/config"
	"github.com/rahmatrdn/go-pg-manager/internal/http/handler"
	"github.com/rahmatrdn/go-pg-manager/internal/http/server"
	"github.com/rahmatrdn/go-pg-manager/internal/logger"
	"github.com/rahmatrdn/go-pg-manager/internal/repository/postgres"
	"github.com/rahmatrdn/go-pg-manager/internal/scheduler"
	"go.uber.org/zap"
)

// @title       PostgreSQL Manager API
// @version     1.0
// @description Single-user PostgreSQL admin console.
// @BasePath    /
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

	log, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console, err := bootstrap.NewConsole(ctx, cfg, postgres.NewDialer(), log)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	sched, err := scheduler.New(console.Usecase, cfg.App.HealthInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	app := server.New(html.New(cfg.App.ViewsDir, ".html"), log,
		handler.NewDashboardHandler(console.Usecase, cfg.Postgres.Params()),
		handler.NewConnectionHandler(console.Usecase),
		handler.NewProfileHandler(console.Usecase),
		handler.NewCatalogHandler(console.Usecase),
		handler.NewTableHandler(console.Usecase),
		handler.NewQueryHandler(console.Usecase),
	)

	listenErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.HTTPPort)
		log.Info("http server listening", zap.String("addr", addr), zap.String("env", cfg.App.Env))
		listenErr <- app.Listen(addr)
	}()

	select {
	case err = <-listenErr:
		log.Error("http server stopped", zap.Error(err))
	case <-ctx.Done():
		log.Info("shutting down")
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	if err := sched.Stop(); err != nil {
		log.Warn("scheduler shutdown", zap.Error(err))
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := console.Close(closeCtx); err != nil {
		log.Warn("closing console", zap.Error(err))
	}
	return err
}
