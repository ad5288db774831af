// Package bootstrap wires the console usecase from config for both
// front ends.
package bootstrap

import (
	"context"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-pg-manager/internal/config"
	"github.com/rahmatrdn/go-pg-manager/internal/helper"
	"github.com/rahmatrdn/go-pg-manager/internal/repository/postgres"
	"github.com/rahmatrdn/go-pg-manager/internal/repository/sqlite"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
	"go.uber.org/zap"
)

type Console struct {
	Usecase usecase.ConsoleUsecase
	close   func() error
}

// NewConsole opens the local store and builds the usecase with the stored
// query history restored. A history restore failure is only logged.
func NewConsole(ctx context.Context, cfg *config.Config, dialer postgres.Dialer, log *zap.Logger) (*Console, error) {
	funcName := "bootstrap.NewConsole"

	db, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	uc := usecase.NewConsoleUsecase(
		dialer,
		sqlite.NewQueryHistoryRepository(db),
		sqlite.NewConnectionProfileRepository(db),
		helper.NewSecretBox(cfg.App.SecretKey),
		helper.NewValidator(),
		log,
		usecase.DefaultHistoryMax,
	)
	if err := uc.RestoreHistory(ctx); err != nil {
		log.Warn("restoring query history", zap.Error(err))
	}

	return &Console{Usecase: uc, close: sqlDB.Close}, nil
}

// Close drops the database connection, if any, then closes the store.
func (c *Console) Close(ctx context.Context) error {
	disconnectErr := c.Usecase.Disconnect(ctx)
	if err := c.close(); err != nil {
		return err
	}
	return disconnectErr
}
