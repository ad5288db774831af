package bootstrap

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/config"
	"github.com/rahmatrdn/go-pg-manager/internal/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.App.SecretKey = "test-secret"
	cfg.Store.Path = filepath.Join(t.TempDir(), "pgm.db")
	return cfg
}

func TestNewConsole(t *testing.T) {
	dialer := postgres.DialerFunc(func(ctx context.Context, params entity.ConnectionParams) (postgres.Client, error) {
		return nil, errors.New("unreachable")
	})

	c, err := NewConsole(t.Context(), testConfig(t), dialer, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, entity.StateDisconnected, c.Usecase.Status().State)
	assert.Empty(t, c.Usecase.History())

	profile, err := c.Usecase.SaveProfile(t.Context(), "local", entity.ConnectionParams{
		Host: "localhost", Port: 5432, Database: "postgres", User: "postgres", Password: "pw",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "pw", profile.SealedPassword)

	require.NoError(t, c.Close(t.Context()))
}

func TestNewConsole_BadStorePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.Path = filepath.Join(t.TempDir(), "missing", "dir", "pgm.db")

	_, err := NewConsole(t.Context(), cfg, nil, zap.NewNop())
	assert.Error(t, err)
}
