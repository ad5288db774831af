package config

import (
	"errors"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/subosito/gotenv"
)

type Config struct {
	App      App
	Store    Store
	Postgres Postgres
}

type App struct {
	Env            string        `env:"APP_ENV,default=development"`
	HTTPPort       int           `env:"HTTP_PORT,default=8080"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	SecretKey      string        `env:"SECRET_KEY,default=change-me"`
	HealthInterval time.Duration `env:"HEALTH_INTERVAL,default=30s"`
	ViewsDir       string        `env:"VIEWS_DIR,default=./views"`
	HistoryFile    string        `env:"HISTORY_FILE,default=.pgm_history"`
}

type Store struct {
	Path string `env:"STORE_PATH,default=pgm.db"`
}

// Postgres holds the default connection used by the console REPL and
// pre-filled in the dashboard form.
type Postgres struct {
	Host     string `env:"PG_HOST,default=localhost"`
	Port     int    `env:"PG_PORT,default=5432"`
	Database string `env:"PG_DATABASE,default=postgres"`
	User     string `env:"PG_USER,default=postgres"`
	Password string `env:"PG_PASSWORD"`
	SSLMode  string `env:"PG_SSLMODE,default=disable"`
}

func (p Postgres) Params() entity.ConnectionParams {
	return entity.ConnectionParams{
		Host:     p.Host,
		Port:     p.Port,
		Database: p.Database,
		User:     p.User,
		Password: p.Password,
		SSLMode:  p.SSLMode,
	}
}

// Load reads an optional .env file (already-set variables win) and decodes
// the environment into Config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	_ = gotenv.Load(envFiles...)

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, err
	}
	return &cfg, nil
}
