package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-pg-manager/entity"
)

// Client is one live PostgreSQL connection and the catalog reads the
// console runs against it.
type Client interface {
	Ping(ctx context.Context) error
	Close() error

	ListSchemas(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context, schema string) ([]string, error)
	DescribeTable(ctx context.Context, schema, table string) (*entity.TableStructure, error)
	FetchRows(ctx context.Context, schema, table string, filter entity.RowFilter) (*entity.QueryResult, error)
	Execute(ctx context.Context, statement string) (*entity.StatementResult, error)
}

// Dialer opens a Client. The usecase layer holds one so tests can swap in
// a sqlmock-backed client.
type Dialer interface {
	Dial(ctx context.Context, params entity.ConnectionParams) (Client, error)
}

type DialerFunc func(ctx context.Context, params entity.ConnectionParams) (Client, error)

func (f DialerFunc) Dial(ctx context.Context, params entity.ConnectionParams) (Client, error) {
	return f(ctx, params)
}

type clientImpl struct {
	db *sql.DB
}

// NewClient wraps an already-open *sql.DB.
func NewClient(db *sql.DB) Client {
	return &clientImpl{db: db}
}

// Open connects with the pgx stdlib driver. The pool is capped at a single
// connection so every statement of the session runs on the same backend.
func Open(ctx context.Context, params entity.ConnectionParams) (Client, error) {
	funcName := "postgres.Open"

	db, err := sql.Open("pgx", BuildDSN(params))
	if err != nil {
		return nil, &entity.ConnectionError{Address: params.Address(), Err: errwrap.Wrap(err, funcName)}
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &entity.ConnectionError{Address: params.Address(), Err: errwrap.Wrap(err, funcName)}
	}

	return &clientImpl{db: db}, nil
}

// NewDialer returns the Dialer backed by Open.
func NewDialer() Dialer {
	return DialerFunc(Open)
}

// BuildDSN renders key/value connection settings for pgx.
func BuildDSN(params entity.ConnectionParams) string {
	host := params.Host
	if host == "" {
		host = "localhost"
	}

	port := params.Port
	if port == 0 {
		port = 5432
	}

	sslmode := params.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%d dbname=%s sslmode=%s",
		quoteDSNValue(host), port, quoteDSNValue(params.Database), sslmode)

	if params.User != "" {
		dsn += fmt.Sprintf(" user=%s", quoteDSNValue(params.User))
	}
	if params.Password != "" {
		dsn += fmt.Sprintf(" password=%s", quoteDSNValue(params.Password))
	}

	return dsn
}

func quoteDSNValue(v string) string {
	if v == "" {
		return "''"
	}
	needsQuote := false
	for _, r := range v {
		if r == ' ' || r == '\'' || r == '\\' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return v
	}

	out := make([]rune, 0, len(v)+2)
	out = append(out, '\'')
	for _, r := range v {
		if r == '\'' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(append(out, '\''))
}

func (c *clientImpl) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *clientImpl) Close() error {
	return c.db.Close()
}
