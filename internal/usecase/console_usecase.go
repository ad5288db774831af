package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/helper"
	"github.com/rahmatrdn/go-pg-manager/internal/repository/postgres"
	"github.com/rahmatrdn/go-pg-manager/internal/repository/sqlite"
	"go.uber.org/zap"
)

type ConsoleUsecase interface {
	Connect(ctx context.Context, params entity.ConnectionParams) error
	ConnectProfile(ctx context.Context, name string) error
	Disconnect(ctx context.Context) error
	Status() entity.SessionStatus
	CheckHealth(ctx context.Context) error

	ListSchemas(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context, schema string) ([]string, error)
	DescribeTable(ctx context.Context, schema, table string) (*entity.TableStructure, error)
	FetchRows(ctx context.Context, schema, table string, filter entity.RowFilter) (*entity.QueryResult, error)

	Execute(ctx context.Context, query string) (*entity.ExecResult, error)
	History() []string
	RestoreHistory(ctx context.Context) error

	CreateTable(ctx context.Context, schema, table string, columns []entity.ColumnDefinition) (*entity.ExecResult, error)
	AddColumn(ctx context.Context, schema, table string, column entity.ColumnDefinition) (*entity.ExecResult, error)
	RenameTable(ctx context.Context, schema, table, newName string) (*entity.ExecResult, error)
	AddIndex(ctx context.Context, schema, table string, index entity.IndexDefinition) (*entity.ExecResult, error)
	DropTable(ctx context.Context, schema, table, confirm string) (*entity.ExecResult, error)

	SaveProfile(ctx context.Context, name string, params entity.ConnectionParams) (*entity.ConnectionProfile, error)
	ListProfiles(ctx context.Context) ([]*entity.ConnectionProfile, error)
	DeleteProfile(ctx context.Context, name string) error
}

// consoleUsecase holds the single live connection of the console and the
// state derived from it. mu serializes every statement sent to the server.
type consoleUsecase struct {
	dialer      postgres.Dialer
	historyRepo sqlite.QueryHistoryRepository
	profileRepo sqlite.ConnectionProfileRepository
	secret      *helper.SecretBox
	validator   *helper.Validator
	log         *zap.Logger

	mu          sync.Mutex
	client      postgres.Client
	params      entity.ConnectionParams
	sessionID   string
	connectedAt time.Time
	schemas     []string
	tables      []string
	tableSchema string
	history     *History
}

func NewConsoleUsecase(
	dialer postgres.Dialer,
	historyRepo sqlite.QueryHistoryRepository,
	profileRepo sqlite.ConnectionProfileRepository,
	secret *helper.SecretBox,
	validator *helper.Validator,
	log *zap.Logger,
	historyMax int,
) ConsoleUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &consoleUsecase{
		dialer:      dialer,
		historyRepo: historyRepo,
		profileRepo: profileRepo,
		secret:      secret,
		validator:   validator,
		log:         log,
		history:     NewHistory(historyMax),
	}
}

func (u *consoleUsecase) Connect(ctx context.Context, params entity.ConnectionParams) error {
	if err := u.validator.Validate(params); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	client, err := u.dialer.Dial(ctx, params)
	if err != nil {
		u.log.Warn("connect failed", zap.String("address", params.Address()), zap.String("database", params.Database), zap.Error(err))
		var connErr *entity.ConnectionError
		if !errors.As(err, &connErr) {
			err = &entity.ConnectionError{Address: params.Address(), Err: err}
		}
		return err
	}

	if u.client != nil {
		if err := u.client.Close(); err != nil {
			u.log.Warn("closing previous connection", zap.Error(err))
		}
	}

	u.client = client
	u.params = params
	u.sessionID = uuid.NewString()
	u.connectedAt = time.Now()
	u.schemas = nil
	u.tables = nil
	u.tableSchema = ""

	u.log.Info("connected",
		zap.String("session_id", u.sessionID),
		zap.String("address", params.Address()),
		zap.String("database", params.Database),
		zap.String("user", params.User),
	)

	if _, err := u.listSchemas(ctx); err != nil {
		u.log.Warn("fetching schemas after connect", zap.Error(err))
	}
	return nil
}

func (u *consoleUsecase) ConnectProfile(ctx context.Context, name string) error {
	profile, err := u.profileRepo.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if profile == nil {
		return entity.ErrProfileNotFound
	}

	password, err := u.secret.Open(profile.SealedPassword)
	if err != nil {
		return fmt.Errorf("opening password of profile %q: %w", name, err)
	}
	return u.Connect(ctx, profile.Params(password))
}

func (u *consoleUsecase) Disconnect(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.disconnect("requested")
}

// disconnect must be called with mu held.
func (u *consoleUsecase) disconnect(reason string) error {
	if u.client == nil {
		return nil
	}

	err := u.client.Close()
	u.log.Info("disconnected", zap.String("session_id", u.sessionID), zap.String("reason", reason))

	u.client = nil
	u.params = entity.ConnectionParams{}
	u.sessionID = ""
	u.connectedAt = time.Time{}
	u.schemas = nil
	u.tables = nil
	u.tableSchema = ""
	return err
}

func (u *consoleUsecase) Status() entity.SessionStatus {
	u.mu.Lock()
	defer u.mu.Unlock()

	status := entity.SessionStatus{
		State:   entity.StateDisconnected,
		Schemas: append([]string{}, u.schemas...),
		Tables:  append([]string{}, u.tables...),
	}
	if u.client == nil {
		return status
	}

	connectedAt := u.connectedAt
	status.State = entity.StateConnected
	status.SessionID = u.sessionID
	status.Host = u.params.Address()
	status.Database = u.params.Database
	status.User = u.params.User
	status.ConnectedAt = &connectedAt
	status.TableSchema = u.tableSchema
	return status
}

// CheckHealth pings the live connection and drops it when the ping fails.
func (u *consoleUsecase) CheckHealth(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.client == nil {
		return nil
	}

	if err := u.client.Ping(ctx); err != nil {
		address := u.params.Address()
		u.log.Warn("connection lost", zap.String("session_id", u.sessionID), zap.Error(err))
		_ = u.disconnect("health check failed")
		return &entity.ConnectionError{Address: address, Err: err}
	}
	return nil
}

func (u *consoleUsecase) ListSchemas(ctx context.Context) ([]string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.listSchemas(ctx)
}

func (u *consoleUsecase) listSchemas(ctx context.Context) ([]string, error) {
	if u.client == nil {
		return nil, entity.ErrNotConnected
	}

	schemas, err := u.client.ListSchemas(ctx)
	if err != nil {
		u.log.Warn("list schemas", zap.Error(err))
		return nil, err
	}
	u.schemas = schemas
	return schemas, nil
}

func (u *consoleUsecase) ListTables(ctx context.Context, schema string) ([]string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.listTables(ctx, schema)
}

func (u *consoleUsecase) listTables(ctx context.Context, schema string) ([]string, error) {
	if u.client == nil {
		return nil, entity.ErrNotConnected
	}

	tables, err := u.client.ListTables(ctx, schema)
	if err != nil {
		u.log.Warn("list tables", zap.String("schema", schema), zap.Error(err))
		return nil, err
	}
	u.tables = tables
	u.tableSchema = schema
	return tables, nil
}

func (u *consoleUsecase) DescribeTable(ctx context.Context, schema, table string) (*entity.TableStructure, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.client == nil {
		return nil, entity.ErrNotConnected
	}

	structure, err := u.client.DescribeTable(ctx, schema, table)
	if err != nil {
		u.log.Warn("describe table", zap.String("schema", schema), zap.String("table", table), zap.Error(err))
		return nil, err
	}
	return structure, nil
}

func (u *consoleUsecase) FetchRows(ctx context.Context, schema, table string, filter entity.RowFilter) (*entity.QueryResult, error) {
	if err := u.validator.Validate(filter); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.client == nil {
		return nil, entity.ErrNotConnected
	}

	u.log.Debug("fetch rows",
		zap.String("schema", schema),
		zap.String("table", table),
		zap.Int("limit", filter.Limit),
		zap.Int("offset", filter.Offset),
	)

	result, err := u.client.FetchRows(ctx, schema, table, filter)
	if err != nil {
		u.log.Warn("fetch rows", zap.String("schema", schema), zap.String("table", table), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Execute runs query as one committed-or-rolled-back statement. Statement
// failures are reported in the result; the returned error is only set when
// nothing was sent to the server.
func (u *consoleUsecase) Execute(ctx context.Context, query string) (*entity.ExecResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, entity.NewValidationError("query", "query is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	return u.execute(ctx, query)
}

func (u *consoleUsecase) execute(ctx context.Context, query string) (*entity.ExecResult, error) {
	if u.client == nil {
		return nil, entity.ErrNotConnected
	}

	start := time.Now()
	res, err := u.client.Execute(ctx, query)
	if err != nil {
		u.log.Warn("execute failed", zap.String("query", query), zap.Error(err))
		return &entity.ExecResult{
			Success: false,
			Message: fmt.Sprintf("Error executing query: %v", err),
		}, nil
	}

	u.log.Debug("executed", zap.String("query", query), zap.Duration("took", time.Since(start)))
	u.remember(ctx, query)

	if res.Result != nil {
		return &entity.ExecResult{
			Success: true,
			Message: fmt.Sprintf("Query executed successfully. Rows returned: %d", res.Result.RowCount),
			Result:  res.Result,
		}, nil
	}
	return &entity.ExecResult{
		Success: true,
		Message: fmt.Sprintf("Query executed successfully. Rows affected: %d", res.RowsAffected),
	}, nil
}

// remember adds query to the history and mirrors it to the store.
// Store failures only get logged.
func (u *consoleUsecase) remember(ctx context.Context, query string) {
	if !u.history.Add(query) || u.historyRepo == nil {
		return
	}

	entry := &entity.QueryHistory{Query: strings.TrimSpace(query)}
	if err := u.historyRepo.Create(ctx, entry); err != nil {
		u.log.Warn("saving query history", zap.Error(err))
		return
	}
	if err := u.historyRepo.Prune(ctx, u.history.Max()); err != nil {
		u.log.Warn("pruning query history", zap.Error(err))
	}
}

func (u *consoleUsecase) History() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.history.Items()
}

// RestoreHistory loads the stored history into memory, oldest first.
func (u *consoleUsecase) RestoreHistory(ctx context.Context) error {
	if u.historyRepo == nil {
		return nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	entries, err := u.historyRepo.FindLatest(ctx, u.history.Max())
	if err != nil {
		return err
	}

	restored := NewHistory(u.history.Max())
	for i := len(entries) - 1; i >= 0; i-- {
		restored.Add(entries[i].Query)
	}
	u.history = restored
	return nil
}
