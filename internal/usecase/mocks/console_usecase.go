// Package mocks provides testify mocks of the usecase interfaces.
package mocks

import (
	"context"

	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
	"github.com/stretchr/testify/mock"
)

// ConsoleUsecase mocks usecase.ConsoleUsecase. Context arguments are not
// matched.
type ConsoleUsecase struct {
	mock.Mock
}

func (m *ConsoleUsecase) Connect(ctx context.Context, params entity.ConnectionParams) error {
	return m.Called(params).Error(0)
}

func (m *ConsoleUsecase) ConnectProfile(ctx context.Context, name string) error {
	return m.Called(name).Error(0)
}

func (m *ConsoleUsecase) Disconnect(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *ConsoleUsecase) Status() entity.SessionStatus {
	return m.Called().Get(0).(entity.SessionStatus)
}

func (m *ConsoleUsecase) CheckHealth(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *ConsoleUsecase) ListSchemas(ctx context.Context) ([]string, error) {
	args := m.Called()
	schemas, _ := args.Get(0).([]string)
	return schemas, args.Error(1)
}

func (m *ConsoleUsecase) ListTables(ctx context.Context, schema string) ([]string, error) {
	args := m.Called(schema)
	tables, _ := args.Get(0).([]string)
	return tables, args.Error(1)
}

func (m *ConsoleUsecase) DescribeTable(ctx context.Context, schema, table string) (*entity.TableStructure, error) {
	args := m.Called(schema, table)
	structure, _ := args.Get(0).(*entity.TableStructure)
	return structure, args.Error(1)
}

func (m *ConsoleUsecase) FetchRows(ctx context.Context, schema, table string, filter entity.RowFilter) (*entity.QueryResult, error) {
	args := m.Called(schema, table, filter)
	result, _ := args.Get(0).(*entity.QueryResult)
	return result, args.Error(1)
}

func (m *ConsoleUsecase) Execute(ctx context.Context, query string) (*entity.ExecResult, error) {
	return m.execResult(m.Called(query))
}

func (m *ConsoleUsecase) History() []string {
	history, _ := m.Called().Get(0).([]string)
	return history
}

func (m *ConsoleUsecase) RestoreHistory(ctx context.Context) error {
	return m.Called().Error(0)
}

func (m *ConsoleUsecase) CreateTable(ctx context.Context, schema, table string, columns []entity.ColumnDefinition) (*entity.ExecResult, error) {
	return m.execResult(m.Called(schema, table, columns))
}

func (m *ConsoleUsecase) AddColumn(ctx context.Context, schema, table string, column entity.ColumnDefinition) (*entity.ExecResult, error) {
	return m.execResult(m.Called(schema, table, column))
}

func (m *ConsoleUsecase) RenameTable(ctx context.Context, schema, table, newName string) (*entity.ExecResult, error) {
	return m.execResult(m.Called(schema, table, newName))
}

func (m *ConsoleUsecase) AddIndex(ctx context.Context, schema, table string, index entity.IndexDefinition) (*entity.ExecResult, error) {
	return m.execResult(m.Called(schema, table, index))
}

func (m *ConsoleUsecase) DropTable(ctx context.Context, schema, table, confirm string) (*entity.ExecResult, error) {
	return m.execResult(m.Called(schema, table, confirm))
}

func (m *ConsoleUsecase) SaveProfile(ctx context.Context, name string, params entity.ConnectionParams) (*entity.ConnectionProfile, error) {
	args := m.Called(name, params)
	profile, _ := args.Get(0).(*entity.ConnectionProfile)
	return profile, args.Error(1)
}

func (m *ConsoleUsecase) ListProfiles(ctx context.Context) ([]*entity.ConnectionProfile, error) {
	args := m.Called()
	profiles, _ := args.Get(0).([]*entity.ConnectionProfile)
	return profiles, args.Error(1)
}

func (m *ConsoleUsecase) DeleteProfile(ctx context.Context, name string) error {
	return m.Called(name).Error(0)
}

func (m *ConsoleUsecase) execResult(args mock.Arguments) (*entity.ExecResult, error) {
	result, _ := args.Get(0).(*entity.ExecResult)
	return result, args.Error(1)
}

var _ usecase.ConsoleUsecase = (*ConsoleUsecase)(nil)
