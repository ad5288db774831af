package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/http/handler"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrar interface {
	Register(app *fiber.App)
}

func newApp(rs ...registrar) *fiber.App {
	app := fiber.New(fiber.Config{Immutable: true})
	for _, r := range rs {
		r.Register(app)
	}
	return app
}

type body struct {
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func do(t *testing.T, app *fiber.App, method, target, payload string) (int, body) {
	t.Helper()

	var reader io.Reader
	if payload != "" {
		reader = strings.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var b body
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))
	return resp.StatusCode, b
}

func connectedStatus() entity.SessionStatus {
	return entity.SessionStatus{
		SessionID: "s-1",
		State:     entity.StateConnected,
		Host:      "localhost:5432",
		Database:  "postgres",
		User:      "postgres",
	}
}

func TestConnectionHandler_Connect(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	params := entity.ConnectionParams{Host: "localhost", Port: 5432, Database: "postgres", User: "postgres", Password: "pw"}
	console.On("Connect", params).Return(nil)
	console.On("Status").Return(connectedStatus())

	app := newApp(handler.NewConnectionHandler(console))
	status, b := do(t, app, http.MethodPost, "/api/connection",
		`{"host":"localhost","port":5432,"database":"postgres","user":"postgres","password":"pw"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Connected to PostgreSQL database!", b.Message)

	var got entity.SessionStatus
	require.NoError(t, json.Unmarshal(b.Data, &got))
	assert.Equal(t, entity.StateConnected, got.State)
	console.AssertExpectations(t)
}

func TestConnectionHandler_ConnectErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &entity.ValidationError{Fields: map[string]string{"ConnectionParams.host": "host is required"}}, fiber.StatusBadRequest},
		{"unreachable", &entity.ConnectionError{Address: "db:5432", Err: errors.New("refused")}, fiber.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := new(mocks.ConsoleUsecase)
			console.On("Connect", entity.ConnectionParams{Host: "db", Port: 5432}).Return(tt.err)

			app := newApp(handler.NewConnectionHandler(console))
			status, b := do(t, app, http.MethodPost, "/api/connection", `{"host":"db","port":5432}`)

			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, b.Message)
		})
	}
}

func TestConnectionHandler_InvalidBody(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	app := newApp(handler.NewConnectionHandler(console))

	status, b := do(t, app, http.MethodPost, "/api/connection", `{"port":"nope"`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid request body", b.Message)
	console.AssertNotCalled(t, "Connect", mock.Anything)
}

func TestConnectionHandler_ConnectProfileNotFound(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("ConnectProfile", "staging").Return(entity.ErrProfileNotFound)

	app := newApp(handler.NewConnectionHandler(console))
	status, _ := do(t, app, http.MethodPost, "/api/connection/profile/staging", "")

	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestConnectionHandler_DisconnectAndStatus(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("Disconnect").Return(nil)
	console.On("Status").Return(entity.SessionStatus{State: entity.StateDisconnected})

	app := newApp(handler.NewConnectionHandler(console))

	status, b := do(t, app, http.MethodDelete, "/api/connection", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Disconnected from database.", b.Message)

	status, b = do(t, app, http.MethodGet, "/api/connection", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b.Data), `"state":"disconnected"`)
}

func TestCatalogHandler_NotConnected(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("ListSchemas").Return(nil, entity.ErrNotConnected)

	app := newApp(handler.NewCatalogHandler(console))
	status, _ := do(t, app, http.MethodGet, "/api/schemas", "")

	assert.Equal(t, fiber.StatusConflict, status)
}

func TestCatalogHandler_ListTables(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("ListTables", "sales").Return([]string{"customers", "orders"}, nil)

	app := newApp(handler.NewCatalogHandler(console))
	status, b := do(t, app, http.MethodGet, "/api/schemas/sales/tables", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `["customers","orders"]`, string(b.Data))
}

func TestCatalogHandler_DescribeTable(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	structure := &entity.TableStructure{
		Schema: "public",
		Table:  "users",
		IndexColumns: []entity.IndexColumn{
			{IndexName: "users_pkey", Column: "id", Unique: true},
		},
	}
	console.On("DescribeTable", "public", "users").Return(structure, nil)

	app := newApp(handler.NewCatalogHandler(console))
	status, b := do(t, app, http.MethodGet, "/api/schemas/public/tables/users/structure", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b.Data), `"structure"`)
	assert.Contains(t, string(b.Data), `"users_pkey"`)
}

func TestCatalogHandler_DescribeTableQueryError(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("DescribeTable", "public", "ghost").
		Return(nil, &entity.QueryError{Op: "fetching table structure", Err: errors.New("boom")})

	app := newApp(handler.NewCatalogHandler(console))
	status, b := do(t, app, http.MethodGet, "/api/schemas/public/tables/ghost/structure", "")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "error fetching table structure: boom", b.Message)
}

func TestCatalogHandler_FetchRows(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	filter := entity.RowFilter{Limit: 5, Offset: 10, Where: "id > 3", OrderBy: "id DESC"}
	console.On("FetchRows", "public", "users", filter).
		Return(&entity.QueryResult{Columns: []string{"id"}, Rows: [][]any{{4}}, RowCount: 1}, nil)

	app := newApp(handler.NewCatalogHandler(console))
	status, b := do(t, app, http.MethodGet,
		"/api/schemas/public/tables/users/rows?limit=5&offset=10&where=id+%3E+3&order_by=id+DESC", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", b.Message)
	console.AssertExpectations(t)
}

func TestCatalogHandler_FetchRowsDefaultsAndEmpty(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("FetchRows", "public", "users", entity.RowFilter{Limit: 100}).
		Return(&entity.QueryResult{Columns: []string{"id"}, Rows: [][]any{}}, nil)

	app := newApp(handler.NewCatalogHandler(console))
	status, b := do(t, app, http.MethodGet, "/api/schemas/public/tables/users/rows", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "No data found for the selected table with the given criteria.", b.Message)
}

func TestQueryHandler_Execute(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("Execute", "DELETE FROM t").
		Return(&entity.ExecResult{Success: true, Message: "Query executed successfully. Rows affected: 2"}, nil)
	console.On("Execute", "SELEC 1").
		Return(&entity.ExecResult{Success: false, Message: "Error executing query: syntax error"}, nil)

	app := newApp(handler.NewQueryHandler(console))

	status, b := do(t, app, http.MethodPost, "/api/query", `{"query":"DELETE FROM t"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Query executed successfully. Rows affected: 2", b.Message)

	status, b = do(t, app, http.MethodPost, "/api/query", `{"query":"SELEC 1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b.Data), `"success":false`)
}

func TestQueryHandler_ExecuteEmpty(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("Execute", "").Return(nil, entity.NewValidationError("query", "query is required"))

	app := newApp(handler.NewQueryHandler(console))
	status, b := do(t, app, http.MethodPost, "/api/query", `{"query":""}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "query is required", b.Errors["query"])
}

func TestQueryHandler_History(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("History").Return([]string{"SELECT 1", "SELECT 2"})

	app := newApp(handler.NewQueryHandler(console))
	status, b := do(t, app, http.MethodGet, "/api/query/history", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `["SELECT 1","SELECT 2"]`, string(b.Data))
}

func TestTableHandler_CreateTable(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	columns := []entity.ColumnDefinition{{Name: "id", Type: "SERIAL", PrimaryKey: true}}
	console.On("CreateTable", "public", "users", columns).
		Return(&entity.ExecResult{Success: true, Message: "Table public.users created."}, nil)

	app := newApp(handler.NewTableHandler(console))
	status, b := do(t, app, http.MethodPost, "/api/schemas/public/tables",
		`{"name":"users","columns":[{"name":"id","type":"SERIAL","primary_key":true}]}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Table public.users created.", b.Message)
	console.AssertExpectations(t)
}

func TestTableHandler_RenameAndDrop(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	console.On("RenameTable", "public", "users", "people").
		Return(&entity.ExecResult{Success: true, Message: "renamed"}, nil)
	console.On("DropTable", "public", "people", "nope").
		Return(nil, entity.NewValidationError("confirm", "confirmation does not match table name"))

	app := newApp(handler.NewTableHandler(console))

	status, _ := do(t, app, http.MethodPatch, "/api/schemas/public/tables/users", `{"new_name":"people"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, b := do(t, app, http.MethodDelete, "/api/schemas/public/tables/people?confirm=nope", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, b.Errors, "confirm")
	console.AssertExpectations(t)
}

func TestTableHandler_AddColumnAndIndex(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	column := entity.ColumnDefinition{Name: "email", Type: "TEXT", Nullable: true}
	index := entity.IndexDefinition{Name: "users_email_idx", Columns: []string{"email"}, Unique: true}
	console.On("AddColumn", "public", "users", column).
		Return(&entity.ExecResult{Success: true, Message: "added"}, nil)
	console.On("AddIndex", "public", "users", index).
		Return(&entity.ExecResult{Success: false, Message: "Error executing query: duplicate"}, nil)

	app := newApp(handler.NewTableHandler(console))

	status, _ := do(t, app, http.MethodPost, "/api/schemas/public/tables/users/columns",
		`{"name":"email","type":"TEXT","nullable":true}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, b := do(t, app, http.MethodPost, "/api/schemas/public/tables/users/indexes",
		`{"name":"users_email_idx","columns":["email"],"unique":true}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b.Data), `"success":false`)
	console.AssertExpectations(t)
}

func TestProfileHandler(t *testing.T) {
	console := new(mocks.ConsoleUsecase)
	params := entity.ConnectionParams{Host: "db", Port: 5432, Database: "app", User: "app", Password: "pw"}
	console.On("SaveProfile", "staging", params).
		Return(&entity.ConnectionProfile{ID: 1, Name: "staging", Host: "db", Port: 5432, SealedPassword: "sealed"}, nil)
	console.On("ListProfiles").Return([]*entity.ConnectionProfile{{ID: 1, Name: "staging"}}, nil)
	console.On("DeleteProfile", "staging").Return(nil)
	console.On("DeleteProfile", "ghost").Return(entity.ErrProfileNotFound)

	app := newApp(handler.NewProfileHandler(console))

	status, b := do(t, app, http.MethodPost, "/api/profiles",
		`{"name":"staging","host":"db","port":5432,"database":"app","user":"app","password":"pw"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.NotContains(t, string(b.Data), "sealed")

	status, b = do(t, app, http.MethodGet, "/api/profiles", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(b.Data), `"staging"`)

	status, _ = do(t, app, http.MethodDelete, "/api/profiles/staging", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, http.MethodDelete, "/api/profiles/ghost", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	console.AssertExpectations(t)
}
