package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_CreateTable(t *testing.T) {
	f := newConsoleFixture(t)
	mock := f.connect(t)

	columns := []entity.ColumnDefinition{
		{Name: "id", Type: "BIGINT", PrimaryKey: true},
		{Name: "title", Type: "TEXT", Nullable: true},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(BuildCreateTable("public", "books", columns))).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("books"))

	res, err := f.uc.CreateTable(context.Background(), "public", "books", columns)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Query executed successfully. Rows affected: 0", res.Message)

	status := f.uc.Status()
	assert.Equal(t, []string{"books"}, status.Tables)
	assert.Equal(t, "public", status.TableSchema)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsole_CreateTableValidation(t *testing.T) {
	f := newConsoleFixture(t)
	f.connect(t)
	ctx := context.Background()

	_, err := f.uc.CreateTable(ctx, "public", "books", []entity.ColumnDefinition{{Name: "", Type: "INTEGER"}})
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "columns")

	_, err = f.uc.CreateTable(ctx, "public", "", []entity.ColumnDefinition{{Name: "id", Type: "INTEGER"}})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "table")

	_, err = f.uc.CreateTable(ctx, "public", "books", []entity.ColumnDefinition{{Name: "id", Type: "SERIAL8"}})
	require.ErrorAs(t, err, &verr)
}

func TestConsole_DropTableThenListTables(t *testing.T) {
	f := newConsoleFixture(t)
	mock := f.connect(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE public.orders;")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("customers"))
	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("customers"))

	res, err := f.uc.DropTable(ctx, "public", "orders", "orders")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotContains(t, f.uc.Status().Tables, "orders")

	tables, err := f.uc.ListTables(ctx, "public")
	require.NoError(t, err)
	assert.NotContains(t, tables, "orders")
	assert.Contains(t, f.uc.History(), "DROP TABLE public.orders;")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsole_DropTableConfirmMismatch(t *testing.T) {
	f := newConsoleFixture(t)
	mock := f.connect(t)

	_, err := f.uc.DropTable(context.Background(), "public", "orders", "order")
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "confirm")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsole_DDLFailureIsReported(t *testing.T) {
	f := newConsoleFixture(t)
	mock := f.connect(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE public.orders RENAME TO customers;")).
		WillReturnError(errors.New(`relation "customers" already exists`))
	mock.ExpectRollback()

	res, err := f.uc.RenameTable(context.Background(), "public", "orders", "customers")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsole_AddColumnAndIndex(t *testing.T) {
	f := newConsoleFixture(t)
	mock := f.connect(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE public.orders ADD COLUMN note TEXT;")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE UNIQUE INDEX orders_note_idx ON public.orders (note);")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	res, err := f.uc.AddColumn(ctx, "public", "orders", entity.ColumnDefinition{Name: "note", Type: "TEXT", Nullable: true})
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = f.uc.AddIndex(ctx, "public", "orders", entity.IndexDefinition{Name: "orders_note_idx", Columns: []string{"note"}, Unique: true})
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = f.uc.AddIndex(ctx, "public", "orders", entity.IndexDefinition{Name: "empty_idx"})
	var verr *entity.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = f.uc.AddColumn(ctx, "public", "orders", entity.ColumnDefinition{Type: "TEXT"})
	assert.ErrorAs(t, err, &verr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
