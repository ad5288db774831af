package postgres

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListSchemas(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE schema_name NOT IN ('pg_catalog', 'information_schema')")).
		WillReturnRows(sqlmock.NewRows([]string{"schema_name"}).AddRow("public").AddRow("sales"))

	schemas, err := client.ListSchemas(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"public", "sales"}, schemas)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_ListSchemas_Error(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery("information_schema.schemata").WillReturnError(errors.New("permission denied"))

	schemas, err := client.ListSchemas(t.Context())
	assert.Nil(t, schemas)

	var qerr *entity.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "fetching schemas", qerr.Op)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestClient_ListTables(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("sales").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("orders").AddRow("customers"))

	tables, err := client.ListTables(t.Context(), "sales")
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "customers"}, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_ListTables_Empty(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("empty").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	tables, err := client.ListTables(t.Context(), "empty")
	require.NoError(t, err)
	assert.Empty(t, tables)
	assert.NotNil(t, tables)
}

func expectStructureQueries(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("public", "orders").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable", "column_default"}).
			AddRow("id", "integer", "NO", "nextval('orders_id_seq'::regclass)").
			AddRow("customer_id", "integer", "YES", nil))
	mock.ExpectQuery("constraint_type = 'PRIMARY KEY'").
		WithArgs("public", "orders").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))
	mock.ExpectQuery("constraint_type = 'FOREIGN KEY'").
		WithArgs("public", "orders").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "foreign_table_schema", "foreign_table_name", "foreign_column_name"}).
			AddRow("customer_id", "public", "customers", "id"))
	mock.ExpectQuery("FROM pg_class t").
		WithArgs("public", "orders").
		WillReturnRows(sqlmock.NewRows([]string{"index_name", "column_name", "is_unique"}).
			AddRow("orders_pkey", "id", true).
			AddRow("orders_customer_idx", "customer_id", false))
}

func TestClient_DescribeTable(t *testing.T) {
	client, mock := newMockClient(t)
	expectStructureQueries(mock)

	st, err := client.DescribeTable(t.Context(), "public", "orders")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, st.Columns, 2)
	assert.True(t, st.Columns[0].IsPrimaryKey)
	assert.False(t, st.Columns[0].Nullable)
	require.NotNil(t, st.Columns[0].Default)
	assert.Equal(t, "nextval('orders_id_seq'::regclass)", *st.Columns[0].Default)
	assert.False(t, st.Columns[1].IsPrimaryKey)
	assert.True(t, st.Columns[1].Nullable)
	assert.Nil(t, st.Columns[1].Default)

	assert.Equal(t, []string{"id"}, st.PrimaryKeys)
	assert.Equal(t, []entity.ForeignKey{{Column: "customer_id", ForeignSchema: "public", ForeignTable: "customers", ForeignColumn: "id"}}, st.ForeignKeys)
	assert.Len(t, st.IndexColumns, 2)
	assert.True(t, st.IndexColumns[0].Unique)
}

func TestClient_DescribeTable_PartialFailure(t *testing.T) {
	client, mock := newMockClient(t)

	mock.ExpectQuery("FROM information_schema.columns").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type", "is_nullable", "column_default"}).
			AddRow("id", "integer", "NO", nil))
	mock.ExpectQuery("constraint_type = 'PRIMARY KEY'").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))
	mock.ExpectQuery("constraint_type = 'FOREIGN KEY'").
		WillReturnError(errors.New("canceling statement"))

	st, err := client.DescribeTable(t.Context(), "public", "orders")
	assert.Nil(t, st)

	var qerr *entity.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "fetching table structure", qerr.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}
