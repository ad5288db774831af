package postgres

import (
	"context"
	"database/sql"

	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-pg-manager/entity"
)

const (
	listSchemasQuery = `
SELECT schema_name
FROM information_schema.schemata
WHERE schema_name NOT IN ('pg_catalog', 'information_schema')
ORDER BY schema_name`

	listTablesQuery = `
SELECT table_name
FROM information_schema.tables
WHERE table_schema = $1
ORDER BY table_name`

	columnsQuery = `
SELECT column_name, data_type, is_nullable, column_default
FROM information_schema.columns
WHERE table_schema = $1 AND table_name = $2
ORDER BY ordinal_position`

	primaryKeysQuery = `
SELECT kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
    ON tc.constraint_name = kcu.constraint_name
    AND tc.table_schema = kcu.table_schema
WHERE tc.constraint_type = 'PRIMARY KEY'
    AND tc.table_schema = $1
    AND tc.table_name = $2
ORDER BY kcu.ordinal_position`

	foreignKeysQuery = `
SELECT
    kcu.column_name,
    ccu.table_schema AS foreign_table_schema,
    ccu.table_name AS foreign_table_name,
    ccu.column_name AS foreign_column_name
FROM information_schema.table_constraints AS tc
JOIN information_schema.key_column_usage AS kcu
    ON tc.constraint_name = kcu.constraint_name
    AND tc.table_schema = kcu.table_schema
JOIN information_schema.constraint_column_usage AS ccu
    ON ccu.constraint_name = tc.constraint_name
    AND ccu.table_schema = tc.table_schema
WHERE tc.constraint_type = 'FOREIGN KEY'
    AND tc.table_schema = $1
    AND tc.table_name = $2
ORDER BY kcu.ordinal_position`

	indexesQuery = `
SELECT i.relname AS index_name, a.attname AS column_name, ix.indisunique AS is_unique
FROM pg_class t
JOIN pg_index ix ON t.oid = ix.indrelid
JOIN pg_class i ON i.oid = ix.indexrelid
JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(ix.indkey)
JOIN pg_namespace n ON t.relnamespace = n.oid
WHERE t.relkind = 'r'
    AND n.nspname = $1
    AND t.relname = $2
ORDER BY i.relname, a.attnum`
)

func (c *clientImpl) ListSchemas(ctx context.Context) ([]string, error) {
	names, err := c.queryNames(ctx, listSchemasQuery)
	if err != nil {
		return nil, &entity.QueryError{Op: "fetching schemas", Err: errwrap.Wrap(err, "Client.ListSchemas")}
	}
	return names, nil
}

func (c *clientImpl) ListTables(ctx context.Context, schema string) ([]string, error) {
	names, err := c.queryNames(ctx, listTablesQuery, schema)
	if err != nil {
		return nil, &entity.QueryError{Op: "fetching tables", Err: errwrap.Wrap(err, "Client.ListTables")}
	}
	return names, nil
}

// DescribeTable runs the four catalog reads. A failure in any of them
// discards the others.
func (c *clientImpl) DescribeTable(ctx context.Context, schema, table string) (*entity.TableStructure, error) {
	funcName := "Client.DescribeTable"
	wrap := func(err error) error {
		return &entity.QueryError{Op: "fetching table structure", Err: errwrap.Wrap(err, funcName)}
	}

	columns, err := c.columns(ctx, schema, table)
	if err != nil {
		return nil, wrap(err)
	}

	primaryKeys, err := c.queryNames(ctx, primaryKeysQuery, schema, table)
	if err != nil {
		return nil, wrap(err)
	}

	foreignKeys, err := c.foreignKeys(ctx, schema, table)
	if err != nil {
		return nil, wrap(err)
	}

	indexColumns, err := c.indexColumns(ctx, schema, table)
	if err != nil {
		return nil, wrap(err)
	}

	pk := make(map[string]bool, len(primaryKeys))
	for _, name := range primaryKeys {
		pk[name] = true
	}
	for i := range columns {
		columns[i].IsPrimaryKey = pk[columns[i].Name]
	}

	return &entity.TableStructure{
		Schema:       schema,
		Table:        table,
		Columns:      columns,
		PrimaryKeys:  primaryKeys,
		ForeignKeys:  foreignKeys,
		IndexColumns: indexColumns,
	}, nil
}

func (c *clientImpl) queryNames(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (c *clientImpl) columns(ctx context.Context, schema, table string) ([]entity.ColumnInfo, error) {
	rows, err := c.db.QueryContext(ctx, columnsQuery, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns := []entity.ColumnInfo{}
	for rows.Next() {
		var col entity.ColumnInfo
		var nullable string
		var def sql.NullString
		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &def); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		if def.Valid {
			col.Default = &def.String
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func (c *clientImpl) foreignKeys(ctx context.Context, schema, table string) ([]entity.ForeignKey, error) {
	rows, err := c.db.QueryContext(ctx, foreignKeysQuery, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fks := []entity.ForeignKey{}
	for rows.Next() {
		var fk entity.ForeignKey
		if err := rows.Scan(&fk.Column, &fk.ForeignSchema, &fk.ForeignTable, &fk.ForeignColumn); err != nil {
			return nil, err
		}
		fks = append(fks, fk)
	}
	return fks, rows.Err()
}

func (c *clientImpl) indexColumns(ctx context.Context, schema, table string) ([]entity.IndexColumn, error) {
	rows, err := c.db.QueryContext(ctx, indexesQuery, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	indexes := []entity.IndexColumn{}
	for rows.Next() {
		var ic entity.IndexColumn
		if err := rows.Scan(&ic.IndexName, &ic.Column, &ic.Unique); err != nil {
			return nil, err
		}
		indexes = append(indexes, ic)
	}
	return indexes, rows.Err()
}
