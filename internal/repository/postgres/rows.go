package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-pg-manager/entity"
)

// BuildSelect renders the browse statement for a table. Schema and table
// are quoted identifiers; Where and OrderBy are appended as given.
// Limit and offset are bound as $1 and $2.
func BuildSelect(schema, table string, filter entity.RowFilter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT * FROM %s", pgx.Identifier{schema, table}.Sanitize())

	if where := strings.TrimSpace(filter.Where); where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if orderBy := strings.TrimSpace(filter.OrderBy); orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	b.WriteString(" LIMIT $1 OFFSET $2")

	return b.String()
}

func (c *clientImpl) FetchRows(ctx context.Context, schema, table string, filter entity.RowFilter) (*entity.QueryResult, error) {
	funcName := "Client.FetchRows"

	rows, err := c.db.QueryContext(ctx, BuildSelect(schema, table, filter), filter.Limit, filter.Offset)
	if err != nil {
		return nil, &entity.QueryError{Op: "fetching table data", Err: errwrap.Wrap(err, funcName)}
	}
	defer rows.Close()

	result, err := scanRows(rows)
	if err != nil {
		return nil, &entity.QueryError{Op: "fetching table data", Err: errwrap.Wrap(err, funcName)}
	}
	return result, nil
}

func scanRows(rows *sql.Rows) (*entity.QueryResult, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &entity.QueryResult{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result.RowCount = len(result.Rows)
	return result, nil
}
