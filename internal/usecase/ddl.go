package usecase

import (
	"fmt"
	"strings"

	"github.com/rahmatrdn/go-pg-manager/entity"
)

// The builders below render DDL from form input. Names, types and default
// expressions are inserted as typed; the console trusts its operator.

func qualified(schema, table string) string {
	return schema + "." + table
}

func columnClause(col entity.ColumnDefinition) string {
	clause := col.Name + " " + col.Type
	if !col.Nullable {
		clause += " NOT NULL"
	}
	if col.Default != "" {
		clause += " DEFAULT " + col.Default
	}
	return clause
}

// BuildCreateTable skips columns without a name. It returns an empty string
// when no named column is left.
func BuildCreateTable(schema, table string, columns []entity.ColumnDefinition) string {
	var clauses, primaryKeys []string
	for _, col := range columns {
		if col.Name == "" {
			continue
		}
		clauses = append(clauses, columnClause(col))
		if col.PrimaryKey {
			primaryKeys = append(primaryKeys, col.Name)
		}
	}
	if len(clauses) == 0 {
		return ""
	}
	if len(primaryKeys) > 0 {
		clauses = append(clauses, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(primaryKeys, ", ")))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", qualified(schema, table), strings.Join(clauses, ",\n"))
}

func BuildAddColumn(schema, table string, col entity.ColumnDefinition) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;", qualified(schema, table), columnClause(col))
}

func BuildRenameTable(schema, table, newName string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s;", qualified(schema, table), newName)
}

func BuildAddIndex(schema, table string, idx entity.IndexDefinition) string {
	unique := ""
	if idx.Unique {
		unique = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s (%s);", unique, idx.Name, qualified(schema, table), strings.Join(idx.Columns, ", "))
}

func BuildDropTable(schema, table string) string {
	return fmt.Sprintf("DROP TABLE %s;", qualified(schema, table))
}
