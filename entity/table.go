package entity

// DataTypes lists the column types offered by the table forms.
var DataTypes = []string{
	"INTEGER", "BIGINT", "SMALLINT", "DECIMAL", "NUMERIC",
	"REAL", "DOUBLE PRECISION", "VARCHAR", "CHAR", "TEXT",
	"BOOLEAN", "DATE", "TIME", "TIMESTAMP", "JSON", "JSONB",
	"UUID", "BYTEA", "ARRAY",
}

type ColumnInfo struct {
	Name         string  `json:"name"`
	DataType     string  `json:"data_type"`
	Nullable     bool    `json:"nullable"`
	Default      *string `json:"default"`
	IsPrimaryKey bool    `json:"is_primary_key"`
}

type ForeignKey struct {
	Column        string `json:"column"`
	ForeignSchema string `json:"foreign_schema"`
	ForeignTable  string `json:"foreign_table"`
	ForeignColumn string `json:"foreign_column"`
}

// IndexColumn is one (index, column) pair as returned by pg_index.
type IndexColumn struct {
	IndexName string `json:"index_name"`
	Column    string `json:"column"`
	Unique    bool   `json:"unique"`
}

type Index struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique"`
}

// TableStructure is a snapshot of a table's catalog entries. It is
// recomputed on every request.
type TableStructure struct {
	Schema       string        `json:"schema"`
	Table        string        `json:"table"`
	Columns      []ColumnInfo  `json:"columns"`
	PrimaryKeys  []string      `json:"primary_keys"`
	ForeignKeys  []ForeignKey  `json:"foreign_keys"`
	IndexColumns []IndexColumn `json:"index_columns"`
}

// Indexes groups IndexColumns by index name, keeping catalog order.
func (s *TableStructure) Indexes() []Index {
	var indexes []Index
	pos := make(map[string]int)
	for _, ic := range s.IndexColumns {
		i, ok := pos[ic.IndexName]
		if !ok {
			pos[ic.IndexName] = len(indexes)
			indexes = append(indexes, Index{Name: ic.IndexName, Unique: ic.Unique})
			i = len(indexes) - 1
		}
		indexes[i].Columns = append(indexes[i].Columns, ic.Column)
	}
	return indexes
}

// ColumnNames returns the column names in ordinal order.
func (s *TableStructure) ColumnNames() []string {
	names := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		names = append(names, c.Name)
	}
	return names
}

// ColumnDefinition describes a column for CREATE TABLE / ADD COLUMN.
type ColumnDefinition struct {
	Name       string `json:"name" validate:"max=63"`
	Type       string `json:"type" validate:"required,oneof=INTEGER BIGINT SMALLINT DECIMAL NUMERIC REAL 'DOUBLE PRECISION' VARCHAR CHAR TEXT BOOLEAN DATE TIME TIMESTAMP JSON JSONB UUID BYTEA ARRAY"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
	Default    string `json:"default"`
}

type IndexDefinition struct {
	Name    string   `json:"name" validate:"required,max=63"`
	Columns []string `json:"columns" validate:"required,min=1,dive,required"`
	Unique  bool     `json:"unique"`
}
