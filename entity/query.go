package entity

// RowFilter carries the paging and raw filter fragments for a table browse.
// Where and OrderBy are inserted into the statement unescaped.
type RowFilter struct {
	Limit   int    `json:"limit" validate:"min=0,max=1000"`
	Offset  int    `json:"offset" validate:"min=0"`
	Where   string `json:"where"`
	OrderBy string `json:"order_by"`
}

type QueryResult struct {
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	RowCount int      `json:"row_count"`
}

// StatementResult is what the database reported for one statement.
// Result is nil for statements that do not return rows.
type StatementResult struct {
	Result       *QueryResult
	RowsAffected int64
}

type ExecResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Result  *QueryResult `json:"result,omitempty"`
}
