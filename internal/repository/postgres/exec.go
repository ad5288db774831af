package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/stdlib"
	errwrap "github.com/pkg/errors"
	"github.com/rahmatrdn/go-pg-manager/entity"
)

var (
	dollarTag = regexp.MustCompile(`^\$([A-Za-z_][A-Za-z0-9_]*)?\$`)

	rowStatements = map[string]bool{"SELECT": true, "VALUES": true, "TABLE": true, "SHOW": true, "EXPLAIN": true, "FETCH": true}
	dmlStatements = map[string]bool{"INSERT": true, "UPDATE": true, "DELETE": true, "MERGE": true}
)

// ReturnsRows reports whether statement produces a result set, judged from
// its text. For a WITH query the main statement after the CTE list decides;
// DML returns rows only with a top-level RETURNING clause.
func ReturnsRows(statement string) bool {
	words := topLevelWords(stripSQL(statement))
	if len(words) == 0 {
		return false
	}

	main, rest := words[0], words[1:]
	if main == "WITH" {
		main = ""
		for i, w := range rest {
			if rowStatements[w] || dmlStatements[w] {
				main, rest = w, rest[i+1:]
				break
			}
		}
	}

	if rowStatements[main] {
		return true
	}
	if dmlStatements[main] {
		for _, w := range rest {
			if w == "RETURNING" {
				return true
			}
		}
	}
	return false
}

// stripSQL blanks out comments, string literals, dollar-quoted bodies and
// quoted identifiers.
func stripSQL(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "--"):
			end := strings.IndexByte(s[i:], '\n')
			if end < 0 {
				i = len(s)
			} else {
				i += end
			}
			b.WriteByte(' ')
		case strings.HasPrefix(s[i:], "/*"):
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				i = len(s)
			} else {
				i += end + 4
			}
			b.WriteByte(' ')
		case s[i] == '\'' || s[i] == '"':
			i = skipQuoted(s, i)
			b.WriteByte(' ')
		case s[i] == '$':
			tag := dollarTag.FindString(s[i:])
			if tag == "" {
				b.WriteByte('$')
				i++
				continue
			}
			end := strings.Index(s[i+len(tag):], tag)
			if end < 0 {
				i = len(s)
			} else {
				i += 2*len(tag) + end
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// skipQuoted returns the index just past the quoted run starting at i.
// A doubled quote character is an escaped quote.
func skipQuoted(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		if s[j] != q {
			continue
		}
		if j+1 < len(s) && s[j+1] == q {
			j++
			continue
		}
		return j + 1
	}
	return len(s)
}

// topLevelWords returns the upper-cased words outside any parentheses.
// Leading parentheses are skipped so "(SELECT 1) UNION ..." counts as a
// SELECT.
func topLevelWords(s string) []string {
	s = strings.TrimLeft(s, " \t\r\n(")

	var (
		words []string
		depth int
		word  strings.Builder
	)
	flush := func() {
		if word.Len() > 0 {
			if depth == 0 {
				words = append(words, strings.ToUpper(word.String()))
			}
			word.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			word.WriteRune(r)
		case r == '(':
			flush()
			depth++
		case r == ')':
			flush()
			if depth > 0 {
				depth--
			}
		default:
			flush()
		}
	}
	flush()
	return words
}

// describeReturnsRows asks the server for the result shape of statement
// without running it. It falls back to ReturnsRows when the connection is
// not a pgx one or the statement cannot be described on its own (several
// statements in one string, syntax errors).
func describeReturnsRows(ctx context.Context, conn *sql.Conn, statement string) bool {
	returnsRows := ReturnsRows(statement)
	_ = conn.Raw(func(driverConn any) error {
		pc, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return nil
		}
		sd, err := pc.Conn().PgConn().Prepare(ctx, "", statement, nil)
		if err != nil {
			return nil
		}
		returnsRows = len(sd.Fields) > 0
		return nil
	})
	return returnsRows
}

// Execute runs statement in its own transaction: commit on success,
// rollback on any failure.
func (c *clientImpl) Execute(ctx context.Context, statement string) (*entity.StatementResult, error) {
	funcName := "Client.Execute"

	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	defer func() { _ = conn.Close() }()

	returnsRows := describeReturnsRows(ctx, conn, statement)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	res := &entity.StatementResult{}
	if returnsRows {
		rows, err := tx.QueryContext(ctx, statement)
		if err != nil {
			_ = tx.Rollback()
			return nil, errwrap.Wrap(err, funcName)
		}
		res.Result, err = scanRows(rows)
		_ = rows.Close()
		if err != nil {
			_ = tx.Rollback()
			return nil, errwrap.Wrap(err, funcName)
		}
	} else {
		out, err := tx.ExecContext(ctx, statement)
		if err != nil {
			_ = tx.Rollback()
			return nil, errwrap.Wrap(err, funcName)
		}
		res.RowsAffected, _ = out.RowsAffected()
	}

	if err := tx.Commit(); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}
	return res, nil
}
