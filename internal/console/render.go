package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rahmatrdn/go-pg-manager/entity"
)

func renderResult(w io.Writer, result *entity.QueryResult) {
	if result == nil || len(result.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := newTable(w)
	header := make(table.Row, len(result.Columns))
	for i, col := range result.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, r := range result.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = formatValue(v)
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(result.Rows))
}

func renderList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{title})
	for _, item := range items {
		t.AppendRow(table.Row{item})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(items))
}

func renderStructure(w io.Writer, s *entity.TableStructure) {
	_, _ = fmt.Fprintf(w, "%s.%s\n", s.Schema, s.Table)

	t := newTable(w)
	t.AppendHeader(table.Row{"Column", "Type", "Nullable", "Default", "PK"})
	for _, c := range s.Columns {
		def := ""
		if c.Default != nil {
			def = *c.Default
		}
		pk := ""
		if c.IsPrimaryKey {
			pk = "yes"
		}
		t.AppendRow(table.Row{c.Name, c.DataType, yesNo(c.Nullable), def, pk})
	}
	t.Render()

	if len(s.ForeignKeys) > 0 {
		_, _ = fmt.Fprintln(w, "Foreign keys:")
		fk := newTable(w)
		fk.AppendHeader(table.Row{"Column", "References"})
		for _, f := range s.ForeignKeys {
			fk.AppendRow(table.Row{f.Column, fmt.Sprintf("%s.%s(%s)", f.ForeignSchema, f.ForeignTable, f.ForeignColumn)})
		}
		fk.Render()
	}

	if indexes := s.Indexes(); len(indexes) > 0 {
		_, _ = fmt.Fprintln(w, "Indexes:")
		it := newTable(w)
		it.AppendHeader(table.Row{"Name", "Columns", "Unique"})
		for _, idx := range indexes {
			it.AppendRow(table.Row{idx.Name, strings.Join(idx.Columns, ", "), yesNo(idx.Unique)})
		}
		it.Render()
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprint(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
