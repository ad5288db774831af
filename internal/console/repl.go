// Package console is the terminal front end of the manager: a readline
// prompt over the same ConsoleUsecase the HTTP API uses.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rahmatrdn/go-pg-manager/entity"
	"github.com/rahmatrdn/go-pg-manager/internal/usecase"
)

const (
	prompt             = "pgm> "
	continuationPrompt = " ...> "
	defaultRowLimit    = 100
)

type REPL struct {
	console  usecase.ConsoleUsecase
	defaults entity.ConnectionParams
	out      io.Writer
	errOut   io.Writer
}

func NewREPL(console usecase.ConsoleUsecase, defaults entity.ConnectionParams, out, errOut io.Writer) *REPL {
	return &REPL{console: console, defaults: defaults, out: out, errOut: errOut}
}

// Run reads lines until .quit or EOF. SQL accumulates until a line ends
// with a semicolon.
func (r *REPL) Run(ctx context.Context, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          r.out,
		Stderr:          r.errOut,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(r.out, "PostgreSQL console. Type .help for commands, .quit to exit")

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, pending := r.feed(ctx, &buf, line)
		if quit {
			return nil
		}
		if pending {
			rl.SetPrompt(continuationPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
}

// feed handles one input line. pending reports whether buf holds an
// unfinished statement.
func (r *REPL) feed(ctx context.Context, buf *strings.Builder, line string) (quit, pending bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, buf.Len() > 0
	}

	if buf.Len() == 0 && strings.HasPrefix(line, ".") {
		return r.HandleCommand(ctx, line), false
	}

	buf.WriteString(line)
	if !strings.HasSuffix(line, ";") {
		buf.WriteString("\n")
		return false, true
	}

	query := buf.String()
	buf.Reset()
	r.Execute(ctx, query)
	return false, false
}

func (r *REPL) Execute(ctx context.Context, query string) {
	res, err := r.console.Execute(ctx, query)
	if err != nil {
		r.fail(err)
		return
	}
	if !res.Success {
		_, _ = fmt.Fprintln(r.errOut, res.Message)
		return
	}
	if res.Result != nil {
		renderResult(r.out, res.Result)
		return
	}
	_, _ = fmt.Fprintln(r.out, res.Message)
}

// HandleCommand runs one dot-command and reports whether the REPL should
// stop.
func (r *REPL) HandleCommand(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printHelp(r.out)

	case ".connect":
		r.report(r.console.Connect(ctx, r.defaults), "Connected to PostgreSQL database!")

	case ".profile":
		if len(args) != 1 {
			r.usage(".profile <name>")
			return false
		}
		r.report(r.console.ConnectProfile(ctx, args[0]), "Connected to PostgreSQL database!")

	case ".disconnect":
		r.report(r.console.Disconnect(ctx), "Disconnected from database.")

	case ".status":
		r.printStatus()

	case ".schemas":
		schemas, err := r.console.ListSchemas(ctx)
		if err != nil {
			r.fail(err)
			return false
		}
		renderList(r.out, "schema", schemas)

	case ".tables":
		if len(args) != 1 {
			r.usage(".tables <schema>")
			return false
		}
		tables, err := r.console.ListTables(ctx, args[0])
		if err != nil {
			r.fail(err)
			return false
		}
		renderList(r.out, "table", tables)

	case ".describe":
		schema, table, ok := splitQualified(args)
		if !ok {
			r.usage(".describe <schema>.<table>")
			return false
		}
		structure, err := r.console.DescribeTable(ctx, schema, table)
		if err != nil {
			r.fail(err)
			return false
		}
		renderStructure(r.out, structure)

	case ".rows":
		r.rows(ctx, args)

	case ".history":
		for i, q := range r.console.History() {
			_, _ = fmt.Fprintf(r.out, "%2d  %s\n", i+1, q)
		}

	default:
		_, _ = fmt.Fprintf(r.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func (r *REPL) rows(ctx context.Context, args []string) {
	schema, table, ok := splitQualified(args)
	if !ok || len(args) > 3 {
		r.usage(".rows <schema>.<table> [limit] [offset]")
		return
	}

	filter := entity.RowFilter{Limit: defaultRowLimit}
	var err error
	if len(args) > 1 {
		if filter.Limit, err = strconv.Atoi(args[1]); err != nil {
			r.usage(".rows <schema>.<table> [limit] [offset]")
			return
		}
	}
	if len(args) > 2 {
		if filter.Offset, err = strconv.Atoi(args[2]); err != nil {
			r.usage(".rows <schema>.<table> [limit] [offset]")
			return
		}
	}

	result, err := r.console.FetchRows(ctx, schema, table, filter)
	if err != nil {
		r.fail(err)
		return
	}
	if result.RowCount == 0 {
		_, _ = fmt.Fprintln(r.out, "No data found for the selected table with the given criteria.")
		return
	}
	renderResult(r.out, result)
}

func (r *REPL) printStatus() {
	status := r.console.Status()
	if status.State != entity.StateConnected {
		_, _ = fmt.Fprintln(r.out, "Not connected.")
		return
	}
	_, _ = fmt.Fprintf(r.out, "Connected to %s/%s as %s (session %s)\n",
		status.Host, status.Database, status.User, status.SessionID)
}

func (r *REPL) report(err error, ok string) {
	if err != nil {
		r.fail(err)
		return
	}
	_, _ = fmt.Fprintln(r.out, ok)
}

func (r *REPL) fail(err error) {
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		_, _ = fmt.Fprintf(r.errOut, "Invalid input: %v\n", err)
		return
	}
	_, _ = fmt.Fprintf(r.errOut, "Error: %v\n", err)
}

func (r *REPL) usage(u string) {
	_, _ = fmt.Fprintf(r.errOut, "Usage: %s\n", u)
}

func splitQualified(args []string) (schema, table string, ok bool) {
	if len(args) == 0 {
		return "", "", false
	}
	schema, table, ok = strings.Cut(args[0], ".")
	if !ok || schema == "" || table == "" {
		return "", "", false
	}
	return schema, table, true
}

func newCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".connect"),
		readline.PcItem(".profile"),
		readline.PcItem(".disconnect"),
		readline.PcItem(".status"),
		readline.PcItem(".schemas"),
		readline.PcItem(".tables"),
		readline.PcItem(".describe"),
		readline.PcItem(".rows"),
		readline.PcItem(".history"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
	)
}

func printHelp(w io.Writer) {
	help := `
Commands:
  .connect                              Connect with the configured defaults
  .profile <name>                       Connect with a saved profile
  .disconnect                           Close the connection
  .status                               Show the session state
  .schemas                              List schemas
  .tables <schema>                      List tables of a schema
  .describe <schema>.<table>            Show columns, keys and indexes
  .rows <schema>.<table> [limit] [off]  Browse rows (default limit 100)
  .history                              Recent queries
  .help                                 Show this help message
  .quit / .exit                         Exit

SQL statements end with a semicolon (;) and run in their own transaction.
`
	_, _ = fmt.Fprintln(w, help)
}
