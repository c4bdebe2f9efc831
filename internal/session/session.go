// Package session implements the line-based browsing loop: list the tables,
// read a 1-based selection, fetch and render the table, repeat.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joacominatel/tablepeek/internal/app"
	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/joacominatel/tablepeek/internal/grid"
	"github.com/pkg/errors"
)

// Frame is printed between iterations.
var Frame = strings.Repeat("=", 50)

// Messages shown to the user.
const (
	MsgAvailable    = "Available tables:"
	MsgNoTables     = "No tables in the database!"
	MsgPrompt       = "Select a table number (or 'q' to quit): "
	MsgInvalidIndex = "Invalid table number!"
	MsgNotANumber   = "Please enter a valid table number!"
)

// Browser is the part of app.Service the loop drives.
type Browser interface {
	ListTables(ctx context.Context) ([]app.TableName, error)
	FetchTable(ctx context.Context, name app.TableName) (*database.ResultSet, error)
}

// Loop reads selections from In and writes listings and grids to Out.
type Loop struct {
	In      io.Reader
	Out     io.Writer
	Browser Browser
	Style   grid.Style

	// Timeouts applied to each call; zero means no timeout.
	ListTimeout  time.Duration
	FetchTimeout time.Duration
}

// Run drives the loop until the user quits, input ends or the table listing
// fails. Listing failures are returned; everything else is reported to Out
// and the loop continues.
func (l *Loop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.In)

	for {
		tables, err := l.list(ctx)
		if err != nil {
			return err
		}

		if len(tables) == 0 {
			l.println(MsgNoTables)
			return nil
		}

		l.printf("%s", MsgPrompt)
		if !scanner.Scan() {
			l.println()
			return scanner.Err()
		}

		choice := strings.TrimSpace(scanner.Text())
		if IsExit(choice) {
			return nil
		}

		name, err := Select(tables, choice)
		if err != nil {
			l.reportInput(err)
		} else {
			l.show(ctx, name)
		}

		l.println()
		l.println(Frame)
		l.println()
	}
}

// IsExit reports whether input asks to leave the loop.
func IsExit(input string) bool {
	switch strings.ToLower(input) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// Select resolves a 1-based index typed by the user against tables.
func Select(tables []app.TableName, input string) (app.TableName, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return "", &app.ErrInput{Input: input, Reason: app.ReasonNotANumber}
	}
	if n < 1 || n > len(tables) {
		return "", &app.ErrInput{Input: input, Reason: app.ReasonOutOfRange}
	}
	return tables[n-1], nil
}

func (l *Loop) list(ctx context.Context) ([]app.TableName, error) {
	ctx, cancel := withTimeout(ctx, l.ListTimeout)
	defer cancel()

	tables, err := l.Browser.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	l.println()
	l.println(MsgAvailable)
	for i, t := range tables {
		l.printf("%d. %s\n", i+1, t)
	}
	l.println()
	return tables, nil
}

func (l *Loop) show(ctx context.Context, name app.TableName) {
	l.println()
	l.printf("Selected table: %s\n", name)

	ctx, cancel := withTimeout(ctx, l.FetchTimeout)
	defer cancel()

	result, err := l.Browser.FetchTable(ctx, name)
	if err != nil {
		l.reportFailure(err)
		return
	}

	l.println()
	if err := grid.Write(l.Out, l.Style, result.Columns, result.Rows); err != nil {
		l.reportFailure(err)
		return
	}
	if len(result.Columns) > 0 {
		l.println(Summary(result))
	}
}

// Summary describes how many rows were fetched and how long it took.
func Summary(result *database.ResultSet) string {
	noun := "rows"
	if len(result.Rows) == 1 {
		noun = "row"
	}
	return fmt.Sprintf("%s %s (%s)",
		humanize.Comma(int64(len(result.Rows))),
		noun,
		result.Duration.Round(time.Millisecond),
	)
}

func (l *Loop) reportInput(err error) {
	var inErr *app.ErrInput
	if errors.As(err, &inErr) && inErr.Reason == app.ReasonOutOfRange {
		l.println(MsgInvalidIndex)
		return
	}
	l.println(MsgNotANumber)
}

func (l *Loop) reportFailure(err error) {
	l.println(Describe(err))
}

// Describe formats a failure for the console. The hint, when there is one,
// goes on its own line.
func Describe(err error) string {
	var b strings.Builder

	var f app.Failure
	if errors.As(err, &f) {
		b.WriteString("Error [")
		b.WriteString(f.Kind().String())
		if code := f.NativeCode(); code != "" {
			b.WriteString(" ")
			b.WriteString(code)
		}
		b.WriteString("]: ")
	} else {
		b.WriteString("Error: ")
	}
	b.WriteString(err.Error())

	if hint := hintOf(err); hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(hint)
	}
	return b.String()
}

func hintOf(err error) string {
	var qErr *app.ErrQuery
	if errors.As(err, &qErr) {
		return qErr.Hint
	}
	var cErr *app.ErrConnection
	if errors.As(err, &cErr) {
		return cErr.Hint
	}
	return ""
}

func (l *Loop) println(a ...any) {
	fmt.Fprintln(l.Out, a...)
}

func (l *Loop) printf(format string, a ...any) {
	fmt.Fprintf(l.Out, format, a...)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
