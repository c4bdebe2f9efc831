// Package grid renders result sets as fixed-width text.
//
// Render is a pure function of its input: the same columns and rows always
// produce the same lines. Column widths are measured in terminal cells, so
// wide runes are accounted for and values are never truncated.
package grid

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/joacominatel/tablepeek/internal/database"
)

const (
	// Delimiter separates cells on a line.
	Delimiter = " | "

	// Rule is repeated to build the separator line.
	Rule = "-"

	// NoColumns is the only line rendered for a result without columns.
	NoColumns = "(no columns)"

	// NoData replaces the row block of a result without rows.
	NoData = "(no data)"
)

// Widths returns the display width of every column: the widest of the
// header and each rendered value, and at least 1.
func Widths(columns []database.Column, rows []database.Row) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = max(1, lipgloss.Width(Cell(col.Name)))
	}

	for _, row := range rows {
		for i, v := range row {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], lipgloss.Width(Cell(v.String())))
		}
	}

	return widths
}

// Render lays columns and rows out as text lines: header, separator, one
// line per row and a closing separator.
func Render(columns []database.Column, rows []database.Row) []string {
	if len(columns) == 0 {
		return []string{NoColumns}
	}

	widths := Widths(columns, rows)

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = Cell(col.Name)
	}
	header := line(names, widths)
	separator := strings.Repeat(Rule, lipgloss.Width(header))

	lines := make([]string, 0, len(rows)+3)
	lines = append(lines, header, separator)

	if len(rows) == 0 {
		lines = append(lines, NoData)
	}

	cells := make([]string, len(columns))
	for _, row := range rows {
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = Cell(row[i].String())
			}
		}
		lines = append(lines, line(cells, widths))
	}

	return append(lines, separator)
}

// RenderResult renders a whole result set.
func RenderResult(rs *database.ResultSet) []string {
	return Render(rs.Columns, rs.Rows)
}

func line(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(Delimiter)
		}
		b.WriteString(cell)
		// pad to column width; never negative
		if pad := widths[i] - lipgloss.Width(cell); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}

// Cell returns s as it is drawn in a grid cell. Control runes are written
// as backslash escapes so every cell stays on one line and nothing in the
// data reaches the terminal as a control sequence.
func Cell(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsControl(r):
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
