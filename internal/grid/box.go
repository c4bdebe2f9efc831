package grid

import (
	"fmt"
	"io"

	"github.com/joacominatel/tablepeek/internal/database"
	"github.com/olekukonko/tablewriter"
)

// Style selects how a result set is drawn.
type Style string

const (
	StylePlain Style = "plain"
	StyleBox   Style = "box"
)

// ParseStyle validates a style name; the empty string selects StylePlain.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case "", StylePlain:
		return StylePlain, nil
	case StyleBox:
		return StyleBox, nil
	default:
		return "", fmt.Errorf("unknown style %q (want %q or %q)", s, StylePlain, StyleBox)
	}
}

// Write renders columns and rows in the given style to w, one line at a time.
func Write(w io.Writer, style Style, columns []database.Column, rows []database.Row) error {
	if style == StyleBox {
		return RenderBox(w, columns, rows)
	}
	for _, l := range Render(columns, rows) {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// RenderBox draws a bordered table through tablewriter. It shares the
// NoColumns and NoData edge cases with Render.
func RenderBox(w io.Writer, columns []database.Column, rows []database.Row) error {
	if len(columns) == 0 {
		_, err := fmt.Fprintln(w, NoColumns)
		return err
	}

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = Cell(col.Name)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(names)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = Cell(row[i].String())
			}
		}
		table.Append(cells)
	}

	table.Render()

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, NoData)
		return err
	}
	return nil
}
