package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// DefaultMaxCellWidth bounds the display width of a single cell.
const DefaultMaxCellWidth = 60

const ellipsis = "…"

// renderTable draws columns and rows as a bordered table.
func renderTable(st styles, columns []string, rows [][]interface{}, maxWidth int) string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(columns))
		for i := range columns {
			var value interface{}
			if i < len(row) {
				value = row[i]
			}
			line[i] = truncate(singleLine(FormatValue(value)), maxWidth)
		}
		cells = append(cells, line)
	}
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = truncate(singleLine(col), maxWidth)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		}).
		Headers(headers...).
		Rows(cells...)
	return t.String()
}

// truncate shortens s to max display cells; max <= 0 disables truncation.
func truncate(s string, max int) string {
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, ellipsis)
}

// singleLine collapses embedded newlines so rows stay on one line.
func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}
