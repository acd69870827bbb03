package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TraceRow is one line of a step trace
type TraceRow struct {
	Step      string
	Value     string
	Direction string
	LastValid string
	Changed   bool // value differs from the previous row
}

var traceColumns = []string{"#", "STEP", "VALUE", "DIRECTION", "LAST VALID"}

// RenderTrace renders rows as an aligned table. Column widths are measured
// in terminal cells, so wide glyphs in values line up.
func RenderTrace(rows []TraceRow) string {
	cells := make([][]string, 0, len(rows))
	for i, r := range rows {
		cells = append(cells, []string{strconv.Itoa(i + 1), r.Step, r.Value, r.Direction, r.LastValid})
	}

	widths := make([]int, len(traceColumns))
	for c, title := range traceColumns {
		widths[c] = ansi.StringWidth(title)
	}
	for _, row := range cells {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	pad := func(s string, w int) string {
		return s + strings.Repeat(" ", w-ansi.StringWidth(s))
	}

	lines := make([]string, 0, len(rows)+1)

	header := make([]string, len(traceColumns))
	for c, title := range traceColumns {
		header[c] = TraceHeaderStyle.Render(pad(title, widths[c]))
	}
	lines = append(lines, "  "+strings.Join(header, "  "))

	for i, row := range cells {
		styled := make([]string, len(row))
		for c, cell := range row {
			style := TraceCellStyle
			if c == 2 && rows[i].Changed {
				style = TraceChangedStyle
			}
			styled[c] = style.Render(pad(cell, widths[c]))
		}
		lines = append(lines, "  "+strings.Join(styled, "  "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
