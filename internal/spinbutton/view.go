package spinbutton

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Part identifies a region of the rendered widget.
type Part int

const (
	PartNone Part = iota
	PartLabel
	PartField
	PartIncrement
	PartDecrement
)

// String returns a readable name for the part
func (p Part) String() string {
	switch p {
	case PartNone:
		return "none"
	case PartLabel:
		return "label"
	case PartField:
		return "field"
	case PartIncrement:
		return "increment"
	case PartDecrement:
		return "decrement"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

func partFor(dir SpinDirection) Part {
	switch dir {
	case Up:
		return PartIncrement
	case Down:
		return PartDecrement
	default:
		return PartNone
	}
}

// Rect is a cell rectangle in widget-local coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type layout struct {
	label     Rect
	field     Rect
	increment Rect
	decrement Rect
}

// labelText is the icon and label joined, unstyled.
func (m Model) labelText() string {
	var parts []string
	if m.cfg.IconName != "" {
		parts = append(parts, m.cfg.IconName)
	}
	if m.cfg.Label != "" {
		parts = append(parts, m.cfg.Label)
	}
	return strings.Join(parts, " ")
}

func arrowText(icon string) string {
	return " " + icon + " "
}

// layout computes where each part is drawn. View and HitTest both use it, so
// the two can never disagree.
func (m Model) layout() layout {
	var l layout

	lw := ansi.StringWidth(m.labelText())
	fw := m.cfg.fieldWidth()
	incW := ansi.StringWidth(arrowText(m.cfg.incrementIcon()))
	decW := ansi.StringWidth(arrowText(m.cfg.decrementIcon()))
	rowW := fw + 1 + incW + decW

	x0, y0 := 0, 0
	if lw > 0 {
		switch m.cfg.LabelPosition {
		case LabelEnd:
			l.label = Rect{X: rowW + 1, Y: 0, W: lw, H: 1}
		case LabelTop:
			l.label = Rect{X: 0, Y: 0, W: lw, H: 1}
			y0 = 1
		case LabelBottom:
			l.label = Rect{X: 0, Y: 1, W: lw, H: 1}
		default:
			l.label = Rect{X: 0, Y: 0, W: lw, H: 1}
			x0 = lw + 1
		}
	}

	l.field = Rect{X: x0, Y: y0, W: fw, H: 1}
	l.increment = Rect{X: x0 + fw + 1, Y: y0, W: incW, H: 1}
	l.decrement = Rect{X: l.increment.X + incW, Y: y0, W: decW, H: 1}
	return l
}

// HitTest maps a widget-local cell to the part drawn there.
func (m Model) HitTest(x, y int) Part {
	l := m.layout()
	switch {
	case l.increment.Contains(x, y):
		return PartIncrement
	case l.decrement.Contains(x, y):
		return PartDecrement
	case l.field.Contains(x, y):
		return PartField
	case l.label.Contains(x, y):
		return PartLabel
	default:
		return PartNone
	}
}

// PartBounds returns the rectangle a part occupies. The label has no bounds
// when neither a label nor an icon is configured.
func (m Model) PartBounds(p Part) (Rect, bool) {
	l := m.layout()
	switch p {
	case PartLabel:
		return l.label, l.label.W > 0
	case PartField:
		return l.field, true
	case PartIncrement:
		return l.increment, true
	case PartDecrement:
		return l.decrement, true
	default:
		return Rect{}, false
	}
}

// View renders the label, the field and both arrow buttons.
func (m Model) View() string {
	fw := m.cfg.fieldWidth()

	var text string
	switch {
	case m.focused && m.selected && m.value != "":
		text = m.Styles.Selection.Render(ansi.Truncate(m.value, fw, "…"))
	case m.focused && !m.cfg.Disabled:
		text = m.input.View()
	default:
		text = ansi.Truncate(m.value, fw, "…")
	}

	fieldStyle := m.Styles.Field
	switch {
	case m.cfg.Disabled:
		fieldStyle = m.Styles.DisabledField
	case m.focused:
		fieldStyle = m.Styles.FocusedField
	}
	field := fieldStyle.Width(fw).MaxWidth(fw).Render(text)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		field,
		" ",
		m.renderArrow(m.cfg.incrementIcon(), Up),
		m.renderArrow(m.cfg.decrementIcon(), Down),
	)

	label := m.renderLabel()
	if label == "" {
		return row
	}

	switch m.cfg.LabelPosition {
	case LabelEnd:
		return lipgloss.JoinHorizontal(lipgloss.Top, row, " ", label)
	case LabelTop:
		return lipgloss.JoinVertical(lipgloss.Left, label, row)
	case LabelBottom:
		return lipgloss.JoinVertical(lipgloss.Left, row, label)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", row)
	}
}

func (m Model) renderArrow(icon string, dir SpinDirection) string {
	style := m.Styles.Arrow
	switch {
	case m.cfg.Disabled:
		style = m.Styles.DisabledArrow
	case m.direction == dir:
		style = m.Styles.ActiveArrow
	}
	return style.Render(arrowText(icon))
}

func (m Model) renderLabel() string {
	var parts []string
	if m.cfg.IconName != "" {
		parts = append(parts, m.Styles.Icon.Render(m.cfg.IconName))
	}
	if m.cfg.Label != "" {
		parts = append(parts, m.Styles.Label.Render(m.cfg.Label))
	}
	return strings.Join(parts, " ")
}
