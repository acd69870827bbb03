package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/spinbutton/internal/config"
	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/spinbutton"
)

// Field is one named spin button on the form
type Field struct {
	Name  string
	Model spinbutton.Model
}

// point is a cell position in screen coordinates
type point struct {
	X, Y int
}

// AppModel is the form: a column of spin buttons with one of them focused.
type AppModel struct {
	Title  string
	Fields []Field
	Focus  int

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys formKeyMap
}

// NewAppModel creates a form over fields and focuses the first one.
func NewAppModel(title string, fields []Field) AppModel {
	m := AppModel{
		Title:  title,
		Fields: fields,
		Width:  80,
		Height: 24,
		Help:   help.New(),
		Keys:   defaultFormKeyMap(),
	}
	if len(m.Fields) > 0 {
		m.Fields[0].Model.Focus()
	}
	return m
}

// FromRegistry builds a form with one spin button per preset, in the
// registry's display order.
func FromRegistry(reg *config.Registry) (AppModel, error) {
	fields := make([]Field, 0, len(reg.Presets))
	for _, name := range reg.Names() {
		cfg, err := reg.GetPreset(name).ToConfig()
		if err != nil {
			return AppModel{}, fmt.Errorf("preset %q: %w", name, err)
		}
		fields = append(fields, Field{Name: name, Model: spinbutton.New(cfg)})
	}

	title := "Spin buttons"
	if reg.Form != nil && reg.Form.Title != "" {
		title = reg.Form.Title
	}
	return NewAppModel(title, fields), nil
}

// Init starts the cursor blinking in the focused field
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages and routes them to the fields
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Help):
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		case key.Matches(msg, m.Keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.Keys.Prev):
			return m, m.moveFocus(-1)
		}
		return m, m.updateField(m.Focus, msg)

	case spinbutton.KeyReleaseMsg:
		return m, m.updateField(m.Focus, msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	// Repeat and release ticks carry the widget ID, so every field sees them
	// and only the owner reacts.
	cmds := make([]tea.Cmd, 0, len(m.Fields))
	for i := range m.Fields {
		cmds = append(cmds, m.updateField(i, msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *AppModel) updateField(i int, msg tea.Msg) tea.Cmd {
	if i < 0 || i >= len(m.Fields) {
		return nil
	}
	var cmd tea.Cmd
	m.Fields[i].Model, cmd = m.Fields[i].Model.Update(msg)
	return cmd
}

// moveFocus blurs the focused field, which validates it, and focuses the
// field delta positions away.
func (m *AppModel) moveFocus(delta int) tea.Cmd {
	if len(m.Fields) == 0 {
		return nil
	}
	next := (m.Focus + delta + len(m.Fields)) % len(m.Fields)
	return m.focusField(next)
}

func (m *AppModel) focusField(i int) tea.Cmd {
	if i == m.Focus && m.Fields[i].Model.Focused() {
		return nil
	}
	m.Fields[m.Focus].Model.Blur()
	m.Focus = i
	logging.Debug("Focus moved",
		zap.String("field", m.Fields[i].Name),
		zap.Int("widget", m.Fields[i].Model.ID()),
	)
	return m.Fields[i].Model.Focus()
}

// fieldOrigins returns the screen cell where each field's View starts. It
// mirrors the row layout in View.
func (m AppModel) fieldOrigins() []point {
	origins := make([]point, len(m.Fields))
	y := containerTop + titleHeight
	for i, f := range m.Fields {
		origins[i] = point{X: containerLeft + rowIndent, Y: y}
		y += lipgloss.Height(f.Model.View()) + 1
	}
	return origins
}

// handleMouse translates a screen event into widget-local coordinates.
// A press goes to the field under the pointer and focuses it when it lands
// on the text or label; the arrow buttons are not focusable. Release and
// motion go to every field so a held button sees the pointer leave.
func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	origins := m.fieldOrigins()

	local := func(i int) tea.MouseMsg {
		out := msg
		out.X = msg.X - origins[i].X
		out.Y = msg.Y - origins[i].Y
		return out
	}

	if msg.Action == tea.MouseActionPress {
		for i := range m.Fields {
			lm := local(i)
			part := m.Fields[i].Model.HitTest(lm.X, lm.Y)
			if part == spinbutton.PartNone {
				continue
			}

			var cmds []tea.Cmd
			if part == spinbutton.PartField || part == spinbutton.PartLabel {
				cmds = append(cmds, m.focusField(i))
			}
			cmds = append(cmds, m.updateField(i, lm))
			return tea.Batch(cmds...)
		}
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(m.Fields))
	for i := range m.Fields {
		cmds = append(cmds, m.updateField(i, local(i)))
	}
	return tea.Batch(cmds...)
}

// Values returns each field's name and current text, in form order
func (m AppModel) Values() []Field {
	out := make([]Field, len(m.Fields))
	copy(out, m.Fields)
	return out
}

// View renders the form inside the application container
func (m AppModel) View() string {
	rows := make([]string, 0, len(m.Fields))
	for i, f := range m.Fields {
		marker := "  "
		if i == m.Focus {
			marker = MarkerStyle.Render("▸ ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, "  "+marker, f.Model.View()))
	}

	parts := []string{TitleStyle.Render(m.Title), ""}
	if len(rows) > 0 {
		parts = append(parts, strings.Join(rows, "\n\n"), "", m.status())
	} else {
		parts = append(parts, StatusStyle.Render("  No presets to show."))
	}

	return RenderApplicationContainer(strings.Join(parts, "\n"), m.Help.View(m.Keys), m.Width, m.Height)
}

// status describes the focused field the way a screen reader would.
func (m AppModel) status() string {
	if m.Focus >= len(m.Fields) {
		return ""
	}
	s := m.Fields[m.Focus].Model.Semantics()

	name := s.AriaLabel
	if name == "" {
		name = s.Label
	}
	if name == "" {
		name = m.Fields[m.Focus].Name
	}

	text := fmt.Sprintf("  %s %q, %s, min %s, max %s", s.Role, name, s.ValueNow, s.ValueMin, s.ValueMax)
	if s.Title != "" {
		text += ", " + s.Title
	}
	if s.Disabled {
		text += ", unavailable"
	}
	return StatusStyle.Render(text)
}
