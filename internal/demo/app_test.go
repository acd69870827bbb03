package demo

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/muurk/spinbutton/internal/config"
	"github.com/muurk/spinbutton/internal/spinbutton"
)

func testForm(t *testing.T) AppModel {
	t.Helper()

	volume := spinbutton.DefaultConfig()
	volume.Label = "Volume"
	volume.DefaultValue = "30"

	size := spinbutton.DefaultConfig()
	size.Label = "Size"
	size.LabelPosition = spinbutton.LabelTop
	size.DefaultValue = "12"

	gain := spinbutton.DefaultConfig()
	gain.Label = "Gain"
	gain.LabelPosition = spinbutton.LabelEnd
	gain.DefaultValue = "50"

	m := NewAppModel("Test form", []Field{
		{Name: "volume", Model: spinbutton.New(volume)},
		{Name: "size", Model: spinbutton.New(size)},
		{Name: "gain", Model: spinbutton.New(gain)},
	})
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func update(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(AppModel)
}

// partOnScreen returns the screen cell at the top left of a field's part.
func partOnScreen(t *testing.T, m AppModel, field int, part spinbutton.Part) (int, int) {
	t.Helper()
	r, ok := m.Fields[field].Model.PartBounds(part)
	require.True(t, ok)
	o := m.fieldOrigins()[field]
	return o.X + r.X, o.Y + r.Y
}

func click(t *testing.T, m AppModel, field int, part spinbutton.Part) AppModel {
	t.Helper()
	x, y := partOnScreen(t, m, field, part)
	return update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func TestNewAppModelFocusesFirstField(t *testing.T) {
	m := testForm(t)
	require.Equal(t, 0, m.Focus)
	require.True(t, m.Fields[0].Model.Focused())
	require.False(t, m.Fields[1].Model.Focused())
}

func TestTabCyclesFocusAndValidates(t *testing.T) {
	m := testForm(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("500")})
	require.Equal(t, "500", m.Fields[0].Model.Value())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, m.Focus)
	require.Equal(t, "100", m.Fields[0].Model.Value(), "leaving a field should validate it")
	require.True(t, m.Fields[1].Model.Focused())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 2, m.Focus, "shift+tab should wrap to the last field")
}

func TestKeysGoToFocusedField(t *testing.T) {
	m := testForm(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	require.Equal(t, "30", m.Fields[0].Model.Value())
	require.Equal(t, "13", m.Fields[1].Model.Value())
}

func TestLayoutMatchesView(t *testing.T) {
	m := testForm(t)
	lines := strings.Split(ansi.Strip(m.View()), "\n")

	for i := range m.Fields {
		for part, want := range map[spinbutton.Part]string{
			spinbutton.PartIncrement: "▲",
			spinbutton.PartDecrement: "▼",
		} {
			x, y := partOnScreen(t, m, i, part)
			r, _ := m.Fields[i].Model.PartBounds(part)
			require.Less(t, y, len(lines))

			cells := []rune(lines[y])
			require.LessOrEqual(t, x+r.W, len(cells), "row %q", lines[y])
			require.Equal(t, want, strings.TrimSpace(string(cells[x:x+r.W])), "field %d %s", i, part)
		}
	}
}

func TestClickArrowStepsWithoutMovingFocus(t *testing.T) {
	m := testForm(t)

	m = click(t, m, 2, spinbutton.PartIncrement)
	require.Equal(t, "51", m.Fields[2].Model.Value())
	require.Equal(t, 0, m.Focus)
	require.True(t, m.Fields[2].Model.Spinning())

	// The repeat tick is delivered to every field; only the owner steps.
	msg, ok := m.Fields[2].Model.PendingRepeat()
	require.True(t, ok)
	m = update(t, m, msg)
	require.Equal(t, "52", m.Fields[2].Model.Value())
	require.Equal(t, "30", m.Fields[0].Model.Value())

	x, y := partOnScreen(t, m, 2, spinbutton.PartIncrement)
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease})
	require.False(t, m.Fields[2].Model.Spinning())
	require.Equal(t, spinbutton.NotSpinning, m.Fields[2].Model.SpinDirection())
}

func TestPointerLeaveStopsSpin(t *testing.T) {
	m := testForm(t)

	m = click(t, m, 0, spinbutton.PartDecrement)
	require.Equal(t, "29", m.Fields[0].Model.Value())

	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.False(t, m.Fields[0].Model.Spinning())
}

func TestClickFieldMovesFocus(t *testing.T) {
	m := testForm(t)
	m = click(t, m, 1, spinbutton.PartField)
	require.Equal(t, 1, m.Focus)
	require.True(t, m.Fields[1].Model.Focused())
	require.False(t, m.Fields[0].Model.Focused())

	m = click(t, m, 2, spinbutton.PartLabel)
	require.Equal(t, 2, m.Focus)
}

func TestQuitAndHelp(t *testing.T) {
	m := testForm(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	require.True(t, next.(AppModel).Help.ShowAll)
	require.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsStatus(t *testing.T) {
	m := testForm(t)
	view := ansi.Strip(m.View())

	require.Contains(t, view, "Test form")
	require.Contains(t, view, `spinbutton "Volume", 30, min 0, max 100`)
	require.Contains(t, view, "tab")
}

func TestFromRegistry(t *testing.T) {
	reg, err := config.LoadRegistry(filepath.Join(t.TempDir(), "presets.yaml"))
	require.NoError(t, err)

	m, err := FromRegistry(reg)
	require.NoError(t, err)
	require.Len(t, m.Fields, len(reg.Presets))
	require.Equal(t, reg.Names()[0], m.Fields[0].Name)

	values := m.Values()
	require.Equal(t, "30", values[0].Model.Value())
}

func TestFromRegistryRejectsBadPreset(t *testing.T) {
	reg := config.NewRegistry()
	reg.SetPreset("bad", &config.Preset{Format: "hex"})

	_, err := FromRegistry(reg)
	require.Error(t, err)
}

func TestEmptyForm(t *testing.T) {
	m := NewAppModel("Empty", nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Contains(t, ansi.Strip(m.View()), "No presets")
}
