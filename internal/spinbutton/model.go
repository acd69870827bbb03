package spinbutton

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/muurk/spinbutton/internal/logging"
)

// SpinDirection says which arrow button currently looks pressed.
type SpinDirection int

const (
	Down        SpinDirection = -1
	NotSpinning SpinDirection = 0
	Up          SpinDirection = 1
)

// String returns a readable name for the direction
func (d SpinDirection) String() string {
	switch d {
	case Down:
		return "down"
	case NotSpinning:
		return "not-spinning"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("SpinDirection(%d)", int(d))
	}
}

// Model is a spin button. It follows the bubbles component pattern: the host
// embeds it, forwards messages to Update and renders View.
type Model struct {
	id     int
	cfg    Config
	policy ValuePolicy

	value     string
	lastValid string
	direction SpinDirection

	// Repeat handle. repeating is true only while a pointer holds a button.
	repeating  bool
	repeatTag  int
	repeatDir  SpinDirection
	releaseTag int

	focused  bool
	selected bool
	input    textinput.Model

	labelID string
	inputID string

	KeyMap KeyMap
	Styles Styles
}

// New creates a spin button from cfg. The value policy is chosen here and
// never changes for the life of the widget.
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = cfg.fieldWidth() - 1

	m := Model{
		id:        nextID(),
		cfg:       cfg,
		policy:    policyFor(cfg),
		direction: NotSpinning,
		input:     ti,
		labelID:   "label-" + uuid.NewString(),
		inputID:   "input-" + uuid.NewString(),
		KeyMap:    DefaultKeyMap(),
		Styles:    DefaultStyles(),
	}

	m.warnConfig(cfg)

	value := cfg.initialValue()
	m.lastValid = value
	m.setValue(value)

	return m
}

// ID returns the widget's unique identifier
func (m Model) ID() int {
	return m.id
}

// Value returns the text currently in the field
func (m Model) Value() string {
	return m.value
}

// LastValidValue returns the value restored by Esc
func (m Model) LastValidValue() string {
	return m.lastValid
}

// SpinDirection returns which arrow currently appears active
func (m Model) SpinDirection() SpinDirection {
	return m.direction
}

// Spinning reports whether a held button is auto-repeating
func (m Model) Spinning() bool {
	return m.repeating
}

// Focused reports whether the field has input focus
func (m Model) Focused() bool {
	return m.focused
}

// Selected reports whether the whole field text is selected
func (m Model) Selected() bool {
	return m.selected
}

// Config returns the current configuration
func (m Model) Config() Config {
	return m.cfg
}

func (m *Model) rng() Range {
	return Range{
		Min:       m.cfg.Min,
		Max:       m.cfg.Max,
		Step:      m.cfg.Step,
		LastValid: m.lastValid,
	}
}

// setValue replaces the field text, keeping the embedded input in sync.
func (m *Model) setValue(v string) {
	m.value = v
	m.input.SetValue(v)
	m.input.CursorEnd()
}

func (m *Model) warnConfig(cfg Config) {
	for _, w := range cfg.Warnings() {
		logging.LogConfigWarning(m.id, cfg.Label, w)
	}
}

// SetConfig replaces the configuration, as an owner re-rendering the widget
// with new properties would. The current value becomes the last valid
// value; the new value is the supplied Value or Min, except that a
// DefaultValue is clamped into the new range and takes precedence. The spin
// direction and the value policy are left as they are.
func (m *Model) SetConfig(cfg Config) {
	m.warnConfig(cfg)
	m.lastValid = m.value

	value := cfg.Value
	if value == "" {
		value = FormatNumber(cfg.Min)
	}
	if cfg.DefaultValue != "" {
		if n, ok := ParseNumber(cfg.DefaultValue); ok {
			value = FormatNumber(Clamp(n, cfg.Min, cfg.Max))
		}
	}

	m.cfg = cfg
	m.input.Width = cfg.fieldWidth() - 1
	m.setValue(value)
	logging.LogTransition(m.id, "config_update", m.value, m.direction.String())
}

// Focus stops any active spin, moves input focus into the field and selects
// all of its text.
func (m *Model) Focus() tea.Cmd {
	if m.repeating || m.direction != NotSpinning {
		m.stop()
	}
	m.focused = true
	m.selected = true
	m.input.CursorEnd()
	logging.LogTransition(m.id, "focus", m.value, m.direction.String())
	return m.input.Focus()
}

// Blur removes focus. Non-empty text is validated; when the policy returns
// a value it becomes both the field text and the last valid value.
func (m *Model) Blur() {
	if !m.focused {
		return
	}
	m.focused = false
	m.selected = false
	m.input.Blur()

	if m.value == "" {
		return
	}
	if v, ok := m.policy.Validate(m.value, m.rng()); ok && v != "" {
		m.lastValid = v
		m.setValue(v)
	}
	logging.LogTransition(m.id, "blur", m.value, m.direction.String())
}

// Init implements tea.Model. The spin button needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key, mouse and timer messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RepeatMsg:
		return m.handleRepeat(msg)

	case releaseMsg:
		if msg.id != m.id || msg.tag != m.releaseTag || m.repeating {
			return m, nil
		}
		m.stop()
		return m, nil

	case KeyReleaseMsg:
		if m.cfg.Disabled || m.KeyMap.isArrow(msg) {
			m.stop()
		}
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKeyDown(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blink and paste results belong to the text field.
	if !m.focused {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.value && !m.cfg.Disabled {
		m.value = v
		m.selected = false
	}
	return m, cmd
}

func (m Model) handleRepeat(msg RepeatMsg) (Model, tea.Cmd) {
	if msg.ID != m.id {
		return m, nil
	}
	if !m.repeating || msg.tag != m.repeatTag {
		logging.LogRepeat(m.id, "ignored", msg.tag)
		return m, nil
	}
	if m.cfg.Disabled {
		m.stop()
		return m, nil
	}
	logging.LogRepeat(m.id, "fired", msg.tag)
	cmd := m.updateValue(true, m.repeatDir)
	return m, cmd
}

func (m Model) handleKeyDown(msg tea.KeyMsg) (Model, tea.Cmd) {
	// A disabled field is read-only: every key just stops, and arrow keys are
	// swallowed here so the host never scrolls on them.
	if m.cfg.Disabled {
		m.stop()
		return m, nil
	}

	var cmd tea.Cmd
	dir := NotSpinning

	switch {
	case key.Matches(msg, m.KeyMap.Increment):
		dir = Up
		m.updateValue(false, Up)

	case key.Matches(msg, m.KeyMap.Decrement):
		dir = Down
		m.updateValue(false, Down)

	case key.Matches(msg, m.KeyMap.Commit):
		m.Blur()
		cmd = m.Focus()

	case key.Matches(msg, m.KeyMap.Cancel):
		if m.value != m.lastValid {
			m.setValue(m.lastValid)
			logging.LogTransition(m.id, "cancel", m.value, m.direction.String())
		}

	default:
		cmd = m.handleInput(msg)
	}

	// A held pointer owns the direction until it is released.
	if m.repeating {
		return m, cmd
	}
	if m.direction != dir {
		m.direction = dir
		logging.LogTransition(m.id, "key_down", m.value, dir.String())
	}
	if dir != NotSpinning {
		cmd = tea.Batch(cmd, m.scheduleRelease())
	}
	return m, cmd
}

// handleInput passes a key to the text field and stores the resulting text
// verbatim. Validation waits for blur.
func (m *Model) handleInput(msg tea.KeyMsg) tea.Cmd {
	if m.selected {
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m.input.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			m.selected = false
			m.input.SetValue("")
			m.value = ""
			return nil
		}
		m.selected = false
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.value {
		m.value = v
		logging.LogTransition(m.id, "input", m.value, m.direction.String())
	}
	return cmd
}

// startSpin begins a pointer-held spin: one step now, then repeats until
// stopped.
func (m Model) startSpin(dir SpinDirection) (Model, tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}
	m.direction = dir
	cmd := m.updateValue(true, dir)
	logging.LogTransition(m.id, "pointer_down", m.value, dir.String())
	return m, cmd
}

// updateValue applies one step in dir. When spin is set another step is
// scheduled after RepeatDelay.
func (m *Model) updateValue(spin bool, dir SpinDirection) tea.Cmd {
	step := m.policy.Increment
	if dir == Down {
		step = m.policy.Decrement
	}
	if v, ok := step(m.value, m.rng()); ok && v != "" {
		m.lastValid = v
		m.setValue(v)
	}

	if !spin {
		return nil
	}
	m.repeatDir = dir
	return m.scheduleRepeat()
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	part := m.HitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch part {
		case PartIncrement:
			return m.startSpin(Up)
		case PartDecrement:
			return m.startSpin(Down)
		}

	case tea.MouseActionRelease:
		if m.repeating {
			m.stop()
		}

	case tea.MouseActionMotion:
		// Pointer left the held button.
		if m.repeating && part != partFor(m.repeatDir) {
			m.stop()
		}
	}

	return m, nil
}
