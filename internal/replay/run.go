package replay

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/spinbutton/internal/logging"
	"github.com/muurk/spinbutton/internal/spinbutton"
)

// TraceEntry is the widget state after one step
type TraceEntry struct {
	Step      Step
	Value     string
	Direction spinbutton.SpinDirection
	LastValid string
	Focused   bool
}

// Result is the outcome of replaying a script
type Result struct {
	Value     string
	Direction spinbutton.SpinDirection
	LastValid string
	Trace     []TraceEntry
}

// Run applies script to a new spin button built from cfg. Repeat ticks are
// delivered immediately rather than after RepeatDelay, so a run is
// deterministic and instant.
func Run(cfg spinbutton.Config, script Script) *Result {
	return RunModel(spinbutton.New(cfg), script)
}

// RunModel replays script against an existing widget.
func RunModel(m spinbutton.Model, script Script) *Result {
	r := &Runner{model: m}
	result := &Result{Trace: make([]TraceEntry, 0, len(script))}

	for _, step := range script {
		r.Apply(step)
		result.Trace = append(result.Trace, r.snapshot(step))
	}

	result.Value = r.model.Value()
	result.Direction = r.model.SpinDirection()
	result.LastValid = r.model.LastValidValue()
	return result
}

// Runner drives a widget one step at a time, for callers that want to
// inspect the widget between steps.
type Runner struct {
	model spinbutton.Model
}

// NewRunner wraps m
func NewRunner(m spinbutton.Model) *Runner {
	return &Runner{model: m}
}

// Model returns the widget in its current state
func (r *Runner) Model() spinbutton.Model {
	return r.model
}

func (r *Runner) snapshot(step Step) TraceEntry {
	return TraceEntry{
		Step:      step,
		Value:     r.model.Value(),
		Direction: r.model.SpinDirection(),
		LastValid: r.model.LastValidValue(),
		Focused:   r.model.Focused(),
	}
}

func (r *Runner) send(msg tea.Msg) {
	r.model, _ = r.model.Update(msg)
}

// ensureFocus gives the field focus before a keyboard step, as a user
// clicking into it would.
func (r *Runner) ensureFocus() {
	if !r.model.Focused() {
		r.model.Focus()
	}
}

func (r *Runner) key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// Apply performs one step.
func (r *Runner) Apply(step Step) {
	logging.Debug("Replay step",
		zap.String("step", step.String()),
		zap.Int("line", step.Line),
	)

	switch step.Kind {
	case StepUp, StepDown:
		r.ensureFocus()
		k := r.key(tea.KeyUp)
		if step.Kind == StepDown {
			k = r.key(tea.KeyDown)
		}
		r.send(k)
		r.send(spinbutton.KeyReleaseMsg{Key: k})

	case StepHoldUp, StepHoldDown:
		part := spinbutton.PartIncrement
		if step.Kind == StepHoldDown {
			part = spinbutton.PartDecrement
		}
		bounds, _ := r.model.PartBounds(part)
		r.send(tea.MouseMsg{
			X:      bounds.X,
			Y:      bounds.Y,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		for i := 0; i < step.Count; i++ {
			msg, ok := r.model.PendingRepeat()
			if !ok {
				break
			}
			r.send(msg)
		}
		r.send(tea.MouseMsg{
			X:      bounds.X,
			Y:      bounds.Y,
			Action: tea.MouseActionRelease,
			Button: tea.MouseButtonLeft,
		})

	case StepType:
		// Focusing selects all the text, so the next key replaces it even
		// when the field already had focus.
		r.model.Focus()
		if step.Text == "" {
			r.send(r.key(tea.KeyBackspace))
			return
		}
		r.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(step.Text)})

	case StepBlur:
		r.model.Blur()

	case StepFocus:
		r.model.Focus()

	case StepEnter:
		r.ensureFocus()
		r.send(r.key(tea.KeyEnter))

	case StepEsc:
		r.ensureFocus()
		r.send(r.key(tea.KeyEsc))

	case StepRelease:
		r.send(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	}
}
