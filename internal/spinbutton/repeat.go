package spinbutton

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/spinbutton/internal/logging"
)

// RepeatDelay is the interval between auto-repeated steps while an arrow
// button is held.
const RepeatDelay = 100 * time.Millisecond

// KeyReleaseDelay clears the keyboard spin direction when no further arrow
// key arrives. Terminals do not report key-up, and this outlasts the
// typical initial autorepeat delay of a held key.
const KeyReleaseDelay = 500 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// RepeatMsg is delivered when a pending repeat fires. A message whose tag no
// longer matches the widget's repeat handle arrived after a stop and is
// ignored.
type RepeatMsg struct {
	ID  int
	tag int
}

// releaseMsg ends a keyboard spin when no key-up was ever reported.
type releaseMsg struct {
	id  int
	tag int
}

// KeyReleaseMsg tells the widget an arrow key was released. Hosts whose input
// source reports key-up send it; the widget stops spinning when it arrives.
type KeyReleaseMsg struct {
	Key tea.KeyMsg
}

// String returns the released key's name, so key bindings can match it.
func (k KeyReleaseMsg) String() string {
	return k.Key.String()
}

// scheduleRepeat arms a single repeat tick for the current handle.
func (m *Model) scheduleRepeat() tea.Cmd {
	m.repeatTag++
	m.repeating = true
	id, tag := m.id, m.repeatTag
	logging.LogRepeat(id, "scheduled", tag)
	return tea.Tick(RepeatDelay, func(time.Time) tea.Msg {
		return RepeatMsg{ID: id, tag: tag}
	})
}

// scheduleRelease arms the keyboard auto-release tick.
func (m *Model) scheduleRelease() tea.Cmd {
	m.releaseTag++
	id, tag := m.id, m.releaseTag
	return tea.Tick(KeyReleaseDelay, func(time.Time) tea.Msg {
		return releaseMsg{id: id, tag: tag}
	})
}

// PendingRepeat returns the message the pending repeat tick will deliver.
// Hosts that drive the widget without a clock (scripted replay, tests) feed
// it back through Update instead of waiting.
func (m Model) PendingRepeat() (RepeatMsg, bool) {
	if !m.repeating {
		return RepeatMsg{}, false
	}
	return RepeatMsg{ID: m.id, tag: m.repeatTag}, true
}

// stop cancels any pending repeat and leaves the spinning state. The handle
// is invalidated before anything else, so a tick already in flight is
// rejected when it arrives. Safe to call when nothing is pending.
func (m *Model) stop() {
	if m.repeating {
		logging.LogRepeat(m.id, "cancelled", m.repeatTag)
	}
	m.repeatTag++
	m.repeating = false
	m.releaseTag++

	if m.direction != NotSpinning {
		m.direction = NotSpinning
		logging.LogTransition(m.id, "stop", m.value, m.direction.String())
	}
}
