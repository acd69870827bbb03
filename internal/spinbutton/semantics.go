package spinbutton

// RoleSpinButton is the accessibility role of the field.
const RoleSpinButton = "spinbutton"

// Semantics describes the widget to assistive technology: what a screen
// reader would announce, independent of how View draws it.
type Semantics struct {
	Role       string
	ID         string
	LabelID    string
	LabelledBy string // set only when a label is configured
	Label      string
	AriaLabel  string
	Title      string

	ValueNow string
	ValueMin string
	ValueMax string

	Disabled bool
	ReadOnly bool
	Focused  bool

	Buttons []ButtonSemantics
}

// ButtonSemantics describes one arrow button. Both buttons are hidden from
// assistive technology and skipped by focus traversal; their effect is
// announced through the field's value instead.
type ButtonSemantics struct {
	Part      Part
	Icon      string
	Active    bool
	Hidden    bool
	Focusable bool
	Disabled  bool
}

// Semantics returns the accessibility description of the current state.
func (m Model) Semantics() Semantics {
	s := Semantics{
		Role:      RoleSpinButton,
		ID:        m.inputID,
		LabelID:   m.labelID,
		Label:     m.cfg.Label,
		AriaLabel: m.cfg.AriaLabel,
		Title:     m.cfg.Title,
		ValueNow:  m.value,
		ValueMin:  FormatNumber(m.cfg.Min),
		ValueMax:  FormatNumber(m.cfg.Max),
		Disabled:  m.cfg.Disabled,
		ReadOnly:  m.cfg.Disabled,
		Focused:   m.focused,
	}
	if m.cfg.Label != "" {
		s.LabelledBy = m.labelID
	}

	s.Buttons = []ButtonSemantics{
		{
			Part:     PartIncrement,
			Icon:     m.cfg.incrementIcon(),
			Active:   m.direction == Up,
			Hidden:   true,
			Disabled: m.cfg.Disabled,
		},
		{
			Part:     PartDecrement,
			Icon:     m.cfg.decrementIcon(),
			Active:   m.direction == Down,
			Hidden:   true,
			Disabled: m.cfg.Disabled,
		},
	}
	return s
}
