package spinbutton

import (
	"fmt"
	"strings"
)

// LabelPosition places the label relative to the field.
type LabelPosition int

const (
	LabelStart LabelPosition = iota
	LabelEnd
	LabelTop
	LabelBottom
)

// String returns the lowercase name used in preset files
func (p LabelPosition) String() string {
	switch p {
	case LabelStart:
		return "start"
	case LabelEnd:
		return "end"
	case LabelTop:
		return "top"
	case LabelBottom:
		return "bottom"
	default:
		return fmt.Sprintf("LabelPosition(%d)", int(p))
	}
}

// ParseLabelPosition parses start/end/top/bottom. An empty string is start.
func ParseLabelPosition(s string) (LabelPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start":
		return LabelStart, nil
	case "end":
		return LabelEnd, nil
	case "top":
		return LabelTop, nil
	case "bottom":
		return LabelBottom, nil
	default:
		return LabelStart, fmt.Errorf("unknown label position %q (expected start, end, top or bottom)", s)
	}
}

// Config is the full configuration of a spin button. Value and DefaultValue
// are treated as "not supplied" when empty.
type Config struct {
	Min  float64
	Max  float64
	Step float64

	Disabled bool

	Label         string
	LabelPosition LabelPosition
	Title         string
	AriaLabel     string
	IconName      string // optional glyph shown before the label

	// Value fixes the displayed value (controlled usage). DefaultValue only
	// seeds it (uncontrolled usage). Supplying both is a warning.
	Value        string
	DefaultValue string

	IncrementIcon string
	DecrementIcon string

	// Width of the text field in cells. Zero means DefaultFieldWidth.
	Width int

	OnValidate  Func
	OnIncrement Func
	OnDecrement Func
}

// DefaultFieldWidth is the field width used when Config.Width is zero.
const DefaultFieldWidth = 8

// DefaultConfig returns the stock configuration: 0..100 in steps of 1,
// label before the field, chevron glyphs on the buttons.
func DefaultConfig() Config {
	return Config{
		Min:           0,
		Max:           100,
		Step:          1,
		LabelPosition: LabelStart,
		IncrementIcon: "▲",
		DecrementIcon: "▼",
	}
}

// Warnings lists non-fatal configuration problems.
func (c Config) Warnings() []string {
	var warnings []string
	if c.Value != "" && c.DefaultValue != "" {
		warnings = append(warnings, "value and defaultValue are mutually exclusive; only one should be supplied")
	}
	if c.Step <= 0 {
		warnings = append(warnings, fmt.Sprintf("step should be positive, got %s", FormatNumber(c.Step)))
	}
	if c.Min > c.Max {
		warnings = append(warnings, fmt.Sprintf("min (%s) is greater than max (%s)", FormatNumber(c.Min), FormatNumber(c.Max)))
	}
	return warnings
}

func (c Config) fieldWidth() int {
	if c.Width <= 0 {
		return DefaultFieldWidth
	}
	return c.Width
}

func (c Config) incrementIcon() string {
	if c.IncrementIcon == "" {
		return "▲"
	}
	return c.IncrementIcon
}

func (c Config) decrementIcon() string {
	if c.DecrementIcon == "" {
		return "▼"
	}
	return c.DecrementIcon
}

// initialValue is Value, else DefaultValue, else Min. It is not clamped.
func (c Config) initialValue() string {
	switch {
	case c.Value != "":
		return c.Value
	case c.DefaultValue != "":
		return c.DefaultValue
	default:
		return FormatNumber(c.Min)
	}
}
