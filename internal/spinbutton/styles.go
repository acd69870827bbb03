package spinbutton

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - focus, active arrow
	MutedColor   = lipgloss.Color("#626262") // Gray - disabled, idle arrows
	TextColor    = lipgloss.Color("#FFFFFF") // White - field text
	FieldColor   = lipgloss.Color("236")     // Dark gray - field background
)

// Styles holds the lipgloss styles used by View.
type Styles struct {
	Label         lipgloss.Style
	Icon          lipgloss.Style
	Field         lipgloss.Style
	FocusedField  lipgloss.Style
	DisabledField lipgloss.Style
	Selection     lipgloss.Style
	Arrow         lipgloss.Style
	ActiveArrow   lipgloss.Style
	DisabledArrow lipgloss.Style
}

// DefaultStyles returns the stock look.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true),
		Icon: lipgloss.NewStyle().
			Foreground(PrimaryColor),
		Field: lipgloss.NewStyle().
			Foreground(TextColor).
			Background(FieldColor),
		FocusedField: lipgloss.NewStyle().
			Foreground(TextColor).
			Background(FieldColor).
			Underline(true),
		DisabledField: lipgloss.NewStyle().
			Foreground(MutedColor).
			Background(FieldColor),
		Selection: lipgloss.NewStyle().
			Reverse(true),
		Arrow: lipgloss.NewStyle().
			Foreground(MutedColor),
		ActiveArrow: lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true),
		DisabledArrow: lipgloss.NewStyle().
			Foreground(MutedColor).
			Faint(true),
	}
}
