package demo

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/spinbutton/internal/version"
)

// Application branding constants
const (
	AppName = "SPIN BUTTON DEMO"
	RepoURL = "github.com/muurk/spinbutton"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	SuccessColor = lipgloss.Color("#43BF6D") // Green
	TextColor    = lipgloss.Color("#FFFFFF") // White
	SubtleColor  = lipgloss.Color("#626262") // Gray
	BorderColor  = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

// Layout of the container, in cells. Content starts below the outer border
// and the one-line header with its bottom rule.
const (
	containerLeft = 1
	containerTop  = 3

	// Each field row is indented by a focus marker.
	rowIndent   = 4
	titleHeight = 2 // title plus blank line
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	MarkerStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

// BuildHeaderContent creates header content with app name and repository
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Get().Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(RepoURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps content in the full-screen panel: header,
// content, then the footer, inside one border. The header is kept to one
// line so content always starts at containerTop.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Foreground(SubtleColor).
		Width(terminalWidth-2).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 2)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(ansi.Truncate(BuildHeaderContent(), terminalWidth-2, "…")),
		contentStyle.Render(content),
		footerStyle.Render(footerText),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
