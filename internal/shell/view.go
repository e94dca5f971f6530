package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	typeStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("13"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderGreeting renders the banner printed when a session starts
func renderGreeting(version, cwd string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome!") + "\n")
	b.WriteString(keyStyle.Render("rlshell ") + subtleStyle.Render(version) + "\n")
	b.WriteString(keyStyle.Render("CWD: ") + subtleStyle.Render(cwd) + "\n")
	return b.String()
}

func renderBye() string {
	return titleStyle.Render("Bye.") + "\n"
}

func renderError(msg string) string {
	return errorStyle.Render("Error:") + " " + msg + "\n"
}

func renderSuccess(msg string) string {
	return successStyle.Render(msg) + "\n"
}

// renderCommand renders one line of the command listing
func renderCommand(name, doc string) string {
	if doc == "" {
		return name + "\n"
	}
	return fmt.Sprintf("%s\t: %s\n", name, doc)
}

// renderVariable renders one line of the variable listing
func renderVariable(name string, value any) string {
	return fmt.Sprintf("  %s (%s) = %s\n",
		nameStyle.Render(name),
		typeStyle.Render(TypeName(value)),
		Repr(value))
}

func renderModule(name string) string {
	return "  " + nameStyle.Render(name) + "\n"
}

// renderCandidates lays candidates out in columns no wider than width
func renderCandidates(candidates []string, width int) string {
	if len(candidates) == 0 {
		return ""
	}

	colWidth := 0
	for _, c := range candidates {
		colWidth = max(colWidth, lipgloss.Width(c))
	}
	colWidth += 2

	perRow := 1
	if width > colWidth {
		perRow = width / colWidth
	}

	var b strings.Builder
	for i, c := range candidates {
		b.WriteString(c)
		if (i+1)%perRow == 0 || i == len(candidates)-1 {
			b.WriteString("\n")
			continue
		}
		b.WriteString(strings.Repeat(" ", colWidth-lipgloss.Width(c)))
	}
	return b.String()
}
