package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"taskdeck-cli/internal/model"
)

// Theme/palette helpers.
//
// The TUI must stay readable on both light and dark terminal backgrounds, so
// everything goes through lipgloss.AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "252")
	colorControlBg  lipgloss.TerminalColor = ac("252", "235")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorAccent     lipgloss.TerminalColor = ac("27", "62") // blue
	colorOK         lipgloss.TerminalColor = ac("28", "42") // green
	colorError      lipgloss.TerminalColor = ac("124", "203")
	colorBorder     lipgloss.TerminalColor = ac("250", "243")
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func styleOK() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorOK)
}

// projectStatusBadge renders "active" in green; anything else is shown muted
// (the backend may grow more states, we only special-case active).
func projectStatusBadge(s model.ProjectStatus) string {
	if s == model.ProjectStatusActive {
		return styleOK().Render("[" + string(s) + "]")
	}
	if s == "" {
		return ""
	}
	return styleMuted().Render("[" + string(s) + "]")
}

func taskStatusLabel(s model.TaskStatus) string {
	switch s {
	case model.TaskStatusDone:
		return styleOK().Render("done")
	case model.TaskStatusInProgress:
		return lipgloss.NewStyle().Foreground(colorAccent).Render("in_progress")
	case model.TaskStatusTodo:
		return styleMuted().Render("todo")
	}
	return styleMuted().Render(string(s))
}

func roleBadge(r model.Role) string {
	if r == model.RoleTenantAdmin {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("tenant admin")
	}
	return styleMuted().Render(string(r))
}

func renderModalBox(width int, title, content string) string {
	bodyW := modalBodyWidth(width)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(bodyW)
	head := styleTitle().Render(title)
	return box.Render(head + "\n\n" + content)
}

func modalBodyWidth(width int) int {
	w := width - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// We only honor NO_COLOR and otherwise follow the terminal's capabilities;
// CLICOLOR heuristics belong to non-interactive output, not here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	}
	lipgloss.SetColorProfile(profile)
}
