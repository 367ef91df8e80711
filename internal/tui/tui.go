// Package tui is the interactive full-screen client: dashboard, project and
// task management, and team administration, backed by the shared API client.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/session"
)

// Run starts the interactive program and blocks until the user quits.
func Run(c *api.Client, st session.Store) error {
	applyColorProfilePreference()
	p := tea.NewProgram(newAppModel(c, st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
