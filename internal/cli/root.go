package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/diag"
	"taskdeck-cli/internal/format"
	"taskdeck-cli/internal/session"
	"taskdeck-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	BaseURL    string
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "Terminal client for the team project/task tracker",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskdeck

  # Scriptable commands
  taskdeck login --email a@b.com --tenant demo --password secret
  taskdeck projects list
  taskdeck tasks list --project 42
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "api-url", envOr("TASKDECK_API_URL", "http://localhost:4000"), "Backend base URL")
	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKDECK_CONFIG_DIR", ""), "Config dir holding the session (default: ~/.taskdeck)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newRegisterTenantCmd(app))
	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newUsersCmd(app))

	return cmd
}

func runTUI(app *App) error {
	c, st, err := newClient(app)
	if err != nil {
		return err
	}
	return tui.Run(c, st)
}

func sessionStore(app *App) (session.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := session.DefaultDir()
		if err != nil {
			return session.Store{}, err
		}
		dir = d
	}
	return session.Store{Dir: dir, Log: diag.Logger(dir)}, nil
}

func newClient(app *App) (*api.Client, session.Store, error) {
	st, err := sessionStore(app)
	if err != nil {
		return nil, session.Store{}, err
	}
	return api.New(app.BaseURL, st, diag.Logger(st.Dir)), st, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	if api.IsUnauthorized(err) {
		err = errors.New("unauthorized: sign in with `taskdeck login`")
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

// confirmDestructive asks for an explicit yes before deletes. --yes skips the
// prompt for scripts; declining performs no request.
func confirmDestructive(cmd *cobra.Command, assumeYes bool, prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
