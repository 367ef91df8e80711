package cli

import (
	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/model"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Team member commands",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersAddCmd(app))
	cmd.AddCommand(newUsersRemoveCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the team members of your workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			members, err := c.ListUsers(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": members})
		},
	}
}

func newUsersAddCmd(app *App) *cobra.Command {
	var fullName, email, password, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a team member",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRole(role)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			member, err := c.CreateUser(cmd.Context(), api.CreateUserRequest{
				FullName: fullName,
				Email:    email,
				Password: password,
				Role:     r,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": member})
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&role, "role", string(model.RoleUser), "Role (user|tenant_admin)")
	_ = cmd.MarkFlagRequired("full-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <user-id>",
		Short: "Remove a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sessionStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if st.Read().ID == model.ID(args[0]) {
				return writeErr(cmd, errSelfRemoval)
			}
			if !confirmDestructive(cmd, yes, "Remove user "+args[0]+" from the team?") {
				return nil
			}
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := c.DeleteUser(cmd.Context(), model.ID(args[0])); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"removed": args[0]}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
