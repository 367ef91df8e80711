package cli

import (
	"errors"
	"strings"

	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/model"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password, tenant string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, st, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			resp, err := c.Login(cmd.Context(), api.LoginRequest{
				Email:           email,
				Password:        password,
				TenantSubdomain: strings.TrimSpace(tenant),
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := st.Commit(resp.Token, resp.Session); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": resp.Session})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&tenant, "tenant", "", "Workspace subdomain (empty for super admin)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sessionStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := st.Clear(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"signedOut": true}})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sessionStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"signedIn": st.Token() != "",
				"session":  st.Read(),
			}})
		},
	}
}

func parseRole(s string) (model.Role, error) {
	switch model.Role(strings.TrimSpace(s)) {
	case model.RoleUser:
		return model.RoleUser, nil
	case model.RoleTenantAdmin:
		return model.RoleTenantAdmin, nil
	}
	return "", errors.New(`role must be "user" or "tenant_admin"`)
}

func newRegisterCmd(app *App) *cobra.Command {
	var fullName, email, password, tenant, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a user in an existing workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRole(role)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := c.Register(cmd.Context(), api.RegisterRequest{
				FullName:        fullName,
				Email:           email,
				Password:        password,
				TenantSubdomain: strings.TrimSpace(tenant),
				Role:            r,
			}); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"registered": true}})
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&tenant, "tenant", "", "Workspace subdomain")
	cmd.Flags().StringVar(&role, "role", string(model.RoleUser), "Role (user|tenant_admin)")
	_ = cmd.MarkFlagRequired("full-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}

func newRegisterTenantCmd(app *App) *cobra.Command {
	var name, subdomain, adminName, adminEmail, adminPassword string

	cmd := &cobra.Command{
		Use:   "register-tenant",
		Short: "Register a new organization with its admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := c.RegisterTenant(cmd.Context(), api.RegisterTenantRequest{
				TenantName:    name,
				Subdomain:     strings.TrimSpace(subdomain),
				AdminFullName: adminName,
				AdminEmail:    adminEmail,
				AdminPassword: adminPassword,
			}); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"registered": true}})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Organization name")
	cmd.Flags().StringVar(&subdomain, "subdomain", "", "Workspace subdomain")
	cmd.Flags().StringVar(&adminName, "admin-name", "", "Admin full name")
	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "Admin email")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "Admin password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("subdomain")
	_ = cmd.MarkFlagRequired("admin-name")
	_ = cmd.MarkFlagRequired("admin-email")
	_ = cmd.MarkFlagRequired("admin-password")
	return cmd
}
