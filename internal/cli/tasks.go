package cli

import (
	"errors"

	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/model"

	"github.com/spf13/cobra"
)

func parseTaskStatus(s string) (model.TaskStatus, error) {
	switch model.TaskStatus(s) {
	case model.TaskStatusTodo, model.TaskStatusInProgress, model.TaskStatusDone:
		return model.TaskStatus(s), nil
	}
	return "", errors.New(`status must be "todo", "in_progress" or "done"`)
}

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksSetStatusCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally scoped to a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			tasks, err := c.ListTasks(cmd.Context(), model.ID(projectID))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": tasks})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id filter")
	return cmd
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var projectID, title, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task in a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseTaskStatus(status)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			task, err := c.CreateTask(cmd.Context(), api.CreateTaskRequest{
				Title:     title,
				Status:    st,
				ProjectID: model.ID(projectID),
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Project id")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&status, "status", string(model.TaskStatusTodo), "Status (todo|in_progress|done)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksSetStatusCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "set-status <task-id>",
		Short: "Update a task's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := parseTaskStatus(status)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			task, err := c.SetTaskStatus(cmd.Context(), model.ID(args[0]), st)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": task})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Status (todo|in_progress|done)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmDestructive(cmd, yes, "Delete task "+args[0]+"?") {
				return nil
			}
			c, _, err := newClient(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := c.DeleteTask(cmd.Context(), model.ID(args[0])); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"deleted": args[0]}})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
