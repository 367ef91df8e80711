package tui

import (
	"context"

	"taskdeck-cli/internal/api"
	"taskdeck-cli/internal/model"
)

// backend is the slice of the API client the TUI uses. Tests substitute a
// recording fake.
type backend interface {
	Login(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) error
	RegisterTenant(ctx context.Context, req api.RegisterTenantRequest) error

	ListProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id model.ID) (model.Project, error)
	CreateProject(ctx context.Context, name, description string) (model.Project, error)
	DeleteProject(ctx context.Context, id model.ID) error

	ListTasks(ctx context.Context, projectID model.ID) ([]model.Task, error)
	CreateTask(ctx context.Context, req api.CreateTaskRequest) (model.Task, error)
	SetTaskStatus(ctx context.Context, id model.ID, status model.TaskStatus) (model.Task, error)
	DeleteTask(ctx context.Context, id model.ID) error

	ListUsers(ctx context.Context) ([]model.TeamMember, error)
	CreateUser(ctx context.Context, req api.CreateUserRequest) (model.TeamMember, error)
	DeleteUser(ctx context.Context, id model.ID) error
}

var _ backend = (*api.Client)(nil)
