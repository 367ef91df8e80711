package api

import (
	"context"
	"net/http"
	"net/url"

	"taskdeck-cli/internal/model"
)

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id model.ID) (model.Project, error) {
	var out model.Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(id.String()), nil, nil, &out); err != nil {
		return model.Project{}, err
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, name, description string) (model.Project, error) {
	body := map[string]string{"name": name, "description": description}
	var out model.Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, body, &out); err != nil {
		return model.Project{}, err
	}
	return out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id.String()), nil, nil, nil)
}

func (c *Client) ListTasks(ctx context.Context, projectID model.ID) ([]model.Task, error) {
	var q url.Values
	if projectID != "" {
		q = url.Values{"projectId": []string{projectID.String()}}
	}
	var out []model.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateTaskRequest struct {
	Title     string           `json:"title"`
	Status    model.TaskStatus `json:"status"`
	ProjectID model.ID         `json:"projectId"`
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (model.Task, error) {
	var out model.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", nil, req, &out); err != nil {
		return model.Task{}, err
	}
	return out, nil
}

func (c *Client) SetTaskStatus(ctx context.Context, id model.ID, status model.TaskStatus) (model.Task, error) {
	body := map[string]model.TaskStatus{"status": status}
	var out model.Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id.String()), nil, body, &out); err != nil {
		return model.Task{}, err
	}
	return out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id.String()), nil, nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]model.TeamMember, error) {
	var out []model.TeamMember
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateUserRequest struct {
	FullName string     `json:"fullName"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (model.TeamMember, error) {
	var out model.TeamMember
	if err := c.do(ctx, http.MethodPost, "/users", nil, req, &out); err != nil {
		return model.TeamMember{}, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id.String()), nil, nil, nil)
}
