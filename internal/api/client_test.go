package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskdeck-cli/internal/model"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestDo_AttachesBearerAndDecodesEnvelope(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": 1, "name": "Website Redesign", "status": "active"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t1"), nil)
	projects, err := c.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if gotAuth != "Bearer t1" {
		t.Fatalf("Authorization = %q, want Bearer t1", gotAuth)
	}
	if gotPath != "/api/v1/projects" {
		t.Fatalf("path = %q", gotPath)
	}
	if len(projects) != 1 || projects[0].Name != "Website Redesign" {
		t.Fatalf("projects = %+v", projects)
	}
	// Numeric server ids normalize to strings.
	if projects[0].ID != "1" {
		t.Fatalf("ID = %q, want \"1\"", projects[0].ID)
	}
}

func TestDo_NoAuthorizationHeaderWhenSignedOut(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""), nil)
	if _, err := c.ListProjects(context.Background()); err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if sawAuth {
		t.Fatalf("Authorization header sent without a token")
	}
}

func TestDo_ServerMessageSurfacesInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "name is required"})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t1"), nil)
	_, err := c.CreateProject(context.Background(), "", "")
	if err == nil {
		t.Fatalf("expected error")
	}
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type %T, want *Error", err)
	}
	if ae.Status != http.StatusBadRequest || ae.Message != "name is required" {
		t.Fatalf("error = %+v", ae)
	}
}

func TestDo_UnauthorizedIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("stale"), nil)
	_, err := c.ListUsers(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("IsUnauthorized(%v) = false", err)
	}
}

func TestListTasks_FiltersByProjectID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": 9, "title": "Write spec", "status": "todo", "projectId": 42}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t1"), nil)
	tasks, err := c.ListTasks(context.Background(), "42")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if gotQuery != "projectId=42" {
		t.Fatalf("query = %q", gotQuery)
	}
	if len(tasks) != 1 || tasks[0].Title != "Write spec" || tasks[0].Status != model.TaskStatusTodo {
		t.Fatalf("tasks = %+v", tasks)
	}
	if tasks[0].ProjectID != "42" {
		t.Fatalf("ProjectID = %q", tasks[0].ProjectID)
	}
}

func TestCreateTaskThenListIncludesIt(t *testing.T) {
	var tasks []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req CreateTaskRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode create body: %v", err)
			}
			task := map[string]any{"id": len(tasks) + 1, "title": req.Title, "status": req.Status, "projectId": req.ProjectID}
			tasks = append(tasks, task)
			_ = json.NewEncoder(w).Encode(map[string]any{"data": task})
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"data": tasks})
		}
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("t1"), nil)
	if _, err := c.CreateTask(context.Background(), CreateTaskRequest{
		Title: "Write spec", Status: model.TaskStatusTodo, ProjectID: "42",
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := c.ListTasks(context.Background(), "42")
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Write spec" || got[0].Status != model.TaskStatusTodo {
		t.Fatalf("tasks after create = %+v", got)
	}
}

func TestLogin_FlattenedProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "a@b.com" || req.Password != "x" || req.TenantSubdomain != "demo" {
			t.Errorf("login request = %+v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"token": "t1", "id": 5, "fullName": "Ann", "email": "a@b.com", "role": "tenant_admin",
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""), nil)
	resp, err := c.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "x", TenantSubdomain: "demo"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "t1" || resp.ID != "5" || resp.FullName != "Ann" || resp.Role != model.RoleTenantAdmin {
		t.Fatalf("login response = %+v", resp)
	}
}
