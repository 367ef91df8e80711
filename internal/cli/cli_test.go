package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"taskdeck-cli/internal/model"
	"taskdeck-cli/internal/session"
)

func sessionFixture() model.Session {
	return model.Session{ID: "5", FullName: "Ann Admin", Email: "a@b.com", Role: model.RoleTenantAdmin, TenantSubdomain: "demo"}
}

// testServer is a minimal backend double for command round trips.
type testServer struct {
	mu      sync.Mutex
	deletes []string
}

func (ts *testServer) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"token":           "t1",
			"id":              5,
			"fullName":        "Ann Admin",
			"email":           req.Email,
			"role":            "tenant_admin",
			"tenantSubdomain": "demo",
		}})
	})

	mux.HandleFunc("GET /api/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "missing token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{
			{"id": 1, "name": "Alpha", "status": "active"},
		}})
	})

	mux.HandleFunc("DELETE /api/v1/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		ts.deletes = append(ts.deletes, r.PathValue("id"))
		ts.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]bool{"ok": true}})
	})

	return mux
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginThenListRoundTrip(t *testing.T) {
	ts := &testServer{}
	srv := httptest.NewServer(ts.handler(t))
	defer srv.Close()
	dir := t.TempDir()

	out, err := runCommand(t, "", "login",
		"--api-url", srv.URL, "--dir", dir,
		"--email", "a@b.com", "--password", "x", "--tenant", "demo")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, `"Ann Admin"`) {
		t.Fatalf("login output = %q", out)
	}

	st := session.Store{Dir: dir}
	if st.Token() != "t1" {
		t.Fatalf("persisted token = %q", st.Token())
	}
	if got := st.Read(); got.ID != "5" || got.TenantSubdomain != "demo" {
		t.Fatalf("persisted session = %+v", got)
	}

	out, err = runCommand(t, "", "projects", "list", "--api-url", srv.URL, "--dir", dir)
	if err != nil {
		t.Fatalf("projects list: %v", err)
	}
	if !strings.Contains(out, `"Alpha"`) {
		t.Fatalf("projects output = %q", out)
	}
}

func TestListUnauthorizedHintsLogin(t *testing.T) {
	ts := &testServer{}
	srv := httptest.NewServer(ts.handler(t))
	defer srv.Close()

	_, err := runCommand(t, "", "projects", "list", "--api-url", srv.URL, "--dir", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "taskdeck login") {
		t.Fatalf("err = %v, want sign-in hint", err)
	}
}

func TestDeleteDeclinedIssuesNoRequest(t *testing.T) {
	ts := &testServer{}
	srv := httptest.NewServer(ts.handler(t))
	defer srv.Close()

	_, err := runCommand(t, "n\n", "projects", "delete", "1", "--api-url", srv.URL, "--dir", t.TempDir())
	if err != nil {
		t.Fatalf("declined delete should not error: %v", err)
	}
	if len(ts.deletes) != 0 {
		t.Fatalf("declined delete reached the server: %v", ts.deletes)
	}

	_, err = runCommand(t, "", "projects", "delete", "1", "--yes", "--api-url", srv.URL, "--dir", t.TempDir())
	if err != nil {
		t.Fatalf("delete --yes: %v", err)
	}
	if len(ts.deletes) != 1 || ts.deletes[0] != "1" {
		t.Fatalf("deletes = %v", ts.deletes)
	}
}

func TestUsersRemoveSelfBlocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("self-removal must not reach the server: %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()
	dir := t.TempDir()

	st := session.Store{Dir: dir}
	if err := st.Commit("t1", sessionFixture()); err != nil {
		t.Fatalf("commit: %v", err)
	}

	_, err := runCommand(t, "", "users", "remove", "5", "--yes", "--api-url", srv.URL, "--dir", dir)
	if err == nil || !strings.Contains(err.Error(), "cannot remove your own account") {
		t.Fatalf("err = %v", err)
	}
}

func TestWhoamiSignedOut(t *testing.T) {
	out, err := runCommand(t, "", "whoami", "--dir", t.TempDir())
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out, `"signedIn":false`) {
		t.Fatalf("whoami output = %q", out)
	}
}
