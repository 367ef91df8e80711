package session

import (
	"os"
	"path/filepath"
	"testing"

	"taskdeck-cli/internal/model"
)

func TestRead_MalformedInputsDegradeToAnonymous(t *testing.T) {
	cases := []struct {
		name    string
		write   bool
		content string
	}{
		{name: "absent key", write: false},
		{name: "empty string", write: true, content: ""},
		{name: "literal undefined", write: true, content: "undefined"},
		{name: "literal null", write: true, content: "null"},
		{name: "invalid json", write: true, content: "{not json"},
		{name: "truncated json", write: true, content: `{"fullName":"An`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Store{Dir: t.TempDir()}
			if tc.write {
				if err := os.WriteFile(filepath.Join(s.Dir, profileFileName), []byte(tc.content), 0o600); err != nil {
					t.Fatalf("write profile: %v", err)
				}
			}
			got := s.Read()
			want := model.AnonymousSession()
			if got != want {
				t.Fatalf("Read() = %+v, want anonymous %+v", got, want)
			}
		})
	}
}

func TestRead_MissingDirIsAnonymous(t *testing.T) {
	s := Store{Dir: filepath.Join(t.TempDir(), "does", "not", "exist")}
	if got := s.Read(); got != model.AnonymousSession() {
		t.Fatalf("Read() = %+v, want anonymous", got)
	}
	if tok := s.Token(); tok != "" {
		t.Fatalf("Token() = %q, want empty", tok)
	}
}

func TestCommitThenRead_RoundTrips(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	profile := model.Session{
		ID:              "5",
		FullName:        "Ann",
		Email:           "a@b.com",
		Role:            model.RoleTenantAdmin,
		TenantSubdomain: "demo",
	}
	if err := s.Commit("t1", profile); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got := s.Read(); got != profile {
		t.Fatalf("Read() = %+v, want %+v", got, profile)
	}
	if tok := s.Token(); tok != "t1" {
		t.Fatalf("Token() = %q, want t1", tok)
	}
}

func TestRead_DefaultsEmptyRoleToUser(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := os.WriteFile(filepath.Join(s.Dir, profileFileName), []byte(`{"fullName":"Bo"}`), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	got := s.Read()
	if got.Role != model.RoleUser {
		t.Fatalf("Role = %q, want %q", got.Role, model.RoleUser)
	}
	if got.FullName != "Bo" {
		t.Fatalf("FullName = %q, want Bo", got.FullName)
	}
}

func TestToken_LiteralSentinelsMeanSignedOut(t *testing.T) {
	for _, lit := range []string{"undefined", "null", "  "} {
		s := Store{Dir: t.TempDir()}
		if err := os.WriteFile(filepath.Join(s.Dir, tokenFileName), []byte(lit), 0o600); err != nil {
			t.Fatalf("write token: %v", err)
		}
		if tok := s.Token(); tok != "" {
			t.Fatalf("Token() with %q = %q, want empty", lit, tok)
		}
	}
}

func TestClear_IsIdempotent(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}
	if err := s.Commit("t1", model.Session{FullName: "Ann", Role: model.RoleUser}); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if got := s.Read(); got != model.AnonymousSession() {
		t.Fatalf("Read after Clear = %+v, want anonymous", got)
	}
	if tok := s.Token(); tok != "" {
		t.Fatalf("Token after Clear = %q, want empty", tok)
	}
}
