// Package session owns the persisted identity blob and bearer credential.
//
// Two logical keys live under the config dir: the token (opaque text) and the
// profile (JSON). Reads go through Read/Token, which never fail: any corrupted
// or absent state degrades to the anonymous session. Writes happen only on
// login/registration (Commit) and sign-out (Clear).
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"taskdeck-cli/internal/model"

	"go.uber.org/zap"
)

const (
	tokenFileName   = "token"
	profileFileName = "profile.json"
)

// DefaultDir resolves the config dir. TASKDECK_CONFIG_DIR overrides, which
// also keeps unit tests from touching ~/.taskdeck.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TASKDECK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck"), nil
}

type Store struct {
	Dir string
	Log *zap.Logger
}

func (s Store) tokenPath() string   { return filepath.Join(s.Dir, tokenFileName) }
func (s Store) profilePath() string { return filepath.Join(s.Dir, profileFileName) }

func (s Store) logger() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

// missingValue reports whether a persisted string is one of the textual forms
// a naive serializer emits for "no value". We have seen both in the wild.
func missingValue(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "undefined", "null":
		return true
	}
	return false
}

// Read returns the current session and never fails.
//
// Any malformed persisted form degrades to the anonymous session. The failure
// is deliberately swallowed: this runs inside every screen's render path, and
// clearing storage or redirecting from here can loop the whole app (the
// redirect target reads the session again). Log and move on.
func (s Store) Read() model.Session {
	b, err := os.ReadFile(s.profilePath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger().Warn("session profile unreadable", zap.Error(err))
		}
		return model.AnonymousSession()
	}
	raw := string(b)
	if missingValue(raw) {
		return model.AnonymousSession()
	}
	var sess model.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger().Warn("session profile corrupted, using anonymous", zap.Error(err))
		return model.AnonymousSession()
	}
	if sess.Role == "" {
		sess.Role = model.RoleUser
	}
	return sess
}

// Token returns the persisted bearer credential, or "" when signed out.
func (s Store) Token() string {
	b, err := os.ReadFile(s.tokenPath())
	if err != nil {
		return ""
	}
	v := strings.TrimSpace(string(b))
	if missingValue(v) {
		return ""
	}
	return v
}

// Commit persists the credential and the profile together. The profile is
// written first and the token last: readers key "signed in" off the token, so
// the ordering guarantees nobody observes a token without a profile.
func (s Store) Commit(token string, profile model.Session) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	if err := atomicWriteFile(s.Dir, profileFileName+".*.tmp", s.profilePath(), b, 0o600); err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, tokenFileName+".*.tmp", s.tokenPath(), []byte(token), 0o600)
}

// Clear removes both session keys. Safe to call when nothing is persisted.
func (s Store) Clear() error {
	var firstErr error
	// Token first, so a reader racing with sign-out sees "signed out" before
	// the profile disappears.
	for _, p := range []string{s.tokenPath(), s.profilePath()} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
