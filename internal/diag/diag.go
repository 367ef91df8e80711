// Package diag wires the optional file-backed debug logger.
//
// The TUI owns the terminal, so diagnostics must never go to stdout/stderr.
// When TASKDECK_DEBUG is set we write structured logs to <dir>/debug.log;
// otherwise every call site gets a no-op logger.
package diag

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

func Logger(dir string) *zap.Logger {
	if strings.TrimSpace(os.Getenv("TASKDECK_DEBUG")) == "" {
		return zap.NewNop()
	}
	if strings.TrimSpace(dir) == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, "debug.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
