package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
)

// Setup installs the default slog logger for a hook invocation.
//
// Hook stdout carries the protocol JSON, so log lines go to an append-only
// file under ~/.discuss-for-specs/logs/. When the file cannot be opened the
// logger silently discards records; a hook must never fail because its log
// destination is unavailable.
func Setup(hook string) *slog.Logger {
	logger := slog.New(handler())
	logger = logger.With("hook", hook, "pid", os.Getpid())
	slog.SetDefault(logger)
	return logger
}

func handler() slog.Handler {
	logDir := filepath.Join(config.BaseDir(), "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return slog.NewTextHandler(io.Discard, nil)
	}

	f, err := os.OpenFile(filepath.Join(logDir, "hooks.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.NewTextHandler(io.Discard, nil)
	}

	return slog.NewTextHandler(f, &slog.HandlerOptions{Level: config.LogLevel()})
}
