package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("DISCUSS_BASE_DIR", t.TempDir())
	Init()

	assert.Equal(t, 3, StaleThreshold())
	assert.Equal(t, 24*time.Hour, DetectionWindow())
	assert.Equal(t, "*.md", ArtifactPattern())
	assert.Equal(t, slog.LevelInfo, LogLevel())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DISCUSS_STALE_THRESHOLD", "5")
	t.Setenv("DISCUSS_DETECTION_WINDOW", "8h")
	t.Setenv("DISCUSS_LOG_LEVEL", "debug")
	t.Setenv("DISCUSS_BASE_DIR", "/custom/state")
	Init()

	assert.Equal(t, 5, StaleThreshold())
	assert.Equal(t, 8*time.Hour, DetectionWindow())
	assert.Equal(t, slog.LevelDebug, LogLevel())
	assert.Equal(t, "/custom/state", BaseDir())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DISCUSS_STALE_THRESHOLD", "-2")
	t.Setenv("DISCUSS_DETECTION_WINDOW", "soon")
	Init()

	assert.Equal(t, 3, StaleThreshold())
	assert.Equal(t, 24*time.Hour, DetectionWindow())
}
