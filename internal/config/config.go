package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// BaseDirName is the per-user directory holding config, logs, sessions,
// and the installer marker. Lives directly under the home directory so
// state survives across workspaces.
const BaseDirName = ".discuss-for-specs"

// Init configures viper with defaults, the optional config file at
// ~/.discuss-for-specs/config.yaml, and DISCUSS_* environment overrides.
// Safe to call more than once.
func Init() {
	viper.SetDefault("stale_threshold", 3)
	viper.SetDefault("detection_window", "24h")
	viper.SetDefault("artifact_pattern", "*.md")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("base_dir", "")

	viper.SetEnvPrefix("DISCUSS")
	viper.AutomaticEnv()

	viper.AddConfigPath(BaseDir())
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Missing config file is the normal case.
	_ = viper.ReadInConfig()
}

// BaseDir returns the per-user state directory (~/.discuss-for-specs).
// Relocatable via DISCUSS_BASE_DIR or the base_dir config key; falls back
// to a temp-dir location when the home directory is unknown.
func BaseDir() string {
	if dir := viper.GetString("base_dir"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), BaseDirName)
	}
	return filepath.Join(home, BaseDirName)
}

// StaleThreshold returns the process-level staleness threshold. A
// stale_threshold stored in a workspace's snapshot file takes precedence
// over this value; see snapshot.Snapshot.Threshold.
func StaleThreshold() int {
	n := viper.GetInt("stale_threshold")
	if n < 1 {
		return 3
	}
	return n
}

// DetectionWindow returns how far back the conversation-end hook looks
// for recently modified discussions.
func DetectionWindow() time.Duration {
	d, err := time.ParseDuration(viper.GetString("detection_window"))
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// ArtifactPattern returns the glob used to recognize decision and note
// artifact files inside a discussion directory.
func ArtifactPattern() string {
	p := viper.GetString("artifact_pattern")
	if p == "" {
		return "*.md"
	}
	return p
}

// LogLevel maps the configured log_level string to a slog level.
func LogLevel() slog.Level {
	switch viper.GetString("log_level") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
