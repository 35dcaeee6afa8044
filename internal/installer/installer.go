// Package installer registers the two hooks into the host tools' config
// files and keeps a marker recording which version is installed.
package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
)

// Action describes what an install run did.
type Action string

const (
	ActionFresh     Action = "installed"
	ActionUpgrade   Action = "upgraded"
	ActionDowngrade Action = "downgraded"
	ActionReinstall Action = "reinstalled"
)

// Result reports one platform's install outcome.
type Result struct {
	Platform    platform.Platform
	Action      Action
	PrevVersion string
	ConfigPath  string
}

// markerFile records installed versions per platform, next to the rest of
// the per-user state.
const markerFile = "installed.yaml"

type markerEntry struct {
	Version     string `yaml:"version"`
	Binary      string `yaml:"binary"`
	InstalledAt string `yaml:"installed_at"`
}

// DetectPlatforms returns the AI tools present on this machine, judged by
// their per-user config directories.
func DetectPlatforms() []platform.Platform {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	var found []platform.Platform
	if info, err := os.Stat(filepath.Join(home, ".claude")); err == nil && info.IsDir() {
		found = append(found, platform.ClaudeCode)
	}
	if info, err := os.Stat(filepath.Join(home, ".cursor")); err == nil && info.IsDir() {
		found = append(found, platform.Cursor)
	}
	return found
}

// Install registers both hooks for the given platform and records the
// installed version. Re-running replaces any prior discuss-hooks entries,
// so installs are idempotent.
func Install(p platform.Platform, binPath, version string) (*Result, error) {
	var configPath string
	var err error

	switch p {
	case platform.ClaudeCode:
		configPath, err = installClaude(binPath)
	case platform.Cursor:
		configPath, err = installCursor(binPath)
	default:
		return nil, fmt.Errorf("unsupported platform %q", p)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Platform: p, Action: ActionFresh, ConfigPath: configPath}

	marker := loadMarker()
	if prev, ok := marker[string(p)]; ok && prev.Version != "" {
		result.PrevVersion = prev.Version
		switch semver.Compare("v"+version, "v"+prev.Version) {
		case 1:
			result.Action = ActionUpgrade
		case -1:
			result.Action = ActionDowngrade
		default:
			result.Action = ActionReinstall
		}
	}

	marker[string(p)] = markerEntry{
		Version:     version,
		Binary:      binPath,
		InstalledAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := saveMarker(marker); err != nil {
		return nil, err
	}

	return result, nil
}

// Uninstall removes the discuss-hooks entries for the given platform and
// drops its marker entry.
func Uninstall(p platform.Platform) (string, error) {
	var configPath string
	var err error

	switch p {
	case platform.ClaudeCode:
		configPath, err = uninstallClaude()
	case platform.Cursor:
		configPath, err = uninstallCursor()
	default:
		return "", fmt.Errorf("unsupported platform %q", p)
	}
	if err != nil {
		return "", err
	}

	marker := loadMarker()
	delete(marker, string(p))
	if err := saveMarker(marker); err != nil {
		return "", err
	}

	return configPath, nil
}

// InstalledVersion returns the recorded version for a platform, or "" when
// none is installed.
func InstalledVersion(p platform.Platform) string {
	return loadMarker()[string(p)].Version
}

func loadMarker() map[string]markerEntry {
	data, err := os.ReadFile(filepath.Join(config.BaseDir(), markerFile))
	if err != nil {
		return map[string]markerEntry{}
	}

	var marker map[string]markerEntry
	if err := yaml.Unmarshal(data, &marker); err != nil || marker == nil {
		return map[string]markerEntry{}
	}
	return marker
}

func saveMarker(marker map[string]markerEntry) error {
	if err := os.MkdirAll(config.BaseDir(), 0o755); err != nil {
		return fmt.Errorf("creating base directory: %w", err)
	}

	data, err := yaml.Marshal(marker)
	if err != nil {
		return fmt.Errorf("marshaling install marker: %w", err)
	}
	if err := os.WriteFile(filepath.Join(config.BaseDir(), markerFile), data, 0o644); err != nil {
		return fmt.Errorf("writing install marker: %w", err)
	}
	return nil
}
