package installer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DISCUSS_BASE_DIR", filepath.Join(home, ".discuss-for-specs"))
	config.Init()
	return home
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var obj map[string]any
	require.NoError(t, json.Unmarshal(data, &obj))
	return obj
}

func TestDetectPlatforms(t *testing.T) {
	home := setupHome(t)
	assert.Empty(t, DetectPlatforms())

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".claude"), 0o755))
	assert.Equal(t, []platform.Platform{platform.ClaudeCode}, DetectPlatforms())

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".cursor"), 0o755))
	assert.Equal(t, []platform.Platform{platform.ClaudeCode, platform.Cursor}, DetectPlatforms())
}

func TestInstallClaude_RegistersBothHooks(t *testing.T) {
	home := setupHome(t)

	result, err := Install(platform.ClaudeCode, "/usr/local/bin/discuss-hooks", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, ActionFresh, result.Action)

	settings := readJSON(t, filepath.Join(home, ".claude", "settings.json"))
	hooks := settings["hooks"].(map[string]any)

	postToolUse := hooks["PostToolUse"].([]any)
	require.Len(t, postToolUse, 1)
	entry := postToolUse[0].(map[string]any)
	assert.Equal(t, "Edit|Write|MultiEdit", entry["matcher"])
	inner := entry["hooks"].([]any)[0].(map[string]any)
	assert.Equal(t, "/usr/local/bin/discuss-hooks track-edit", inner["command"])

	stop := hooks["Stop"].([]any)
	require.Len(t, stop, 1)
	stopInner := stop[0].(map[string]any)["hooks"].([]any)[0].(map[string]any)
	assert.Equal(t, "/usr/local/bin/discuss-hooks check", stopInner["command"])
}

func TestInstall_IdempotentAndPreservesForeignEntries(t *testing.T) {
	home := setupHome(t)
	settingsPath := filepath.Join(home, ".claude", "settings.json")

	require.NoError(t, os.MkdirAll(filepath.Dir(settingsPath), 0o755))
	require.NoError(t, os.WriteFile(settingsPath, []byte(`{
		"model": "opus",
		"hooks": {
			"Stop": [{"hooks": [{"type": "command", "command": "other-tool notify"}]}]
		}
	}`), 0o644))

	_, err := Install(platform.ClaudeCode, "/bin/discuss-hooks", "1.0.0")
	require.NoError(t, err)
	_, err = Install(platform.ClaudeCode, "/bin/discuss-hooks", "1.0.0")
	require.NoError(t, err)

	settings := readJSON(t, settingsPath)
	assert.Equal(t, "opus", settings["model"], "unrelated settings preserved")

	stop := settings["hooks"].(map[string]any)["Stop"].([]any)
	assert.Len(t, stop, 2, "one foreign entry plus exactly one of ours")
}

func TestInstall_VersionTransitions(t *testing.T) {
	setupHome(t)

	first, err := Install(platform.Cursor, "/bin/discuss-hooks", "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, ActionFresh, first.Action)

	upgraded, err := Install(platform.Cursor, "/bin/discuss-hooks", "1.1.0")
	require.NoError(t, err)
	assert.Equal(t, ActionUpgrade, upgraded.Action)
	assert.Equal(t, "1.0.0", upgraded.PrevVersion)

	downgraded, err := Install(platform.Cursor, "/bin/discuss-hooks", "0.9.0")
	require.NoError(t, err)
	assert.Equal(t, ActionDowngrade, downgraded.Action)

	same, err := Install(platform.Cursor, "/bin/discuss-hooks", "0.9.0")
	require.NoError(t, err)
	assert.Equal(t, ActionReinstall, same.Action)

	assert.Equal(t, "0.9.0", InstalledVersion(platform.Cursor))
}

func TestUninstall_RemovesOnlyOurs(t *testing.T) {
	home := setupHome(t)
	hooksPath := filepath.Join(home, ".cursor", "hooks.json")

	require.NoError(t, os.MkdirAll(filepath.Dir(hooksPath), 0o755))
	require.NoError(t, os.WriteFile(hooksPath, []byte(`{
		"version": 1,
		"hooks": {"stop": [{"command": "other-tool wrapup"}]}
	}`), 0o644))

	_, err := Install(platform.Cursor, "/bin/discuss-hooks", "1.0.0")
	require.NoError(t, err)

	_, err = Uninstall(platform.Cursor)
	require.NoError(t, err)

	cfg := readJSON(t, hooksPath)
	hooks := cfg["hooks"].(map[string]any)
	stop := hooks["stop"].([]any)
	require.Len(t, stop, 1)
	assert.Equal(t, "other-tool wrapup", stop[0].(map[string]any)["command"])
	_, hasAfterEdit := hooks["afterFileEdit"]
	assert.False(t, hasAfterEdit)

	assert.Equal(t, "", InstalledVersion(platform.Cursor))
}

func TestInstall_CorruptConfigIsAnError(t *testing.T) {
	home := setupHome(t)
	settingsPath := filepath.Join(home, ".claude", "settings.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(settingsPath), 0o755))
	require.NoError(t, os.WriteFile(settingsPath, []byte("{broken"), 0o644))

	_, err := Install(platform.ClaudeCode, "/bin/discuss-hooks", "1.0.0")
	assert.Error(t, err, "never clobber a config file we cannot parse")
}
