package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cursor hook registration lives in ~/.cursor/hooks.json:
//
//	{"version": 1,
//	 "hooks": {
//	   "afterFileEdit": [{"command": "<bin> track-edit"}],
//	   "stop":          [{"command": "<bin> check"}]}}

func cursorHooksPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".cursor", "hooks.json"), nil
}

func installCursor(binPath string) (string, error) {
	path, err := cursorHooksPath()
	if err != nil {
		return "", err
	}

	cfg, err := loadJSONFile(path)
	if err != nil {
		return "", err
	}
	if _, ok := cfg["version"]; !ok {
		cfg["version"] = 1
	}

	hooks, _ := cfg["hooks"].(map[string]any)
	if hooks == nil {
		hooks = map[string]any{}
	}

	hooks["afterFileEdit"] = append(
		removeOurCursorEntries(hooks["afterFileEdit"]),
		map[string]any{"command": binPath + " track-edit"})
	hooks["stop"] = append(
		removeOurCursorEntries(hooks["stop"]),
		map[string]any{"command": binPath + " check"})

	cfg["hooks"] = hooks
	return path, writeJSONFile(path, cfg)
}

func uninstallCursor() (string, error) {
	path, err := cursorHooksPath()
	if err != nil {
		return "", err
	}

	cfg, err := loadJSONFile(path)
	if err != nil {
		return "", err
	}

	if hooks, ok := cfg["hooks"].(map[string]any); ok {
		for _, event := range []string{"afterFileEdit", "stop"} {
			if entries := removeOurCursorEntries(hooks[event]); len(entries) > 0 {
				hooks[event] = entries
			} else {
				delete(hooks, event)
			}
		}
		if len(hooks) == 0 {
			delete(cfg, "hooks")
		}
	}

	return path, writeJSONFile(path, cfg)
}

func removeOurCursorEntries(raw any) []any {
	entries, _ := raw.([]any)
	var kept []any
	for _, e := range entries {
		m, ok := e.(map[string]any)
		if ok {
			if cmd, ok := m["command"].(string); ok && strings.Contains(cmd, commandTag) {
				continue
			}
		}
		kept = append(kept, e)
	}
	return kept
}
