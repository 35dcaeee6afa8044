package installer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Claude Code hook registration lives in ~/.claude/settings.json:
//
//	{"hooks": {
//	  "PostToolUse": [{"matcher": "Edit|Write|MultiEdit",
//	                   "hooks": [{"type": "command", "command": "<bin> track-edit"}]}],
//	  "Stop":        [{"hooks": [{"type": "command", "command": "<bin> check"}]}]}}
//
// Entries from other tools are preserved; only entries whose command
// invokes discuss-hooks are considered ours.

const editMatcher = "Edit|Write|MultiEdit"

// commandTag identifies our entries in shared config files across
// reinstalls, even when the binary path changed.
const commandTag = "discuss-hooks"

func claudeSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

func installClaude(binPath string) (string, error) {
	path, err := claudeSettingsPath()
	if err != nil {
		return "", err
	}

	settings, err := loadJSONFile(path)
	if err != nil {
		return "", err
	}

	hooks, _ := settings["hooks"].(map[string]any)
	if hooks == nil {
		hooks = map[string]any{}
	}

	hooks["PostToolUse"] = appendClaudeEntry(
		removeOurEntries(hooks["PostToolUse"]),
		editMatcher, binPath+" track-edit")
	hooks["Stop"] = appendClaudeEntry(
		removeOurEntries(hooks["Stop"]),
		"", binPath+" check")

	settings["hooks"] = hooks
	return path, writeJSONFile(path, settings)
}

func uninstallClaude() (string, error) {
	path, err := claudeSettingsPath()
	if err != nil {
		return "", err
	}

	settings, err := loadJSONFile(path)
	if err != nil {
		return "", err
	}

	if hooks, ok := settings["hooks"].(map[string]any); ok {
		for _, event := range []string{"PostToolUse", "Stop"} {
			if entries := removeOurEntries(hooks[event]); len(entries) > 0 {
				hooks[event] = entries
			} else {
				delete(hooks, event)
			}
		}
		if len(hooks) == 0 {
			delete(settings, "hooks")
		}
	}

	return path, writeJSONFile(path, settings)
}

// appendClaudeEntry adds one hook registration in Claude Code's shape.
func appendClaudeEntry(entries []any, matcher, command string) []any {
	entry := map[string]any{
		"hooks": []any{map[string]any{"type": "command", "command": command}},
	}
	if matcher != "" {
		entry["matcher"] = matcher
	}
	return append(entries, entry)
}

// removeOurEntries filters out registrations that invoke discuss-hooks,
// keeping everything else untouched.
func removeOurEntries(raw any) []any {
	entries, _ := raw.([]any)
	var kept []any
	for _, e := range entries {
		if !entryIsOurs(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

func entryIsOurs(entry any) bool {
	m, ok := entry.(map[string]any)
	if !ok {
		return false
	}
	inner, _ := m["hooks"].([]any)
	for _, h := range inner {
		hm, ok := h.(map[string]any)
		if !ok {
			continue
		}
		if cmd, ok := hm["command"].(string); ok && strings.Contains(cmd, commandTag) {
			return true
		}
	}
	return false
}

// loadJSONFile reads a JSON object, yielding an empty one for a missing
// file. A corrupt file is an error: installer must not silently clobber a
// config used by other tools.
func loadJSONFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if obj == nil {
		obj = map[string]any{}
	}
	return obj, nil
}

func writeJSONFile(path string, obj map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
