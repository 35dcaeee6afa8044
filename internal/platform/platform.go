// Package platform adapts the stdin/stdout hook protocols of the supported
// AI pair-programming tools. Each tool sends a single JSON object on stdin
// and expects a single JSON object on stdout; the shapes differ per tool,
// so everything protocol-specific lives here and nowhere else.
package platform

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Platform identifies which AI tool invoked the hook.
type Platform string

const (
	ClaudeCode Platform = "claude-code"
	Cursor     Platform = "cursor"
	Unknown    Platform = "unknown"
)

// Input is the parsed hook payload. The raw map is kept as-is because each
// tool ships a different superset of fields; accessors below extract the
// handful the hooks care about.
type Input struct {
	raw map[string]any
}

// ReadInput parses the hook payload from r. Returns nil for empty or
// malformed input; callers treat nil as "nothing to do, allow".
func ReadInput(r io.Reader) *Input {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil
	}
	return &Input{raw: raw}
}

// Detect resolves which tool sent this payload. Key patterns are tried in
// fixed priority order; Claude Code fields win because Cursor's afterFileEdit
// payload is a strict subset shape-wise.
func (in *Input) Detect() Platform {
	if in == nil || in.raw == nil {
		return Unknown
	}

	if _, ok := in.raw["tool_name"]; ok {
		return ClaudeCode
	}
	if _, ok := in.raw["hook_event_name"]; ok {
		return ClaudeCode
	}

	if _, ok := in.raw["file_path"]; ok {
		if _, nested := in.raw["tool_input"]; !nested {
			return Cursor
		}
	}

	if status, ok := in.raw["status"].(string); ok && strings.Contains(status, "completed") {
		return Cursor
	}

	return Unknown
}

// FilePath extracts the edited file's path: Cursor puts it at the top
// level, Claude Code nests it inside tool_input.
func (in *Input) FilePath() string {
	if in == nil {
		return ""
	}

	if fp, ok := in.raw["file_path"].(string); ok && fp != "" {
		return fp
	}

	if ti, ok := in.raw["tool_input"].(map[string]any); ok {
		if fp, ok := ti["file_path"].(string); ok {
			return fp
		}
	}

	return ""
}

// StopHookActive reports whether this invocation is a continuation after
// the stop hook already fired. Claude Code sets stop_hook_active to prevent
// reminder loops; the check hook must short-circuit to allow when it is set.
func (in *Input) StopHookActive() bool {
	if in == nil {
		return false
	}
	active, _ := in.raw["stop_hook_active"].(bool)
	return active
}

// sessionKeys lists the payload fields that may carry a conversation
// identifier, in fallback order.
var sessionKeys = []string{"session_id", "conversation_id", "chat_id", "id"}

// SessionID extracts the conversation identifier for the given platform.
// Claude Code sends session_id; Cursor may use conversation_id. When no
// identifier is present a random one is generated so session bookkeeping
// still functions, at the cost of cross-invocation correlation.
func (in *Input) SessionID(p Platform) string {
	if in != nil {
		switch p {
		case ClaudeCode:
			if id := in.stringField("session_id"); id != "" {
				return id
			}
		case Cursor:
			if id := in.stringField("conversation_id"); id != "" {
				return id
			}
			if id := in.stringField("session_id"); id != "" {
				return id
			}
		}

		for _, key := range sessionKeys {
			if id := in.stringField(key); id != "" {
				return id
			}
		}
	}

	return "fallback-" + uuid.NewString()
}

// workspaceKeys are the known spellings for multi-root workspace arrays.
var workspaceKeys = []string{"workspace_roots", "workspaceRoots"}

// WorkspaceRoots returns workspace root paths supplied in the payload,
// or nil when absent.
func (in *Input) WorkspaceRoots() []string {
	if in == nil {
		return nil
	}

	for _, key := range workspaceKeys {
		entries, ok := in.raw[key].([]any)
		if !ok {
			continue
		}
		var roots []string
		for _, e := range entries {
			if s, ok := e.(string); ok && s != "" {
				roots = append(roots, s)
			}
		}
		if len(roots) > 0 {
			return roots
		}
	}

	return nil
}

func (in *Input) stringField(key string) string {
	switch v := in.raw[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
