// Package session tracks per-conversation state: which outlines were
// touched during a conversation. Session files live under the per-user
// base directory, keyed by platform and session ID, so they persist across
// workspaces and are cheap to clean up.
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
)

// Session is one conversation's record.
type Session struct {
	SessionID      string   `json:"session_id"`
	Platform       string   `json:"platform"`
	StartedAt      string   `json:"started_at"`
	OutlineUpdated bool     `json:"outline_updated"`
	OutlinePaths   []string `json:"outline_paths"`
}

// Dir returns the sessions directory for a platform.
func Dir(platform string) string {
	return filepath.Join(config.BaseDir(), "sessions", platform)
}

func path(platform, sessionID string) string {
	return filepath.Join(Dir(platform), sessionID+".json")
}

// New creates a fresh session record.
func New(platform, sessionID string) *Session {
	return &Session{
		SessionID:    sessionID,
		Platform:     platform,
		StartedAt:    time.Now().UTC().Format(time.RFC3339),
		OutlinePaths: []string{},
	}
}

// Load reads a session record. Returns nil (not an error) when the file
// does not exist; a corrupt file also reads as nil.
func Load(platform, sessionID string) *Session {
	data, err := os.ReadFile(path(platform, sessionID))
	if err != nil {
		return nil
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		slog.Warn("corrupt session file", "platform", platform, "session", sessionID, "error", err)
		return nil
	}
	return &s
}

// Save writes a session record, creating parent directories as needed.
func Save(s *Session) error {
	p := path(s.Platform, s.SessionID)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating sessions directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Delete removes a session record. Deleting a missing session is not an
// error.
func Delete(platform, sessionID string) error {
	err := os.Remove(path(platform, sessionID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// MarkOutlineUpdated records an outline touch in the session, creating the
// session on first use. Returns true when this was the first outline
// update of the conversation.
func MarkOutlineUpdated(platform, sessionID, outlinePath string) (bool, error) {
	s := Load(platform, sessionID)
	if s == nil {
		s = New(platform, sessionID)
	}

	first := !s.OutlineUpdated
	s.OutlineUpdated = true

	seen := false
	for _, p := range s.OutlinePaths {
		if p == outlinePath {
			seen = true
			break
		}
	}
	if !seen {
		s.OutlinePaths = append(s.OutlinePaths, outlinePath)
	}

	if err := Save(s); err != nil {
		return first, err
	}
	return first, nil
}

// CleanupOld removes session files older than maxAge. Returns the number
// removed; unparsable files are left alone and surfaced in the log only.
func CleanupOld(platform string, maxAge time.Duration) int {
	entries, err := os.ReadDir(Dir(platform))
	if err != nil {
		return 0
	}

	cleaned := 0
	now := time.Now().UTC()

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		id := entry.Name()[:len(entry.Name())-len(".json")]
		s := Load(platform, id)
		if s == nil {
			continue
		}

		started, err := time.Parse(time.RFC3339, s.StartedAt)
		if err != nil {
			slog.Debug("session with unparsable start time", "session", id)
			continue
		}

		if now.Sub(started) > maxAge {
			if err := Delete(platform, id); err == nil {
				cleaned++
			}
		}
	}

	return cleaned
}
