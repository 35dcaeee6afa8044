// Package hooks wires scanner, comparator, store, and formatter together
// for the two trigger points. Both orchestrators share one rule: whatever
// goes wrong internally, the response degrades to allow. These hooks must
// never be the reason a coding session stalls.
package hooks

import (
	"log/slog"

	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
	"github.com/alienzhou/skill-discuss-for-specs/internal/session"
	"github.com/alienzhou/skill-discuss-for-specs/internal/workspace"
)

// TrackEdit handles the edit-time trigger. It classifies the edited file
// and, for outline edits, records the touch in the conversation's session.
// The heavy lifting happens at conversation end; per-edit work stays
// minimal so the hook never slows an edit down.
func TrackEdit(in *platform.Input) platform.Response {
	if in == nil {
		slog.Debug("no input payload, allowing")
		return platform.Allow()
	}

	p := in.Detect()
	filePath := in.FilePath()
	if filePath == "" {
		slog.Debug("no file path in payload, allowing", "platform", p)
		return platform.Allow()
	}

	loc := workspace.Locate(filePath)
	if loc == nil {
		slog.Debug("not a discussion file, allowing", "path", filePath)
		return platform.Allow()
	}

	slog.Info("discussion file edited",
		"platform", p, "category", loc.Category, "topic", loc.TopicDir)

	if loc.Category == workspace.CategoryOutline {
		sessionID := in.SessionID(p)
		first, err := session.MarkOutlineUpdated(string(p), sessionID, filePath)
		if err != nil {
			slog.Warn("failed to record outline edit in session", "error", err)
		} else if first {
			slog.Info("first outline edit of the conversation", "session", sessionID)
		}
	}

	return platform.Allow()
}
