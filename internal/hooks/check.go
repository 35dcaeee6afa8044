package hooks

import (
	"log/slog"
	"time"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
	"github.com/alienzhou/skill-discuss-for-specs/internal/reminder"
	"github.com/alienzhou/skill-discuss-for-specs/internal/session"
	"github.com/alienzhou/skill-discuss-for-specs/internal/snapshot"
	"github.com/alienzhou/skill-discuss-for-specs/internal/workspace"
)

// Check handles the conversation-end trigger: scan every recently active
// discussion, advance the change-count state machine, persist the snapshot,
// and block with a precipitation reminder when any discussion crossed the
// threshold.
func Check(in *platform.Input) platform.Response {
	p := in.Detect()

	// A continuation after the stop hook already fired must pass through,
	// otherwise the reminder would re-trigger itself forever.
	if in.StopHookActive() {
		slog.Debug("stop hook already active, allowing")
		return platform.Allow()
	}

	root := workspace.ResolveRoot(in)
	window := config.DetectionWindow()
	pattern := config.ArtifactPattern()
	slog.Info("precipitation check", "platform", p, "workspace", root)

	var reminders []reminder.Reminder

	for _, discussRoot := range workspace.DiscussRoots(root) {
		snap := snapshot.Load(discussRoot)

		if pruned := snapshot.Prune(snap, discussRoot); pruned > 0 {
			slog.Info("pruned deleted discussions", "root", discussRoot, "count", pruned)
		}

		threshold := snap.Threshold(config.StaleThreshold())

		for _, topicDir := range snapshot.FindActive(discussRoot, window) {
			key := snapshot.Key(topicDir, discussRoot)
			cur := snapshot.Scan(topicDir, pattern)
			count := snapshot.CompareAndUpdate(snap.Discussions[key], cur)
			snap.Discussions[key] = cur

			slog.Debug("discussion scanned", "key", key, "change_count", count)

			if count >= threshold {
				reminders = append(reminders, reminder.Reminder{
					Key:         key,
					ChangeCount: count,
					Threshold:   threshold,
					StorePath:   snapshot.Path(discussRoot),
				})
			}
		}

		if err := snapshot.Save(discussRoot, snap); err != nil {
			slog.Warn("failed to persist snapshot", "root", discussRoot, "error", err)
		}
	}

	finishSession(in, p, window)

	if len(reminders) > 0 {
		message, severity := reminder.Combine(reminders)
		slog.Warn("stale discussions detected",
			"count", len(reminders), "severity", severity)
		return platform.Block(message, p)
	}

	return platform.Allow()
}

// finishSession closes out the conversation's session record and sweeps
// expired ones. Best-effort: session state is advisory.
func finishSession(in *platform.Input, p platform.Platform, window time.Duration) {
	if in == nil {
		return
	}

	sessionID := in.SessionID(p)
	if err := session.Delete(string(p), sessionID); err != nil {
		slog.Debug("session cleanup", "error", err)
	}
	if cleaned := session.CleanupOld(string(p), window); cleaned > 0 {
		slog.Info("cleaned up old sessions", "count", cleaned)
	}
}
