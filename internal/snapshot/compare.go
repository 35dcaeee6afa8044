package snapshot

import (
	"log/slog"
	"sort"
)

// CompareAndUpdate applies the change-count state machine to a freshly
// scanned discussion. The rules, in priority order:
//
//  1. Any decisions or notes change (membership or mtime) resets the
//     count to 0 — the discussion was precipitated.
//  2. Outline mtime strictly increased: count goes up by one.
//  3. Outline mtime strictly decreased (clock skew, file restored from a
//     checkout): count is frozen, neither incremented nor reset.
//  4. Otherwise the count is unchanged.
//
// A nil old state means a never-before-seen discussion and behaves as the
// zero value. The result is written into cur.Outline.ChangeCount so the
// caller can persist cur directly, and also returned.
func CompareAndUpdate(old, cur *Discussion) int {
	if old == nil {
		old = &Discussion{}
	}

	if !stampsEqual(old.Decisions, cur.Decisions) || !stampsEqual(old.Notes, cur.Notes) {
		slog.Debug("decisions/notes changed, resetting change count")
		cur.Outline.ChangeCount = 0
		return 0
	}

	switch {
	case cur.Outline.MTime > old.Outline.MTime:
		cur.Outline.ChangeCount = old.Outline.ChangeCount + 1
		slog.Debug("outline modified",
			"change_count", cur.Outline.ChangeCount)
	case cur.Outline.MTime < old.Outline.MTime:
		// Non-monotonic mtime. Freezing avoids false staleness; the next
		// genuine edit produces a strictly greater mtime and resumes counting.
		cur.Outline.ChangeCount = old.Outline.ChangeCount
		slog.Debug("outline mtime decreased, freezing change count",
			"change_count", cur.Outline.ChangeCount)
	default:
		cur.Outline.ChangeCount = old.Outline.ChangeCount
	}

	return cur.Outline.ChangeCount
}

// stampsEqual compares two artifact sets order-insensitively.
func stampsEqual(a, b []FileStamp) bool {
	if len(a) != len(b) {
		return false
	}
	na, nb := normalize(a), normalize(b)
	for i := range na {
		if na[i] != nb[i] {
			return false
		}
	}
	return true
}

// normalize returns a copy sorted by (name, mtime) so comparison ignores
// directory listing order.
func normalize(stamps []FileStamp) []FileStamp {
	out := make([]FileStamp, len(stamps))
	copy(out, stamps)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].MTime < out[j].MTime
	})
	return out
}
