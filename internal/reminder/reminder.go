// Package reminder turns staleness verdicts into the messages surfaced to
// the user through the host tool's hook response.
package reminder

import (
	"fmt"
	"strings"
)

// Severity grades a staleness verdict.
type Severity int

const (
	// None: below the stale threshold, no reminder.
	None Severity = iota
	// Suggest: at or above the stale threshold, inviting wording.
	Suggest
	// Force: at or above twice the stale threshold, imperative wording.
	// Force framing governs whether the host tool blocks continuation.
	Force
)

// separator joins reminders for multiple stale discussions.
const separator = "\n\n---\n\n"

// Reminder describes one stale discussion.
type Reminder struct {
	Key         string
	ChangeCount int
	Threshold   int
	StorePath   string
}

// Severity grades this reminder against its threshold.
func (r Reminder) Severity() Severity {
	switch {
	case r.Threshold < 1 || r.ChangeCount < r.Threshold:
		return None
	case r.ChangeCount >= 2*r.Threshold:
		return Force
	default:
		return Suggest
	}
}

// Message renders the reminder text. Suggest wording invites the user to
// precipitate; force wording requires it before continuing.
func (r Reminder) Message() string {
	switch r.Severity() {
	case Force:
		return fmt.Sprintf(
			"Precipitation required: the outline for %q has been edited %d consecutive times "+
				"(threshold %d, required at %d) without any decisions or notes update. "+
				"You must update decisions/ or notes/ before continuing.\n"+
				"Tracking state: %s",
			r.Key, r.ChangeCount, r.Threshold, 2*r.Threshold, r.StorePath)
	case Suggest:
		return fmt.Sprintf(
			"Precipitation suggested: the outline for %q has been edited %d consecutive times "+
				"(threshold %d) without any decisions or notes update. "+
				"Consider capturing what was settled under decisions/ or notes/.\n"+
				"Tracking state: %s",
			r.Key, r.ChangeCount, r.Threshold, r.StorePath)
	default:
		return ""
	}
}

// Combine joins the messages of multiple stale discussions. The overall
// severity escalates to Force when any constituent is force-level, even if
// the rest are merely suggestions.
func Combine(reminders []Reminder) (string, Severity) {
	var parts []string
	overall := None

	for _, r := range reminders {
		sev := r.Severity()
		if sev == None {
			continue
		}
		parts = append(parts, r.Message())
		if sev > overall {
			overall = sev
		}
	}

	return strings.Join(parts, separator), overall
}
