// Package snapshot implements the staleness-detection state machine: a
// per-workspace snapshot file tracks, for every discussion, the outline's
// last-seen mtime plus a consecutive-change counter, and the mtimes of the
// decision and note artifacts that would reset it.
package snapshot

// FileName is the snapshot file, stored at the discuss root. Kept
// human-readable so users can inspect or hand-reset the counters.
const FileName = ".snapshot.yaml"

// CurrentVersion tags the snapshot schema. Earlier generations kept
// per-discussion meta.yaml files with run/round counters and pending-update
// flags; both are superseded by this mtime-based schema and are not read.
const CurrentVersion = 1

// DefaultStaleThreshold is the change count at which a suggestion fires.
// The force threshold is always double the stale threshold.
const DefaultStaleThreshold = 3

// FileStamp records one artifact file's identity and modification time.
type FileStamp struct {
	Name  string  `yaml:"name"`
	MTime float64 `yaml:"mtime"`
}

// OutlineState tracks the outline document. ChangeCount is the number of
// consecutive outline modifications observed with no intervening decisions
// or notes change; it is the staleness metric.
type OutlineState struct {
	MTime       float64 `yaml:"mtime"`
	ChangeCount int     `yaml:"change_count"`
}

// Discussion is the tracked state of one topic directory.
type Discussion struct {
	Outline   OutlineState `yaml:"outline"`
	Decisions []FileStamp  `yaml:"decisions"`
	Notes     []FileStamp  `yaml:"notes"`
}

// Config holds the per-workspace knobs persisted inside the snapshot file.
type Config struct {
	StaleThreshold int `yaml:"stale_threshold"`
}

// Snapshot is the persisted state for all discussions under one discuss
// root. It is loaded at the start of a conversation-end hook run, mutated
// in place, and written back in full at the end.
type Snapshot struct {
	Version     int                    `yaml:"version"`
	Config      Config                 `yaml:"config"`
	Discussions map[string]*Discussion `yaml:"discussions"`
}

// New returns an empty snapshot with default config.
func New() *Snapshot {
	return &Snapshot{
		Version:     CurrentVersion,
		Config:      Config{StaleThreshold: DefaultStaleThreshold},
		Discussions: map[string]*Discussion{},
	}
}

// Threshold returns the effective stale threshold: the value stored in the
// snapshot file wins (it is the hand-editable per-workspace knob), falling
// back to the supplied process-level value.
func (s *Snapshot) Threshold(fallback int) int {
	if s.Config.StaleThreshold > 0 {
		return s.Config.StaleThreshold
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultStaleThreshold
}
