package snapshot

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns the snapshot file location for a discuss root.
func Path(discussRoot string) string {
	return filepath.Join(discussRoot, FileName)
}

// Load reads the snapshot for a discuss root. A missing or unparsable file
// yields a fresh default snapshot: corrupt state resets bookkeeping, it
// never fails the hook.
func Load(discussRoot string) *Snapshot {
	path := Path(discussRoot)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("unreadable snapshot, starting fresh", "path", path, "error", err)
		}
		return New()
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		slog.Warn("corrupt snapshot, starting fresh", "path", path, "error", err)
		return New()
	}

	if snap.Version == 0 {
		snap.Version = CurrentVersion
	}
	if snap.Config.StaleThreshold == 0 {
		snap.Config.StaleThreshold = DefaultStaleThreshold
	}
	if snap.Discussions == nil {
		snap.Discussions = map[string]*Discussion{}
	}

	return &snap
}

// Save writes the snapshot in full, creating the discuss root if needed.
func Save(discussRoot string, snap *Snapshot) error {
	if err := os.MkdirAll(discussRoot, 0o755); err != nil {
		return fmt.Errorf("creating discuss root: %w", err)
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := os.WriteFile(Path(discussRoot), data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Prune drops entries whose discussion directory no longer exists under
// the discuss root. Returns the number of entries removed.
func Prune(snap *Snapshot, discussRoot string) int {
	pruned := 0
	for key := range snap.Discussions {
		dir := filepath.Join(discussRoot, filepath.FromSlash(key))
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			continue
		}
		delete(snap.Discussions, key)
		pruned++
		slog.Debug("pruned deleted discussion", "key", key)
	}
	return pruned
}
