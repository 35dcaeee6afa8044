package snapshot

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// OutlineFile is the primary evolving document at a discussion's root.
	OutlineFile = "outline.md"
	// DecisionsDir holds precipitated decision artifacts.
	DecisionsDir = "decisions"
	// NotesDir holds precipitated note artifacts.
	NotesDir = "notes"
)

// dateDirPattern matches the date level of the discuss tree layout
// (<discussRoot>/YYYY-MM-DD/topic-slug).
var dateDirPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Scan inspects a discussion directory and returns its current filesystem
// state. The outline mtime is 0 when the file is absent; decisions and
// notes come from a single-level listing of their subdirectories, filtered
// by the artifact glob. Stat races with concurrent deletes are skipped,
// never fatal.
func Scan(discussDir, pattern string) *Discussion {
	d := &Discussion{
		Decisions: []FileStamp{},
		Notes:     []FileStamp{},
	}

	if info, err := os.Stat(filepath.Join(discussDir, OutlineFile)); err == nil {
		d.Outline.MTime = mtimeSeconds(info)
	}

	d.Decisions = scanArtifacts(filepath.Join(discussDir, DecisionsDir), pattern)
	d.Notes = scanArtifacts(filepath.Join(discussDir, NotesDir), pattern)

	return d
}

// scanArtifacts lists artifact files directly inside dir. A missing
// directory yields an empty set.
func scanArtifacts(dir, pattern string) []FileStamp {
	stamps := []FileStamp{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return stamps
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, err := doublestar.Match(pattern, entry.Name()); err != nil || !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		stamps = append(stamps, FileStamp{
			Name:  entry.Name(),
			MTime: mtimeSeconds(info),
		})
	}

	return stamps
}

// Key derives the discussion key ("YYYY-MM-DD/topic-slug") from its
// directory path, normalized to forward slashes. Falls back to the
// directory name when the path is not under the discuss root.
func Key(discussDir, discussRoot string) string {
	rel, err := filepath.Rel(discussRoot, discussDir)
	if err != nil || rel == "." || rel == ".." || filepath.IsAbs(rel) {
		return filepath.Base(discussDir)
	}
	return filepath.ToSlash(rel)
}

// FindActive returns discussion directories under the discuss root that
// were modified within the trailing window. The tree layout is fixed:
// date directories at the top level, topic directories inside them.
func FindActive(discussRoot string, window time.Duration) []string {
	var active []string
	cutoff := time.Now().Add(-window)

	dateDirs, err := os.ReadDir(discussRoot)
	if err != nil {
		return active
	}

	for _, dateDir := range dateDirs {
		if !dateDir.IsDir() || !dateDirPattern.MatchString(dateDir.Name()) {
			continue
		}

		datePath := filepath.Join(discussRoot, dateDir.Name())
		topicDirs, err := os.ReadDir(datePath)
		if err != nil {
			continue
		}

		for _, topicDir := range topicDirs {
			if !topicDir.IsDir() {
				continue
			}
			topicPath := filepath.Join(datePath, topicDir.Name())
			if recentlyModified(topicPath, cutoff) {
				active = append(active, topicPath)
			}
		}
	}

	return active
}

// recentlyModified reports whether the directory or anything inside it was
// touched after the cutoff. Unreadable entries are tolerated; the walk is
// an existence check, not an inventory.
func recentlyModified(dir string, cutoff time.Time) bool {
	if info, err := os.Stat(dir); err == nil && info.ModTime().After(cutoff) {
		return true
	}

	recent := false
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().After(cutoff) {
			recent = true
			return fs.SkipAll
		}
		return nil
	})

	return recent
}

func mtimeSeconds(info fs.FileInfo) float64 {
	return float64(info.ModTime().UnixNano()) / float64(time.Second)
}
