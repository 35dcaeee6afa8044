// Package workspace resolves where discussions live: the workspace root
// for a hook invocation, the discuss roots inside it, and which discussion
// (if any) an edited file belongs to.
package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
	"github.com/alienzhou/skill-discuss-for-specs/internal/snapshot"
)

// Category classifies a tracked file within a discussion.
type Category string

const (
	CategoryOutline   Category = "outline"
	CategoryDecisions Category = "decisions"
	CategoryNotes     Category = "notes"
)

// rootCandidates are the directory names recognized as discuss roots,
// checked in order under the workspace root.
var rootCandidates = []string{"discuss", "discussions", ".discuss"}

// rootEnvVars indicate the host tool's project directory, checked in order
// when the payload carries no workspace roots.
var rootEnvVars = []string{"CLAUDE_PROJECT_DIR", "CURSOR_PROJECT_DIR", "WORKSPACE_ROOT"}

// ResolveRoot determines the workspace root for a hook invocation:
// explicit roots in the payload win, then tool-specific environment
// variables, then the current working directory.
func ResolveRoot(in *platform.Input) string {
	if roots := in.WorkspaceRoots(); len(roots) > 0 {
		return roots[0]
	}

	for _, env := range rootEnvVars {
		if dir := os.Getenv(env); dir != "" {
			return dir
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// DiscussRoots returns the discuss roots that exist under the workspace
// root.
func DiscussRoots(workspaceRoot string) []string {
	var roots []string
	for _, name := range rootCandidates {
		dir := filepath.Join(workspaceRoot, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			roots = append(roots, dir)
		}
	}
	return roots
}

// Location identifies the discussion a tracked file belongs to.
type Location struct {
	DiscussRoot string
	TopicDir    string
	Category    Category
}

// Locate maps an edited file to its discussion. The discuss tree layout is
// <discussRoot>/<YYYY-MM-DD>/<topic-slug>/..., so the topic directory is
// found by walking up from the file until an ancestor's grandparent is a
// discuss root. Returns nil when the file is outside any discussion or is
// not a tracked category.
func Locate(filePath string) *Location {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil
	}

	for dir := filepath.Dir(abs); ; dir = filepath.Dir(dir) {
		parent := filepath.Dir(dir)
		grandparent := filepath.Dir(parent)
		if isDiscussRootName(filepath.Base(grandparent)) {
			cat := categorize(abs, dir)
			if cat == "" {
				return nil
			}
			return &Location{
				DiscussRoot: grandparent,
				TopicDir:    dir,
				Category:    cat,
			}
		}
		if parent == dir {
			return nil
		}
	}
}

// categorize determines which tracked category a file belongs to, relative
// to its topic directory.
func categorize(filePath, topicDir string) Category {
	rel, err := filepath.Rel(topicDir, filePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	switch {
	case len(parts) == 1 && parts[0] == snapshot.OutlineFile:
		return CategoryOutline
	case len(parts) > 1 && parts[0] == snapshot.DecisionsDir:
		return CategoryDecisions
	case len(parts) > 1 && parts[0] == snapshot.NotesDir:
		return CategoryNotes
	default:
		return ""
	}
}

func isDiscussRootName(name string) bool {
	for _, candidate := range rootCandidates {
		if name == candidate {
			return true
		}
	}
	return false
}
