package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienzhou/skill-discuss-for-specs/internal/platform"
)

func payload(t *testing.T, body string) *platform.Input {
	t.Helper()
	in := platform.ReadInput(strings.NewReader(body))
	require.NotNil(t, in)
	return in
}

func TestResolveRoot_PayloadWins(t *testing.T) {
	t.Setenv("CLAUDE_PROJECT_DIR", "/env/claude")

	root := ResolveRoot(payload(t, `{"workspace_roots": ["/payload/root", "/payload/other"]}`))
	assert.Equal(t, "/payload/root", root)
}

func TestResolveRoot_EnvFallbackOrder(t *testing.T) {
	t.Setenv("CLAUDE_PROJECT_DIR", "/env/claude")
	t.Setenv("CURSOR_PROJECT_DIR", "")
	t.Setenv("WORKSPACE_ROOT", "/env/generic")

	assert.Equal(t, "/env/claude", ResolveRoot(payload(t, `{}`)))

	t.Setenv("CLAUDE_PROJECT_DIR", "")
	assert.Equal(t, "/env/generic", ResolveRoot(payload(t, `{}`)))
}

func TestResolveRoot_CwdFallback(t *testing.T) {
	for _, env := range rootEnvVars {
		t.Setenv(env, "")
	}

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, ResolveRoot(nil))
}

func TestDiscussRoots(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".discuss"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "discussions"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "discuss"), []byte("a file, not a dir"), 0o644))

	roots := DiscussRoots(root)

	assert.Equal(t, []string{
		filepath.Join(root, "discussions"),
		filepath.Join(root, ".discuss"),
	}, roots)
}

func TestLocate(t *testing.T) {
	ws := t.TempDir()
	topic := filepath.Join(ws, ".discuss", "2026-08-30", "cache-design")
	require.NoError(t, os.MkdirAll(filepath.Join(topic, "decisions"), 0o755))

	tests := []struct {
		name     string
		path     string
		category Category
		found    bool
	}{
		{
			name:     "outline at topic root",
			path:     filepath.Join(topic, "outline.md"),
			category: CategoryOutline,
			found:    true,
		},
		{
			name:     "decision artifact",
			path:     filepath.Join(topic, "decisions", "D01-eviction.md"),
			category: CategoryDecisions,
			found:    true,
		},
		{
			name:     "note artifact",
			path:     filepath.Join(topic, "notes", "benchmarks.md"),
			category: CategoryNotes,
			found:    true,
		},
		{
			name:  "untracked file at topic root",
			path:  filepath.Join(topic, "scratch.md"),
			found: false,
		},
		{
			name:  "file outside any discussion",
			path:  filepath.Join(ws, "src", "main.go"),
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := Locate(tt.path)
			if !tt.found {
				assert.Nil(t, loc)
				return
			}
			require.NotNil(t, loc)
			assert.Equal(t, tt.category, loc.Category)
			assert.Equal(t, topic, loc.TopicDir)
			assert.Equal(t, filepath.Join(ws, ".discuss"), loc.DiscussRoot)
		})
	}
}
