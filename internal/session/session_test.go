package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alienzhou/skill-discuss-for-specs/internal/config"
)

func setupBaseDir(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("DISCUSS_BASE_DIR", base)
	config.Init()
	return base
}

func TestMarkOutlineUpdated_CreatesAndAccumulates(t *testing.T) {
	setupBaseDir(t)

	first, err := MarkOutlineUpdated("claude-code", "sess-1", "/ws/.discuss/2026-08-30/t/outline.md")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = MarkOutlineUpdated("claude-code", "sess-1", "/ws/.discuss/2026-08-30/t/outline.md")
	require.NoError(t, err)
	assert.False(t, first)

	_, err = MarkOutlineUpdated("claude-code", "sess-1", "/ws/.discuss/2026-08-30/other/outline.md")
	require.NoError(t, err)

	s := Load("claude-code", "sess-1")
	require.NotNil(t, s)
	assert.True(t, s.OutlineUpdated)
	assert.Len(t, s.OutlinePaths, 2, "duplicate paths are not re-added")
	assert.NotEmpty(t, s.StartedAt)
}

func TestLoad_MissingAndCorrupt(t *testing.T) {
	setupBaseDir(t)

	assert.Nil(t, Load("cursor", "missing"))

	require.NoError(t, os.MkdirAll(Dir("cursor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(Dir("cursor"), "bad.json"), []byte("{oops"), 0o644))
	assert.Nil(t, Load("cursor", "bad"))
}

func TestDelete_MissingIsFine(t *testing.T) {
	setupBaseDir(t)

	require.NoError(t, Save(New("cursor", "gone")))
	assert.NoError(t, Delete("cursor", "gone"))
	assert.NoError(t, Delete("cursor", "gone"))
	assert.Nil(t, Load("cursor", "gone"))
}

func TestCleanupOld(t *testing.T) {
	setupBaseDir(t)

	stale := New("claude-code", "stale")
	stale.StartedAt = time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	require.NoError(t, Save(stale))

	fresh := New("claude-code", "fresh")
	require.NoError(t, Save(fresh))

	cleaned := CleanupOld("claude-code", 24*time.Hour)

	assert.Equal(t, 1, cleaned)
	assert.Nil(t, Load("claude-code", "stale"))
	assert.NotNil(t, Load("claude-code", "fresh"))
}

func TestCleanupOld_MissingDir(t *testing.T) {
	setupBaseDir(t)
	assert.Equal(t, 0, CleanupOld("nobody", time.Hour))
}
