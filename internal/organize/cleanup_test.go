package organize_test

import (
	"os"
	"path/filepath"
	"testing"

	"camroll/internal/classify"
	"camroll/internal/organize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupKeepsMatchedPreviews(t *testing.T) {
	dateDir := filepath.Join(t.TempDir(), "03-15-2023")
	raw := filepath.Join(dateDir, "IMG001.CR2")
	preview := filepath.Join(dateDir, "jpg", "IMG001.jpg")
	touch(t, raw, preview)

	orphans, err := organize.Cleanup(dateDir, true, classify.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, orphans, "a preview with a raw counterpart is not an orphan")
}

func TestCleanupReportsOrphanInDryRun(t *testing.T) {
	dateDir := filepath.Join(t.TempDir(), "03-15-2023")
	orphan := filepath.Join(dateDir, "jpg", "IMG001.jpg")
	touch(t, orphan)

	orphans, err := organize.Cleanup(dateDir, true, classify.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan}, orphans)
	assert.FileExists(t, orphan, "dry run must not delete")
}

func TestCleanupDeletesOrphans(t *testing.T) {
	dateDir := filepath.Join(t.TempDir(), "03-15-2023")
	kept := filepath.Join(dateDir, "jpg", "IMG001.jpg")
	orphan := filepath.Join(dateDir, "jpg", "IMG002.jpg")
	raw := filepath.Join(dateDir, "IMG001.CR2")
	touch(t, kept, orphan, raw)

	orphans, err := organize.Cleanup(dateDir, false, classify.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{orphan}, orphans)

	assert.FileExists(t, kept)
	_, statErr := os.Stat(orphan)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestCleanupWithoutJpgDir(t *testing.T) {
	dateDir := filepath.Join(t.TempDir(), "03-15-2023")
	touch(t, filepath.Join(dateDir, "IMG001.CR2"))

	orphans, err := organize.Cleanup(dateDir, false, classify.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestCleanupIgnoresNonPreviewFilesInJpgDir(t *testing.T) {
	dateDir := filepath.Join(t.TempDir(), "03-15-2023")
	stray := filepath.Join(dateDir, "jpg", "notes.txt")
	touch(t, stray)

	orphans, err := organize.Cleanup(dateDir, false, classify.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, orphans)
	assert.FileExists(t, stray)
}
