package organize_test

import (
	"os"
	"path/filepath"
	"testing"

	"camroll/internal/organize"
	"camroll/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
}

func TestPlanLooseFileIntoFreshDateDir(t *testing.T) {
	root := t.TempDir()
	sorted := filepath.Join(root, "03-15-2023", "IMG001.CR2")
	sidecar := filepath.Join(root, "03-15-2023", "IMG001.xmp")
	loose := filepath.Join(root, "IMG002.CR2")
	touch(t, sorted, sidecar, loose)

	plan := types.NewSortPlan()
	plan.ExistingDirs["03-15-2023"] = true
	plan.Raw["03-15-2023"] = []string{sorted}
	plan.Raw["03-16-2023"] = []string{loose}
	plan.Sidecars["IMG001"] = sidecar

	actions, conflicts := organize.NewPlanner(nil).Plan(plan, root)

	require.Empty(t, conflicts)
	// IMG001 and its sidecar are already in place; only the loose file moves.
	require.Len(t, actions, 2)
	assert.Equal(t, types.EnsureDirectory, actions[0].Kind)
	assert.Equal(t, filepath.Join(root, "03-16-2023"), actions[0].Dest)
	assert.Equal(t, types.TransferFile, actions[1].Kind)
	assert.Equal(t, loose, actions[1].Src)
	assert.Equal(t, filepath.Join(root, "03-16-2023", "IMG002.CR2"), actions[1].Dest)
}

func TestPlanSidecarFollowsRawFile(t *testing.T) {
	root := t.TempDir()
	raw := filepath.Join(root, "loose", "IMG010.DNG")
	sidecar := filepath.Join(root, "loose", "IMG010.xmp")
	touch(t, raw, sidecar)

	plan := types.NewSortPlan()
	plan.Raw["04-01-2023"] = []string{raw}
	plan.Sidecars["IMG010"] = sidecar

	actions, conflicts := organize.NewPlanner(nil).Plan(plan, root)

	require.Empty(t, conflicts)
	require.Len(t, actions, 3)
	dateDir := filepath.Join(root, "04-01-2023")
	assert.Equal(t, types.Action{Kind: types.EnsureDirectory, Dest: dateDir}, actions[0])
	assert.Equal(t, types.Action{Kind: types.TransferFile, Src: raw, Dest: filepath.Join(dateDir, "IMG010.DNG")}, actions[1])
	assert.Equal(t, types.Action{Kind: types.TransferFile, Src: sidecar, Dest: filepath.Join(dateDir, "IMG010.xmp")}, actions[2])
}

func TestPlanPreviewsTargetJpgSubdir(t *testing.T) {
	root := t.TempDir()
	preview := filepath.Join(root, "IMG003.JPG")
	touch(t, preview)

	plan := types.NewSortPlan()
	plan.Previews["03-15-2023"] = []string{preview}

	actions, conflicts := organize.NewPlanner(nil).Plan(plan, root)

	require.Empty(t, conflicts)
	require.Len(t, actions, 2)
	jpgDir := filepath.Join(root, "03-15-2023", "jpg")
	assert.Equal(t, types.Action{Kind: types.EnsureDirectory, Dest: jpgDir}, actions[0])
	assert.Equal(t, types.Action{Kind: types.TransferFile, Src: preview, Dest: filepath.Join(jpgDir, "IMG003.JPG")}, actions[1])
}

func TestPlanSkipsEnsureWhenJpgDirExists(t *testing.T) {
	root := t.TempDir()
	jpgDir := filepath.Join(root, "03-15-2023", "jpg")
	require.NoError(t, os.MkdirAll(jpgDir, 0755))
	preview := filepath.Join(root, "IMG004.JPG")
	touch(t, preview)

	plan := types.NewSortPlan()
	plan.ExistingDirs["03-15-2023"] = true
	plan.Previews["03-15-2023"] = []string{preview}

	actions, _ := organize.NewPlanner(nil).Plan(plan, root)

	require.Len(t, actions, 1)
	assert.Equal(t, types.TransferFile, actions[0].Kind)
}

func TestPlanNeverOverwrites(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "loose", "IMG003.CR2")
	occupied := filepath.Join(root, "03-15-2023", "IMG003.CR2")
	touch(t, src, occupied)

	plan := types.NewSortPlan()
	plan.ExistingDirs["03-15-2023"] = true
	plan.Raw["03-15-2023"] = []string{src}

	actions, conflicts := organize.NewPlanner(nil).Plan(plan, root)

	assert.Empty(t, actions)
	require.Len(t, conflicts, 1)
	assert.Equal(t, src, conflicts[0].Src)
	assert.Equal(t, occupied, conflicts[0].Dest)

	// The source file is untouched.
	_, err := os.Stat(src)
	assert.NoError(t, err)
}

func TestPlanSameBasenameCollision(t *testing.T) {
	root := t.TempDir()
	// Two cards produce the same camera filename on the same day.
	first := filepath.Join(root, "cardA", "IMG100.CR2")
	second := filepath.Join(root, "cardB", "IMG100.CR2")
	touch(t, first, second)

	plan := types.NewSortPlan()
	plan.Raw["03-15-2023"] = []string{first, second}

	actions, conflicts := organize.NewPlanner(nil).Plan(plan, root)

	// Only one claimant gets the destination; the other is a conflict, not
	// a second transfer that would land on the same path.
	dest := filepath.Join(root, "03-15-2023", "IMG100.CR2")
	require.Len(t, actions, 2)
	assert.Equal(t, types.EnsureDirectory, actions[0].Kind)
	assert.Equal(t, types.Action{Kind: types.TransferFile, Src: first, Dest: dest}, actions[1])

	require.Len(t, conflicts, 1)
	assert.Equal(t, second, conflicts[0].Src)
	assert.Equal(t, dest, conflicts[0].Dest)
}

func TestPlanIsIdempotent(t *testing.T) {
	root := t.TempDir()
	raw := filepath.Join(root, "03-15-2023", "IMG001.CR2")
	sidecar := filepath.Join(root, "03-15-2023", "IMG001.xmp")
	preview := filepath.Join(root, "03-15-2023", "jpg", "IMG001.JPG")
	touch(t, raw, sidecar, preview)

	plan := types.NewSortPlan()
	plan.ExistingDirs["03-15-2023"] = true
	plan.Raw["03-15-2023"] = []string{raw}
	plan.Previews["03-15-2023"] = []string{preview}
	plan.Sidecars["IMG001"] = sidecar

	actions, conflicts := organize.NewPlanner(nil).Plan(plan, root)

	// Everything already matches its computed destination: zero transfers.
	assert.Empty(t, actions)
	assert.Empty(t, conflicts)
}
