// Package organize turns a sort plan into placement actions and applies them
// through an injected transfer capability.
package organize

import (
	"os"
	"path/filepath"
	"sort"

	"camroll/internal/classify"
	"camroll/pkg/types"
)

// jpgSubdir is the preview subdirectory inside each date directory.
const jpgSubdir = "jpg"

// Planner computes an ordered action list from a sort plan. It consults the
// filesystem read-only, to detect placement conflicts; it never mutates
// anything.
type Planner struct {
	reporter types.Reporter
}

// NewPlanner creates a planner reporting through the given sink.
func NewPlanner(reporter types.Reporter) *Planner {
	if reporter == nil {
		reporter = types.NopReporter
	}
	return &Planner{reporter: reporter}
}

// Plan produces the placement actions that sort plan into outputRoot.
// Directories are always ensured before transfers into them. A transfer whose
// destination already exists (and differs from its source) is withheld and
// returned as a conflict instead, so no run ever overwrites a file.
func (p *Planner) Plan(plan *types.SortPlan, outputRoot string) ([]types.Action, []types.Conflict) {
	var actions []types.Action
	var conflicts []types.Conflict
	claimed := make(map[string]bool)

	// Raw pass: date directories at the output root, sidecars alongside
	// their raw files.
	for _, key := range sortedKeys(plan.Raw) {
		dir := filepath.Join(outputRoot, key)
		if !plan.ExistingDirs[key] {
			actions = append(actions, types.Action{Kind: types.EnsureDirectory, Dest: dir})
		}

		for _, file := range plan.Raw[key] {
			actions, conflicts = p.placeFile(actions, conflicts, claimed, file, dir)

			if sidecar, ok := plan.Sidecars[classify.BaseName(file)]; ok {
				actions, conflicts = p.placeFile(actions, conflicts, claimed, sidecar, dir)
			}
		}
	}

	// Preview pass: jpg subdirectory below each date directory.
	for _, key := range sortedKeys(plan.Previews) {
		dir := filepath.Join(outputRoot, key, jpgSubdir)
		if _, err := os.Stat(dir); err != nil {
			actions = append(actions, types.Action{Kind: types.EnsureDirectory, Dest: dir})
		}

		for _, file := range plan.Previews[key] {
			actions, conflicts = p.placeFile(actions, conflicts, claimed, file, dir)
		}
	}

	return actions, conflicts
}

// placeFile appends a transfer of file into dir, unless the file is already
// in place or the destination is occupied. A destination counts as occupied
// both when it exists on disk and when an earlier action in this plan claimed
// it, so two sources sharing a basename under one date key can never stack on
// the same path.
func (p *Planner) placeFile(actions []types.Action, conflicts []types.Conflict, claimed map[string]bool, file, dir string) ([]types.Action, []types.Conflict) {
	dest := filepath.Join(dir, filepath.Base(file))

	if filepath.Clean(file) == dest {
		// Already correctly placed: a no-op, not an error.
		p.reporter.Report(types.SeverityDebug, "already in place: %s", file)
		return actions, conflicts
	}

	if claimed[dest] {
		p.reporter.Report(types.SeverityError, "destination already claimed, from %s to %s", file, dest)
		return actions, append(conflicts, types.Conflict{Src: file, Dest: dest})
	}

	if _, err := os.Stat(dest); err == nil {
		p.reporter.Report(types.SeverityError, "file already exists, from %s to %s", file, dest)
		return actions, append(conflicts, types.Conflict{Src: file, Dest: dest})
	}

	claimed[dest] = true
	return append(actions, types.Action{Kind: types.TransferFile, Src: file, Dest: dest}), conflicts
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
