package organize

import (
	"os"
	"path/filepath"
	"sort"

	"camroll/internal/classify"
	"camroll/internal/errors"
	"camroll/pkg/types"
)

// Cleanup prunes orphaned previews from one date directory: files in its jpg
// subdirectory whose base name has no raw counterpart in the directory
// itself. When dryRun is set the orphans are only listed. The returned slice
// holds the orphan paths either way.
func Cleanup(dateDir string, dryRun bool, classifier *classify.Classifier, reporter types.Reporter) ([]string, error) {
	if reporter == nil {
		reporter = types.NopReporter
	}

	entries, err := os.ReadDir(dateDir)
	if err != nil {
		return nil, errors.NewFileError("cannot read date directory", dateDir, errors.FileNotFound, err)
	}

	// Base names of every raw file present in the date directory.
	rawNames := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if classifier.Classify(entry.Name()) == types.RoleRaw {
			rawNames[classify.BaseName(entry.Name())] = true
		}
	}

	jpgDir := filepath.Join(dateDir, jpgSubdir)
	previews, err := os.ReadDir(jpgDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No previews, nothing to prune.
		}
		return nil, errors.NewFileError("cannot read preview directory", jpgDir, errors.FileNotFound, err)
	}

	var orphans []string
	for _, entry := range previews {
		if entry.IsDir() || classifier.Classify(entry.Name()) != types.RolePreview {
			continue
		}
		if !rawNames[classify.BaseName(entry.Name())] {
			orphans = append(orphans, filepath.Join(jpgDir, entry.Name()))
		}
	}
	sort.Strings(orphans)

	for _, orphan := range orphans {
		if dryRun {
			reporter.Report(types.SeverityInfo, "orphan preview: %s", orphan)
			continue
		}
		if err := os.Remove(orphan); err != nil {
			reporter.Report(types.SeverityError, "cannot remove %s: %v", orphan, err)
			continue
		}
		reporter.Report(types.SeverityInfo, "removed orphan preview: %s", orphan)
	}

	return orphans, nil
}
