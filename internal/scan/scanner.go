// Package scan walks a camera roll and builds the sort plan the placement
// planner consumes.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"camroll/internal/classify"
	"camroll/internal/config"
	"camroll/internal/errors"
	"camroll/internal/exif"
	"camroll/pkg/types"
)

// TimestampFunc reads a capture timestamp from an image file. The production
// binding is exif.ReadCaptureTimestamp; tests inject their own.
type TimestampFunc func(path string) (time.Time, error)

// Scanner builds sort plans from a source tree. Per-file problems are
// reported and recorded in the plan; only failures to read the tree itself
// abort a scan.
type Scanner struct {
	classifier    *classify.Classifier
	readTimestamp TimestampFunc
	exclude       []glob.Glob
	reporter      types.Reporter
}

// New creates a scanner with the EXIF-backed timestamp reader.
func New(cfg *config.Config, reporter types.Reporter) (*Scanner, error) {
	return NewWithTimestampFunc(cfg, exif.ReadCaptureTimestamp, reporter)
}

// NewWithTimestampFunc creates a scanner with an injected timestamp
// capability.
func NewWithTimestampFunc(cfg *config.Config, fn TimestampFunc, reporter types.Reporter) (*Scanner, error) {
	if reporter == nil {
		reporter = types.NopReporter
	}

	excludes := make([]glob.Glob, 0, len(cfg.Library.Exclude))
	for _, pattern := range cfg.Library.Exclude {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.NewConfigError("invalid exclude pattern", pattern, err)
		}
		excludes = append(excludes, g)
	}

	return &Scanner{
		classifier:    classify.NewWithConfig(cfg),
		readTimestamp: fn,
		exclude:       excludes,
		reporter:      reporter,
	}, nil
}

// Scan walks root and returns the populated sort plan. Subdirectories of
// root named as date keys count as already sorted; any other subtree is
// descended only when its path contains one of those date-key names. The
// filter is deliberately narrow: an unrelated tree dropped into the roll
// stays untouched rather than getting swept into date directories.
func (s *Scanner) Scan(root string) (*types.SortPlan, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.NewFileError("cannot access source directory", root, errors.FileNotFound, err)
	}
	if !info.IsDir() {
		return nil, errors.NewFileError("source path is not a directory", root, errors.FileNotFound, nil)
	}

	plan := types.NewSortPlan()

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source directory %s", root)
	}
	for _, entry := range entries {
		if entry.IsDir() && types.IsDateKey(entry.Name()) {
			plan.ExistingDirs[entry.Name()] = true
		}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.reporter.Report(types.SeverityWarn, "cannot read %s: %v", path, walkErr)
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if s.excluded(d.Name()) {
				s.reporter.Report(types.SeverityDebug, "excluding directory: %s", path)
				return filepath.SkipDir
			}
			if !containsDateKey(path, plan.ExistingDirs) {
				s.reporter.Report(types.SeverityInfo, "skipping directory: %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		s.scanFile(path, plan)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking source directory %s", root)
	}

	return plan, nil
}

// scanFile classifies one file and folds it into the plan.
func (s *Scanner) scanFile(path string, plan *types.SortPlan) {
	switch s.classifier.Classify(path) {
	case types.RoleSidecar:
		// Sidecars carry no capture metadata of their own; they follow the
		// raw file sharing their base name.
		plan.Sidecars[classify.BaseName(path)] = path

	case types.RoleRaw:
		if key, ok := s.dateKeyFor(path, plan); ok {
			plan.Raw[key] = append(plan.Raw[key], path)
		}

	case types.RolePreview:
		if key, ok := s.dateKeyFor(path, plan); ok {
			plan.Previews[key] = append(plan.Previews[key], path)
		}

	default:
		err := errors.NewFileError("unrecognized file extension", path, errors.UnrecognizedExtension, nil)
		s.reporter.Report(types.SeverityError, "%v", err)
		plan.SkippedFiles = append(plan.SkippedFiles, types.Skipped{Path: path, Err: err})
	}
}

// dateKeyFor reads the capture timestamp for an image. Failures exclude the
// file from the plan; the scan continues.
func (s *Scanner) dateKeyFor(path string, plan *types.SortPlan) (string, bool) {
	ts, err := s.readTimestamp(path)
	if err != nil {
		s.reporter.Report(types.SeverityError, "%v", err)
		plan.SkippedFiles = append(plan.SkippedFiles, types.Skipped{Path: path, Err: err})
		return "", false
	}
	return types.FormatDateKey(ts), true
}

func (s *Scanner) excluded(name string) bool {
	for _, g := range s.exclude {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// containsDateKey reports whether any existing date-key directory name
// appears in path.
func containsDateKey(path string, existing map[string]bool) bool {
	for key := range existing {
		if strings.Contains(path, key) {
			return true
		}
	}
	return false
}
