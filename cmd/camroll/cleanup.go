package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"camroll/internal/classify"
	"camroll/internal/log"
	"camroll/internal/organize"
	"camroll/pkg/types"
)

// NewCleanupCmd creates the cleanup command
func NewCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup [directory]",
		Short: "Remove preview JPEGs whose raw file was deleted",
		Long: `Prune orphaned previews: files in a date directory's jpg subdirectory
with no raw file of the same base name. Pass either the camera roll root
(every date directory is pruned) or a single date directory. Use --dry-run
to list candidates without deleting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDirectory(args)
			if err != nil {
				return err
			}

			dateDirs, err := cleanupTargets(dir)
			if err != nil {
				return err
			}

			classifier := classify.NewWithConfig(cfg)
			reporter := log.NewReporter()
			var orphans []string
			for _, dateDir := range dateDirs {
				found, err := organize.Cleanup(dateDir, cfg.Settings.DryRun, classifier, reporter)
				if err != nil {
					return err
				}
				orphans = append(orphans, found...)
			}

			fmt.Print(renderOrphans(orphans, cfg.Settings.DryRun))
			return nil
		},
	}
}

// cleanupTargets expands dir into date directories: itself when it is one,
// otherwise its date-named children.
func cleanupTargets(dir string) ([]string, error) {
	if types.IsDateKey(filepath.Base(filepath.Clean(dir))) {
		return []string{dir}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", dir, err)
	}

	var targets []string
	for _, entry := range entries {
		if entry.IsDir() && types.IsDateKey(entry.Name()) {
			targets = append(targets, filepath.Join(dir, entry.Name()))
		}
	}
	return targets, nil
}
