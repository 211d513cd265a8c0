package main

import (
	"fmt"

	"camroll/internal/log"
	"camroll/internal/organize"
	"camroll/internal/scan"
	"camroll/pkg/types"
)

// runPipeline scans srcRoot, plans placement into outputRoot, and executes
// the actions through capability. The full plan is built before the first action
// runs, so the read and write phases never overlap.
func runPipeline(srcRoot, outputRoot string, capability organize.Capability) error {
	reporter := log.NewReporter()

	scanner, err := scan.New(cfg, reporter)
	if err != nil {
		return err
	}

	plan, err := scanner.Scan(srcRoot)
	if err != nil {
		return err
	}
	log.Debug("scanned %s: %d files across %d raw groups, %d preview groups",
		srcRoot, plan.FileCount(), len(plan.Raw), len(plan.Previews))

	actions, conflicts := organize.NewPlanner(reporter).Plan(plan, outputRoot)

	if cfg.Settings.DryRun {
		fmt.Print(renderActions(actions))
	}

	outcomes, execErr := organize.NewEngine(capability, reporter).Execute(actions)

	fmt.Print(renderSummary(outcomes, conflicts, plan.SkippedFiles))
	if execErr != nil {
		// Directory creation failed; the rest of that run was abandoned.
		return execErr
	}
	return nil
}

// capabilityFor picks the transfer/mkdir binding: log-only under dry run,
// otherwise the requested mode.
func capabilityFor(mode string) organize.Capability {
	if cfg.Settings.DryRun {
		return organize.LogOnly{Reporter: log.NewReporter()}
	}
	if mode == "copy" {
		return organize.Copy{}
	}
	return organize.Move{}
}

// targetDirectory resolves the positional directory argument, falling back
// to the configured default.
func targetDirectory(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg != nil && cfg.Directories.Default != "" {
		return cfg.Directories.Default, nil
	}
	return "", fmt.Errorf("no directory given and no default configured")
}

// transferredCount tallies successful transfers for the run summary.
func transferredCount(outcomes []types.Outcome) (transferred, failed int) {
	for _, o := range outcomes {
		if o.Action.Kind != types.TransferFile {
			continue
		}
		if o.Err != nil {
			failed++
		} else {
			transferred++
		}
	}
	return transferred, failed
}
