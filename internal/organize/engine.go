package organize

import (
	"camroll/internal/errors"
	"camroll/pkg/types"
)

// Engine applies placement actions through a capability. Directory creation
// failures abort the run: every later transfer into that date group would
// fail unpredictably. A single failed transfer is reported and the batch
// continues.
type Engine struct {
	capability Capability
	reporter   types.Reporter
}

// NewEngine creates an executor over the given capability.
func NewEngine(capability Capability, reporter types.Reporter) *Engine {
	if reporter == nil {
		reporter = types.NopReporter
	}
	return &Engine{capability: capability, reporter: reporter}
}

// Execute applies actions in order and returns a per-action outcome list.
// The returned error is non-nil only for the fatal directory-creation case;
// outcomes up to and including the failed action are still returned.
func (e *Engine) Execute(actions []types.Action) ([]types.Outcome, error) {
	outcomes := make([]types.Outcome, 0, len(actions))

	for _, action := range actions {
		switch action.Kind {
		case types.EnsureDirectory:
			if err := e.capability.Mkdir(action.Dest); err != nil {
				ferr := errors.NewFileError("error creating directory", action.Dest, errors.DirectoryCreationFailure, err)
				e.reporter.Report(types.SeverityError, "%v", ferr)
				outcomes = append(outcomes, types.Outcome{Action: action, Err: ferr})
				return outcomes, ferr
			}
			outcomes = append(outcomes, types.Outcome{Action: action})

		case types.TransferFile:
			if err := e.capability.Transfer(action.Src, action.Dest); err != nil {
				ferr := errors.NewFileError("transfer failed", action.Src, errors.TransferFailure, err)
				e.reporter.Report(types.SeverityError, "%v", ferr)
				outcomes = append(outcomes, types.Outcome{Action: action, Err: ferr})
				continue
			}
			e.reporter.Report(types.SeverityDebug, "transferred %s -> %s", action.Src, action.Dest)
			outcomes = append(outcomes, types.Outcome{Action: action})
		}
	}

	return outcomes, nil
}
