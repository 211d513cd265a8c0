package types

import "fmt"

// ActionKind discriminates placement actions.
type ActionKind int

const (
	// EnsureDirectory creates a target date directory before any transfer
	// into it.
	EnsureDirectory ActionKind = iota
	// TransferFile moves or copies a single file to its computed destination.
	TransferFile
)

// Action is one atomic placement step derived from a sort plan. Actions are
// ordered: a directory is always ensured before a transfer targets it.
type Action struct {
	Kind ActionKind
	// Src is the source path for TransferFile; empty for EnsureDirectory.
	Src string
	// Dest is the directory to create or the transfer destination.
	Dest string
}

// String renders the action for logs and dry-run output.
func (a Action) String() string {
	if a.Kind == EnsureDirectory {
		return fmt.Sprintf("mkdir %s", a.Dest)
	}
	return fmt.Sprintf("%s -> %s", a.Src, a.Dest)
}

// Outcome pairs an executed action with its result.
type Outcome struct {
	Action Action
	Err    error
}

// Conflict records a transfer the planner refused to emit because the
// destination already exists. The source file is left untouched.
type Conflict struct {
	Src  string
	Dest string
}
