package types

// Skipped records a file excluded from the sort plan and why.
type Skipped struct {
	Path string
	Err  error
}

// SortPlan is the result of scanning a source tree: every file grouped by
// role and date key, sidecars indexed by base filename, and the date
// directories already present at the root. A plan is built once per run and
// not mutated afterwards.
type SortPlan struct {
	// ExistingDirs holds date keys already present as subdirectories of the
	// scanned root.
	ExistingDirs map[string]bool
	// Raw maps a date key to the raw image paths captured on that date.
	Raw map[string][]string
	// Previews maps a date key to the preview image paths for that date.
	Previews map[string][]string
	// Sidecars maps a base filename (extension stripped) to its sidecar path.
	Sidecars map[string]string
	// SkippedFiles lists files excluded from the plan, with reasons, so the
	// caller can surface them for manual resolution.
	SkippedFiles []Skipped
}

// NewSortPlan returns an empty plan with all maps initialised.
func NewSortPlan() *SortPlan {
	return &SortPlan{
		ExistingDirs: make(map[string]bool),
		Raw:          make(map[string][]string),
		Previews:     make(map[string][]string),
		Sidecars:     make(map[string]string),
	}
}

// FileCount returns the number of raw and preview files in the plan.
func (p *SortPlan) FileCount() int {
	n := 0
	for _, files := range p.Raw {
		n += len(files)
	}
	for _, files := range p.Previews {
		n += len(files)
	}
	return n
}
