package scaffold

// Outcome is the per-item result of one directory, marker, or artifact.
type Outcome string

const (
	// OutcomeWritten means the item was created or rewritten this run.
	OutcomeWritten Outcome = "written"
	// OutcomeSkipped means the item already existed and force was not set.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the item hit an I/O error; the run continued.
	OutcomeFailed Outcome = "failed"
)

// ItemResult records what happened to a single path, relative to the root.
type ItemResult struct {
	Path    string  `yaml:"path"`
	Outcome Outcome `yaml:"outcome"`
	Error   string  `yaml:"error,omitempty"`
}

// Report aggregates everything a run did. Markers are tracked separately from
// their directories because marker creation follows the per-file write policy,
// not the directory creation status.
type Report struct {
	Root      string       `yaml:"root"`
	Dirs      []ItemResult `yaml:"directories"`
	Markers   []ItemResult `yaml:"markers"`
	Artifacts []ItemResult `yaml:"artifacts"`
}

func (r *Report) all() []ItemResult {
	out := make([]ItemResult, 0, len(r.Dirs)+len(r.Markers)+len(r.Artifacts))
	out = append(out, r.Dirs...)
	out = append(out, r.Markers...)
	out = append(out, r.Artifacts...)
	return out
}

func (r *Report) count(o Outcome) int {
	n := 0
	for _, it := range r.all() {
		if it.Outcome == o {
			n++
		}
	}
	return n
}

// Written returns the number of items created or rewritten.
func (r *Report) Written() int { return r.count(OutcomeWritten) }

// Skipped returns the number of items left untouched.
func (r *Report) Skipped() int { return r.count(OutcomeSkipped) }

// Failed returns the number of items that hit an error.
func (r *Report) Failed() int { return r.count(OutcomeFailed) }

// HasFailures reports whether any item failed; it decides the exit code.
func (r *Report) HasFailures() bool { return r.Failed() > 0 }
