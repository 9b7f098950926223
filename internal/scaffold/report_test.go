package scaffold

import (
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v2"
)

func TestReportCounts(t *testing.T) {
	r := &Report{
		Dirs: []ItemResult{
			{Path: "src", Outcome: OutcomeWritten},
			{Path: "tests/api", Outcome: OutcomeSkipped},
		},
		Markers: []ItemResult{
			{Path: "src/__init__.py", Outcome: OutcomeWritten},
		},
		Artifacts: []ItemResult{
			{Path: "Makefile", Outcome: OutcomeFailed, Error: "disk full"},
		},
	}

	if got := r.Written(); got != 2 {
		t.Errorf("Written = %d, want 2", got)
	}
	if got := r.Skipped(); got != 1 {
		t.Errorf("Skipped = %d, want 1", got)
	}
	if got := r.Failed(); got != 1 {
		t.Errorf("Failed = %d, want 1", got)
	}
	if !r.HasFailures() {
		t.Error("HasFailures = false, want true")
	}
}

func TestReportYAML(t *testing.T) {
	r := &Report{
		Root: "/tmp/out",
		Artifacts: []ItemResult{
			{Path: "pyproject.toml", Outcome: OutcomeWritten},
			{Path: "Makefile", Outcome: OutcomeFailed, Error: "disk full"},
		},
	}

	out, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"root: /tmp/out",
		"path: pyproject.toml",
		"outcome: written",
		"outcome: failed",
		"error: disk full",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("yaml missing %q:\n%s", want, text)
		}
	}

	// Skipped/empty error fields stay out of the output.
	if strings.Contains(text, "error: \"\"") {
		t.Errorf("yaml contains empty error field:\n%s", text)
	}
}
