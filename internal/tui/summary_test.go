package tui

import (
	"strings"
	"testing"

	"github.com/phravins/layergen/internal/scaffold"
)

func sampleReport() *scaffold.Report {
	return &scaffold.Report{
		Root: "/tmp/out/billing",
		Dirs: []scaffold.ItemResult{
			{Path: "src", Outcome: scaffold.OutcomeWritten},
		},
		Markers: []scaffold.ItemResult{
			{Path: "src/__init__.py", Outcome: scaffold.OutcomeSkipped},
		},
		Artifacts: []scaffold.ItemResult{
			{Path: "pyproject.toml", Outcome: scaffold.OutcomeWritten},
			{Path: "Makefile", Outcome: scaffold.OutcomeFailed, Error: "permission denied"},
		},
	}
}

func TestRenderSummaryListsEveryItem(t *testing.T) {
	out := RenderSummary(sampleReport(), false)

	for _, want := range []string{
		"/tmp/out/billing",
		"+ src",
		"- src/__init__.py (exists)",
		"+ pyproject.toml",
		"x Makefile: permission denied",
		"2 written, 1 skipped, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryPlainHasNoEscapes(t *testing.T) {
	out := RenderSummary(sampleReport(), false)
	if strings.Contains(out, "\x1b[") {
		t.Error("plain summary contains ANSI escape sequences")
	}
}
