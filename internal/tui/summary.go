package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phravins/layergen/internal/scaffold"
)

// RenderSummary formats a run report as the human-readable summary printed
// after a scaffold run: every directory, marker, and artifact with its
// outcome, then a totals line. With color=false all styling is dropped.
func RenderSummary(r *scaffold.Report, color bool) string {
	var b strings.Builder

	b.WriteString(styled(color, titleStyle, "Project root: "+r.Root) + "\n\n")

	writeSection(&b, color, "directories", r.Dirs)
	writeSection(&b, color, "markers", r.Markers)
	writeSection(&b, color, "artifacts", r.Artifacts)

	totals := fmt.Sprintf("%d written, %d skipped, %d failed",
		r.Written(), r.Skipped(), r.Failed())
	if r.HasFailures() {
		b.WriteString(styled(color, failedStyle, totals) + "\n")
	} else {
		b.WriteString(styled(color, titleStyle, totals) + "\n")
	}
	return b.String()
}

func writeSection(b *strings.Builder, color bool, name string, items []scaffold.ItemResult) {
	if len(items) == 0 {
		return
	}
	b.WriteString(styled(color, subtleStyle, name) + "\n")
	for _, it := range items {
		b.WriteString("  " + renderItem(it, color) + "\n")
	}
	b.WriteString("\n")
}

func renderItem(it scaffold.ItemResult, color bool) string {
	switch it.Outcome {
	case scaffold.OutcomeWritten:
		return styled(color, writtenStyle, "+ "+it.Path)
	case scaffold.OutcomeFailed:
		return styled(color, failedStyle, "x "+it.Path+": "+it.Error)
	default:
		return styled(color, skippedStyle, "- "+it.Path+" (exists)")
	}
}

func styled(color bool, s lipgloss.Style, text string) string {
	if !color {
		return text
	}
	return s.Render(text)
}
