// Package scaffold turns the template catalog into filesystem state under a
// single destination root. One synchronous pass: root guard, then declared
// directories with their markers, then artifacts, each under the idempotent
// write policy. Per-item I/O errors are recorded and the run keeps going;
// only the root guard and parameter validation abort with nothing written.
//
// Concurrent runs against the same root are undefined behavior; the engine
// assumes exclusive access for the duration of Run.
package scaffold

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/phravins/layergen/internal/fileops"
	"github.com/phravins/layergen/internal/templates"
)

// Params configures a single scaffold run. Built once from caller input and
// never mutated.
type Params struct {
	// Root is the destination directory the project is generated into.
	Root string
	// ProjectName parameterizes the rendered templates.
	ProjectName string
	// Force rewrites existing files instead of skipping them and disables
	// the non-empty destination guard.
	Force bool
}

// Validate rejects malformed params before any I/O happens.
func (p Params) Validate() error {
	if strings.TrimSpace(p.ProjectName) == "" {
		return ErrInvalidProjectName
	}
	if strings.TrimSpace(p.Root) == "" {
		return ErrInvalidRoot
	}
	return nil
}

// Run executes one scaffold pass. The returned error is non-nil only for
// fatal conditions (invalid params, root guard, unreadable destination);
// per-item failures land in the report instead.
func Run(p Params) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	empty, err := fileops.IsDirEmpty(p.Root)
	if err != nil {
		return nil, fmt.Errorf("checking destination %s: %w", p.Root, err)
	}
	if !empty && !p.Force && !isScaffolded(p.Root) {
		return nil, fmt.Errorf("%s: %w", p.Root, ErrDestinationNotEmpty)
	}

	report := &Report{Root: p.Root}
	rp := templates.Params{ProjectName: p.ProjectName}

	marker := []byte(templates.MarkerContent)
	for _, dir := range templates.Dirs {
		created, err := fileops.EnsureDir(filepath.Join(p.Root, filepath.FromSlash(dir)))
		if err != nil {
			report.Dirs = append(report.Dirs, ItemResult{Path: dir, Outcome: OutcomeFailed, Error: err.Error()})
			continue
		}
		report.Dirs = append(report.Dirs, ItemResult{Path: dir, Outcome: dirOutcome(created)})

		// The marker follows the per-file write policy on its own: an
		// existing marker survives a re-run unless force is set, even
		// when the directory itself already existed.
		mrel := path.Join(dir, templates.MarkerName)
		report.Markers = append(report.Markers, writeItem(p.Root, mrel, marker, p.Force))
	}

	for _, a := range templates.Registry {
		if !filepath.IsLocal(filepath.FromSlash(a.Path)) {
			report.Artifacts = append(report.Artifacts, ItemResult{
				Path:    a.Path,
				Outcome: OutcomeFailed,
				Error:   "path escapes destination root",
			})
			continue
		}
		report.Artifacts = append(report.Artifacts, writeItem(p.Root, a.Path, []byte(a.Render(rp)), p.Force))
	}

	return report, nil
}

// writeItem applies the idempotent write policy to one file and records the
// outcome under its root-relative path. Parent directories are created on
// demand, so artifacts outside the declared directory set still land.
func writeItem(root, rel string, data []byte, force bool) ItemResult {
	wrote, err := fileops.WriteFile(filepath.Join(root, filepath.FromSlash(rel)), data, force)
	switch {
	case err != nil:
		return ItemResult{Path: rel, Outcome: OutcomeFailed, Error: err.Error()}
	case wrote:
		return ItemResult{Path: rel, Outcome: OutcomeWritten}
	default:
		return ItemResult{Path: rel, Outcome: OutcomeSkipped}
	}
}

// isScaffolded reports whether root already carries this tool's output. A
// previously generated (or interrupted) tree may be re-entered without force:
// the per-file skip policy makes the re-run a safe no-op or resume. Only
// destinations with unrelated content trip the guard. The first thing a run
// writes is the src marker, so its presence is the recognition signal.
func isScaffolded(root string) bool {
	_, err := os.Stat(filepath.Join(root, "src", templates.MarkerName))
	return err == nil
}

func dirOutcome(created bool) Outcome {
	if created {
		return OutcomeWritten
	}
	return OutcomeSkipped
}
