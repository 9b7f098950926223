// Package templates owns the catalog of generated files: every artifact the
// scaffolder produces, keyed by a stable id, plus the declared directory set.
// The catalog is pure — rendering does no I/O and reads no ambient state, so
// two renders with the same params are byte-identical.
package templates

import (
	"bytes"
	"text/template"
)

// Params is the full set of render inputs for a scaffold run.
type Params struct {
	ProjectName string
}

// RenderFunc produces the text body of one artifact.
type RenderFunc func(Params) string

// Artifact is a single generated file: a stable identity, a path relative to
// the project root, and its content producer.
type Artifact struct {
	ID     string
	Path   string
	Render RenderFunc
}

// Rendered is a catalog entry resolved against concrete params.
type Rendered struct {
	Path    string
	Content string
}

// static wraps a fixed payload as a RenderFunc.
func static(text string) RenderFunc {
	return func(Params) string {
		return text
	}
}

// fromTemplate wraps a text/template payload as a RenderFunc.
func fromTemplate(id, text string) RenderFunc {
	tpl := template.Must(template.New(id).Parse(text))
	return func(p Params) string {
		var buf bytes.Buffer
		// No template funcs are registered, so Execute cannot fail on Params.
		if err := tpl.Execute(&buf, p); err != nil {
			panic(err)
		}
		return buf.String()
	}
}
