// internal/skillet/snippet.go
package skillet

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/annabarone/skilletlib/internal/device"
	"github.com/expr-lang/expr"
)

// Snippet is an executable pairing of a resolved definition with the device
// session it will be applied through. Immutable once constructed.
type Snippet struct {
	def     SnippetDefinition
	session device.Session
}

func (s *Snippet) Name() string {
	return s.def.Name
}

func (s *Snippet) Cmd() string {
	return s.def.EffectiveCmd()
}

// Definition returns a copy of the underlying definition.
func (s *Snippet) Definition() SnippetDefinition {
	return s.def
}

// Session returns the device session this snippet is bound to.
func (s *Snippet) Session() device.Session {
	return s.session
}

// ShouldExecute evaluates the snippet's when expression against the
// execution context. A snippet with no when always executes.
func (s *Snippet) ShouldExecute(ec map[string]any) (bool, error) {
	if s.def.When == "" {
		return true, nil
	}
	prog, err := expr.Compile(s.def.When, expr.Env(ec), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("bad when expression for snippet %s: %w", s.def.Name, err)
	}
	out, err := expr.Run(prog, ec)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate when for snippet %s: %w", s.def.Name, err)
	}
	return out.(bool), nil
}

// Render expands variable references in the xpath and element against the
// execution context and returns the rendered definition.
func (s *Snippet) Render(ec map[string]any) (SnippetDefinition, error) {
	def := s.def
	var err error
	if def.Xpath, err = renderString(s.def.Name+"/xpath", s.def.Xpath, ec); err != nil {
		return def, err
	}
	if def.Element, err = renderString(s.def.Name+"/element", s.def.Element, ec); err != nil {
		return def, err
	}
	return def, nil
}

func renderString(name, text string, ec map[string]any) (string, error) {
	if text == "" {
		return "", nil
	}
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", fmt.Errorf("bad template in %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ec); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
