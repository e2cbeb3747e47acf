// internal/skillet/snippet_test.go
package skillet

import (
	"testing"
)

func TestShouldExecute_NoWhen(t *testing.T) {
	snip := &Snippet{def: SnippetDefinition{Name: "always"}}
	run, err := snip.ShouldExecute(map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !run {
		t.Fatal("expected snippet without when to always execute")
	}
}

func TestShouldExecute_When(t *testing.T) {
	snip := &Snippet{def: SnippetDefinition{Name: "cond", When: `zone == "trust"`}}

	run, err := snip.ShouldExecute(map[string]any{"zone": "trust"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !run {
		t.Fatal("expected when to hold for zone trust")
	}

	run, err = snip.ShouldExecute(map[string]any{"zone": "untrust"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run {
		t.Fatal("expected when to fail for zone untrust")
	}
}

func TestShouldExecute_BadExpression(t *testing.T) {
	snip := &Snippet{def: SnippetDefinition{Name: "bad", When: `zone ==`}}
	_, err := snip.ShouldExecute(map[string]any{"zone": "trust"})
	if err == nil {
		t.Fatal("expected error for malformed when expression")
	}
}

func TestRender(t *testing.T) {
	snip := &Snippet{def: SnippetDefinition{
		Name:    "tmpl",
		Xpath:   "/config/devices/entry/vsys/entry[@name='{{ .vsys }}']",
		Element: "<entry name='{{ .name }}'><ip>{{ .ip }}</ip></entry>",
	}}

	rendered, err := snip.Render(map[string]any{
		"vsys": "vsys1",
		"name": "web",
		"ip":   "10.0.0.5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendered.Xpath != "/config/devices/entry/vsys/entry[@name='vsys1']" {
		t.Fatalf("unexpected xpath: %s", rendered.Xpath)
	}
	if rendered.Element != "<entry name='web'><ip>10.0.0.5</ip></entry>" {
		t.Fatalf("unexpected element: %s", rendered.Element)
	}

	// the snippet itself stays untouched
	if snip.Definition().Element != "<entry name='{{ .name }}'><ip>{{ .ip }}</ip></entry>" {
		t.Fatal("expected underlying definition unchanged by Render")
	}
}

func TestRender_BadTemplate(t *testing.T) {
	snip := &Snippet{def: SnippetDefinition{Name: "bad", Element: "{{ .name"}}
	_, err := snip.Render(map[string]any{"name": "x"})
	if err == nil {
		t.Fatal("expected error for malformed template")
	}
}
