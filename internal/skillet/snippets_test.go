// internal/skillet/snippets_test.go
package skillet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/annabarone/skilletlib/internal/device"
)

func skilletWithSnippets(t *testing.T, dir string, defs []SnippetDefinition) *Skillet {
	t.Helper()
	md := &Metadata{Name: "test-skillet", Type: "panos", Snippets: defs}
	return New(md, dir, WithSession(device.NewMockSession()))
}

func TestLoadElement_InlineIsNoOp(t *testing.T) {
	s := skilletWithSnippets(t, t.TempDir(), []SnippetDefinition{
		{Name: "inline", Element: "<entry name='one'/>", File: "ignored.xml"},
	})

	snippets, err := s.Snippets()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := snippets[0].Definition()
	if def.Element != "<entry name='one'/>" {
		t.Fatalf("expected inline element unchanged, got %q", def.Element)
	}
	if def.File != "ignored.xml" {
		t.Fatal("expected definition otherwise untouched")
	}
}

func TestLoadElement_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "<address>\n  <entry name=\"web\"/>\n</address>\n"
	if err := os.WriteFile(filepath.Join(dir, "address.xml"), []byte(content), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := skilletWithSnippets(t, dir, []SnippetDefinition{
		{Name: "address", File: "address.xml"},
	})

	snippets, err := s.Snippets()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := snippets[0].Definition().Element; got != content {
		t.Fatalf("expected exact file content, got %q", got)
	}
}

func TestLoadElement_MissingFileIsSoft(t *testing.T) {
	s := skilletWithSnippets(t, t.TempDir(), []SnippetDefinition{
		{Name: "gone", File: "does-not-exist.xml"},
	})

	snippets, err := s.Snippets()
	if err != nil {
		t.Fatalf("expected soft failure, got error: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("expected 1 snippet, got %d", len(snippets))
	}
	if snippets[0].Definition().Element != "" {
		t.Fatal("expected element to stay empty for missing file")
	}
}

func TestLoadElement_MissingFileKeyIsHard(t *testing.T) {
	s := skilletWithSnippets(t, t.TempDir(), []SnippetDefinition{
		{Name: "broken"},
	})

	_, err := s.Snippets()
	if !errors.Is(err, ErrLoader) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestSnippets_NonSetCmdPassesThrough(t *testing.T) {
	// An op snippet with neither element nor file would be a hard error for
	// cmd "set"; it must pass through untouched instead.
	s := skilletWithSnippets(t, t.TempDir(), []SnippetDefinition{
		{Name: "check", Cmd: "op", File: "does-not-exist.xml"},
	})

	snippets, err := s.Snippets()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snippets[0].Definition().Element != "" {
		t.Fatal("expected op snippet to skip content resolution")
	}
	if snippets[0].Cmd() != "op" {
		t.Fatalf("expected cmd op, got %s", snippets[0].Cmd())
	}
}

func TestSnippets_OrderPreserved(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "two.xml"), []byte("<two/>"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := skilletWithSnippets(t, dir, []SnippetDefinition{
		{Name: "one", Element: "<one/>"},
		{Name: "two", File: "two.xml"},
		{Name: "three", File: "missing.xml"}, // soft-fails, must not be dropped
		{Name: "four", Cmd: "op"},
	})

	snippets, err := s.Snippets()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snippets) != 4 {
		t.Fatalf("expected 4 snippets, got %d", len(snippets))
	}
	want := []string{"one", "two", "three", "four"}
	for i, name := range want {
		if snippets[i].Name() != name {
			t.Fatalf("expected snippet %d to be %s, got %s", i, name, snippets[i].Name())
		}
	}
	if snippets[1].Definition().Element != "<two/>" {
		t.Fatal("expected file-backed element to be loaded")
	}
	if snippets[2].Definition().Element != "" {
		t.Fatal("expected soft-failed snippet to stay empty")
	}
}

func TestSnippets_BoundToSession(t *testing.T) {
	mock := device.NewMockSession()
	md := &Metadata{Name: "bind", Snippets: []SnippetDefinition{{Name: "a", Element: "<a/>"}}}
	s := New(md, t.TempDir(), WithSession(mock))

	snippets, err := s.Snippets()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snippets[0].Session() != device.Session(mock) {
		t.Fatal("expected snippet bound to the skillet's session")
	}
}
