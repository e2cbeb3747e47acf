// internal/device/device_test.go
package device

import (
	"context"
	"strings"
	"testing"
)

func TestOfflineSession(t *testing.T) {
	s := NewOfflineSession()
	if s.Connected() {
		t.Fatal("expected offline session to never report connected")
	}
	if _, err := s.Configuration(context.Background()); err == nil {
		t.Fatal("expected error fetching configuration from offline session")
	}
}

func TestMockSession_Records(t *testing.T) {
	m := NewMockSession()
	m.Live = true
	m.Config = "<config/>"

	if !m.Connected() {
		t.Fatal("expected connected")
	}
	cfg, err := m.Configuration(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != "<config/>" {
		t.Fatalf("expected '<config/>', got %q", cfg)
	}
	if len(m.Calls) != 2 || m.Calls[0] != "Connected" || m.Calls[1] != "Configuration" {
		t.Fatalf("unexpected calls: %v", m.Calls)
	}
	if m.FetchCount() != 1 {
		t.Fatalf("expected 1 fetch, got %d", m.FetchCount())
	}
}

func TestMockSession_NotLive(t *testing.T) {
	m := NewMockSession()
	if _, err := m.Configuration(context.Background()); err == nil {
		t.Fatal("expected error for disconnected mock")
	}
}

func TestUnifiedDiff(t *testing.T) {
	before := "<config>\n  <old/>\n</config>\n"
	after := "<config>\n  <new/>\n</config>\n"

	d, err := UnifiedDiff(before, after)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(d, "-  <old/>") {
		t.Fatalf("expected removal line in diff, got %q", d)
	}
	if !strings.Contains(d, "+  <new/>") {
		t.Fatalf("expected addition line in diff, got %q", d)
	}
}

func TestUnifiedDiff_Identical(t *testing.T) {
	d, err := UnifiedDiff("<config/>\n", "<config/>\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != "" {
		t.Fatalf("expected empty diff, got %q", d)
	}
}
