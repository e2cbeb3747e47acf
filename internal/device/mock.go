// internal/device/mock.go
package device

import (
	"context"
	"fmt"
)

// MockSession records every call made against it so tests can assert on the
// exact interaction, including that no configuration fetch happened.
type MockSession struct {
	Calls     []string
	Live      bool
	Config    string
	ConfigErr error
}

func NewMockSession() *MockSession {
	return &MockSession{}
}

func (m *MockSession) Connected() bool {
	m.Calls = append(m.Calls, "Connected")
	return m.Live
}

func (m *MockSession) Configuration(_ context.Context) (string, error) {
	m.Calls = append(m.Calls, "Configuration")
	if m.ConfigErr != nil {
		return "", m.ConfigErr
	}
	if !m.Live {
		return "", fmt.Errorf("not connected")
	}
	return m.Config, nil
}

// FetchCount reports how many configuration fetches were attempted.
func (m *MockSession) FetchCount() int {
	n := 0
	for _, c := range m.Calls {
		if c == "Configuration" {
			n++
		}
	}
	return n
}
