// internal/history/history.go
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Entry records one skillet execution.
type Entry struct {
	Skillet    string    `json:"skillet"`
	Mode       string    `json:"mode"` // "online" or "offline"
	Snippets   int       `json:"snippets"`
	Skipped    int       `json:"skipped"`
	ExecutedAt time.Time `json:"executed_at"`
}

type History struct {
	Entries []Entry `json:"entries"`
}

func New() *History {
	return &History{}
}

// DefaultPath is the per-user history file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skillet-history.json"
	}
	return filepath.Join(home, ".skillet", "history.json")
}

// Load reads the history file. A missing file yields an empty history.
func Load(path string) (*History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return New(), nil
	}
	h := New()
	if err := json.Unmarshal(data, h); err != nil {
		return nil, err
	}
	return h, nil
}

func Save(path string, h *History) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Record appends an entry stamped with the current time.
func (h *History) Record(skillet, mode string, snippets, skipped int) {
	h.Entries = append(h.Entries, Entry{
		Skillet:    skillet,
		Mode:       mode,
		Snippets:   snippets,
		Skipped:    skipped,
		ExecutedAt: time.Now(),
	})
}
