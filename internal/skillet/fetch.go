// internal/skillet/fetch.go
package skillet

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultRepoURL = "https://raw.githubusercontent.com/annabarone/skillet-repo/main/skillets"

func BuildSkilletURL(name string, baseURL string) string {
	base := defaultRepoURL
	if baseURL != "" {
		base = strings.TrimRight(baseURL, "/")
	}
	return fmt.Sprintf("%s/%s.skillet.yaml", base, name)
}

func BuildIndexURL(baseURL string) string {
	base := defaultRepoURL
	if baseURL != "" {
		base = strings.TrimRight(baseURL, "/")
	}
	return fmt.Sprintf("%s/index.yaml", base)
}

func getRepoURL() string {
	if url := os.Getenv("SKILLET_REPO_URL"); url != "" {
		return url
	}
	return ""
}

// Fetch downloads and validates a named skillet's metadata from the
// configured skillet repository.
func Fetch(name string) (*Metadata, error) {
	url := BuildSkilletURL(name, getRepoURL())
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skillet %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("skillet %s not found (HTTP %d)", name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read skillet %s: %w", name, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid skillet %s: %w", name, err)
	}
	return m, nil
}

type IndexEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
}

// FetchIndex downloads the repository's skillet index.
func FetchIndex() ([]IndexEntry, error) {
	url := BuildIndexURL(getRepoURL())
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skillet index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("skillet index not found (HTTP %d)", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read skillet index: %w", err)
	}

	var index []IndexEntry
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("invalid skillet index: %w", err)
	}
	return index, nil
}
