// internal/skillet/metadata.go
package skillet

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Metadata is the parsed contents of a .skillet.yaml file.
type Metadata struct {
	Name        string              `yaml:"name"`
	Label       string              `yaml:"label"`
	Description string              `yaml:"description"`
	Type        string              `yaml:"type"`
	Variables   []Variable          `yaml:"variables"`
	Snippets    []SnippetDefinition `yaml:"snippets"`
}

// Variable is a user-facing input declared by a skillet. Secret variables
// are prompted with hidden input.
type Variable struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Default     string `yaml:"default"`
	Required    bool   `yaml:"required"`
	Secret      bool   `yaml:"secret"`
}

// SnippetDefinition is one unit of configuration change. Element carries the
// literal configuration text; File points at a sibling file to load it from
// when Element is empty. Cmd defaults to "set".
type SnippetDefinition struct {
	Name    string `yaml:"name"`
	Cmd     string `yaml:"cmd"`
	Xpath   string `yaml:"xpath"`
	Element string `yaml:"element"`
	File    string `yaml:"file"`
	When    string `yaml:"when"`
}

// SetCmd is the default snippet command; only "set" snippets carry
// file-backed configuration content.
const SetCmd = "set"

// EffectiveCmd returns the snippet command with the default applied.
func (d SnippetDefinition) EffectiveCmd() string {
	if d.Cmd == "" {
		return SetCmd
	}
	return d.Cmd
}

func Parse(data []byte) (*Metadata, error) {
	m := &Metadata{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("invalid skillet YAML: %w", err)
	}
	if m.Type == "" {
		m.Type = "panos"
	}
	return m, nil
}

func (m *Metadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: skillet name is required", ErrValidation)
	}
	if len(m.Snippets) == 0 {
		return fmt.Errorf("%w: skillet must define at least one snippet", ErrValidation)
	}
	for i, s := range m.Snippets {
		if s.Name == "" {
			return fmt.Errorf("%w: snippet %d has no name", ErrValidation, i)
		}
	}
	for _, v := range m.Variables {
		if v.Name == "" {
			return fmt.Errorf("%w: skillet variable has no name", ErrValidation)
		}
	}
	return nil
}
