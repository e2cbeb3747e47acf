// internal/skillet/load.go
package skillet

import (
	"fmt"
	"os"
	"path/filepath"
)

// loadElement ensures a definition carries literal configuration content,
// reading it from the referenced file when not inline.
//
// A definition with neither element nor file is malformed: hard error. A
// file reference that does not exist on disk is only logged, and the
// definition comes back without content so one missing file cannot block
// the rest of the stack.
func (s *Skillet) loadElement(def SnippetDefinition, baseDir string) (SnippetDefinition, error) {
	if def.Element != "" {
		return def, nil
	}
	if def.File == "" {
		return def, fmt.Errorf("%w: snippet %s has neither element nor file", ErrLoader, def.Name)
	}

	path := filepath.Join(baseDir, def.File)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("could not load referenced file for snippet",
				"snippet", def.Name, "file", path)
			return def, nil
		}
		return def, fmt.Errorf("%w: could not read %s for snippet %s: %v", ErrLoader, path, def.Name, err)
	}
	def.Element = string(data)
	return def, nil
}
