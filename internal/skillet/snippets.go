// internal/skillet/snippets.go
package skillet

// Snippets materializes the skillet's snippet stack into executable
// snippets bound to the active device session. Stack order is preserved
// exactly: the result always has one entry per definition, in definition
// order, even when a definition's content could not be loaded.
func (s *Skillet) Snippets() ([]*Snippet, error) {
	out := make([]*Snippet, 0, len(s.md.Snippets))
	for _, def := range s.md.Snippets {
		// Only "set" snippets carry file-backed configuration content;
		// anything else is assumed complete as written.
		if def.EffectiveCmd() == SetCmd {
			resolved, err := s.loadElement(def, s.path)
			if err != nil {
				return nil, err
			}
			def = resolved
		}
		out = append(out, &Snippet{def: def, session: s.session})
	}
	return out, nil
}
