// internal/skillet/errors.go
package skillet

import "errors"

// Error kinds surfaced by the engine. Callers match them with errors.Is.
//
// ErrValidation covers inputs that satisfy neither execution mode and
// malformed metadata. ErrLoader covers structurally broken snippet
// definitions and a supplied session that is not connected. A referenced
// snippet file missing on disk is deliberately NOT an error: it is logged
// and the stack continues (degrade, not abort).
var (
	ErrValidation = errors.New("skillet validation failed")
	ErrLoader     = errors.New("skillet loader failed")
)
