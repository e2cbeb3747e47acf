// internal/device/diff.go
package device

import (
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a plain-text unified diff between two configuration
// documents. This is a line-oriented preview helper, not a semantic XML diff.
func UnifiedDiff(before, after string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "before",
		ToFile:   "after",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
