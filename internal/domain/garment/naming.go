package garment

import (
	"fmt"
	"strings"
)

// IsBlankName reports whether a submitted garment name counts as blank:
// empty or whitespace-only after trimming.
func IsBlankName(name string) bool {
	return strings.TrimSpace(name) == ""
}

// ApplyDefaultNames fills blank entries with "Garment N", where N is the
// 1-based position of the entry within the whole batch. Positions are not
// renumbered relative to other blanks, so a batch of
// ["", "  ", "Custom Jacket", ""] becomes
// ["Garment 1", "Garment 2", "Custom Jacket", "Garment 4"].
// Non-blank names pass through unchanged, internal whitespace included.
func ApplyDefaultNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if IsBlankName(n) {
			out[i] = fmt.Sprintf("Garment %d", i+1)
		} else {
			out[i] = n
		}
	}
	return out
}
