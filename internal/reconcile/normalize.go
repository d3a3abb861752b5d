// Package reconcile merges per-source candidate records into one canonical,
// deduplicated record per restaurant identity.
package reconcile

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a name for equality comparison: lowercase, keep
// only alphanumerics and whitespace, collapse whitespace runs, trim. Two
// names denote the same business iff their normalized forms are equal.
// This is a heuristic: minor spelling variants stay distinct, and distinct
// businesses with a generic name collide.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
