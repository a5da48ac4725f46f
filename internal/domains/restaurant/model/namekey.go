package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NameKey maps a restaurant name to its uniqueness key: NFC normalization
// followed by full Unicode case folding. Whitespace is kept as is, so
// "Na Telha " and "Na Telha" are different names.
//
// NFC makes a precomposed "á" and "a"+U+0301 compare equal.
func NameKey(name string) string {
	// cases.Caser is stateful, a fresh one per call keeps this goroutine safe.
	return cases.Fold().String(norm.NFC.String(name))
}

// ContainsFold reports whether substr occurs in s ignoring case, under the
// same normalization as NameKey.
func ContainsFold(s, substr string) bool {
	return strings.Contains(NameKey(s), NameKey(substr))
}

// HasPrefixFold is ContainsFold anchored at the start of s.
func HasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(NameKey(s), NameKey(prefix))
}
