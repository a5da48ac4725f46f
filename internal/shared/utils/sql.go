package utils

import (
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// EscapeLike escapes LIKE wildcards so user input matches literally.
// The pattern must be used with the default backslash escape.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\") // backslash first
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
