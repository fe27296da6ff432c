package sqlbuilder

import "strings"

// Esc escapes a string for embedding in a SQL literal by doubling every
// single quote.
func Esc(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Quote escapes the string and wraps it in single quotes, producing a
// complete SQL string literal.
func Quote(s string) string {
	return "'" + Esc(s) + "'"
}
