package utils

import (
	"strings"
	"unicode"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// Capitalize upper-cases the first rune and lower-cases the rest,
// matching how categories are rendered in exports ("food" -> "Food").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// NormalizeCategory lower-cases and trims a category for storage and
// filtering. Categories are an open-ended set, not a closed enum.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
