package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey strips accents, surrounding spaces and case from a category value
// Example: " Bolívar " -> "bolivar", "Montaña" -> "montana"
func NormalizeKey(value string) string {
	if value == "" {
		return value
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, value)
	if err != nil {
		normalized = value
	}

	return strings.ToLower(strings.TrimSpace(normalized))
}

// Resolve finds the candidate matching value, ignoring accents and case.
// An exact match always wins over a normalized one.
func Resolve(value string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if c == value {
			return c, true
		}
	}

	key := NormalizeKey(value)
	for _, c := range candidates {
		if NormalizeKey(c) == key {
			return c, true
		}
	}
	return "", false
}
