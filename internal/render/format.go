package render

import (
	"strconv"
	"strings"
)

// Placeholder is the glyph substituted for absent field values.
const Placeholder = "—"

// FormatSigned renders an integer with an explicit sign ("+3", "+0",
// "-2"). Non-numeric values pass through unchanged.
func FormatSigned(v string) string {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return v
	}
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// OrPlaceholder substitutes the placeholder glyph for an empty value.
func OrPlaceholder(v string) string {
	return fallback(v, Placeholder)
}

// Truncate returns at most max characters of s. It never pads.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
