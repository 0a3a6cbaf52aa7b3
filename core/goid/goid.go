// Package goid normalizes Gene Ontology class identifiers.
package goid

import (
	"strings"
	"unicode/utf8"
)

// Prefix marks a canonical GO class identifier.
const Prefix = "GO:"

// Width is the zero-padded width of the numeric part.
const Width = 7

// Normalize returns the canonical form of a raw class id.
// Empty input stays empty; ids already carrying the GO: prefix are returned as-is.
// Anything else is zero-padded to Width and prefixed, e.g. "12345" -> "GO:0012345".
func Normalize(raw string) string {
	if raw == "" || strings.HasPrefix(raw, Prefix) {
		return raw
	}
	return Prefix + zeroPad(raw, Width)
}

// zeroPad left-pads s with '0' up to width characters, keeping a leading sign in front.
func zeroPad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := strings.Repeat("0", width-n)
	if s[0] == '+' || s[0] == '-' {
		return s[:1] + pad + s[1:]
	}
	return pad + s
}

// SplitList splits a comma-separated parent list, trimming each entry,
// dropping empties and normalizing the rest. Order is preserved.
func SplitList(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Normalize(p))
	}
	return out
}
