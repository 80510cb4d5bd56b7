package analysis

import "strings"

// SplitSentences splits text on '.', '!' and '?' and returns the trimmed,
// non-empty segments in order. Abbreviations and decimals are not special-cased.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
