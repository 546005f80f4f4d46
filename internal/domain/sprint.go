package domain

import "unicode"

// ExtractSprint returns the sprint number embedded in a free-text sprint value.
//
// The number is the first run of digits:
//
//	"Sprint 60 | Evolução"        -> "60"
//	"SP_60"                       -> "60"
//	"NOW | BL Técnico | Evolução" -> absent
func ExtractSprint(raw string) (string, bool) {
	start := -1
	for idx, r := range raw {
		if start < 0 {
			if unicode.IsDigit(r) {
				start = idx
			}
			continue
		}
		if !unicode.IsDigit(r) {
			return raw[start:idx], true
		}
	}
	if start < 0 {
		return "", false
	}
	return raw[start:], true
}
