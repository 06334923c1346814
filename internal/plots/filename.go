// internal/plots/filename.go
package plots

import (
	"strings"
	"unicode"
)

// sanitize replaces every rune that is not a letter or digit with '_'.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)
}
