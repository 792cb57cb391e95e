package recognition

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// StripWhitespace removes every whitespace rune. The target script is not
// space-delimited, so spaces the recognizer inserts between glyphs are noise.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FoldWidth applies NFKC, turning full-width Latin letters and digits into
// their ASCII forms and half-width katakana into full-width.
func FoldWidth(s string) string { return norm.NFKC.String(s) }
