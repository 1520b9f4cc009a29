package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeText lower-cases s and collapses every run of whitespace into a
// single space, so "Power\n  BI" and "power bi" compare equal.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ContainsWord reports whether variant occurs in text as a whole word.
// Both arguments must already be normalized with NormalizeText.
//
// The variant is literal text. On the left it must start the text or follow a
// rune that is not a letter or digit. On the right a version number directly
// after the variant ("html5", "python3.11") is skipped, then the text must end
// or continue with a rune that is not a letter or digit.
func ContainsWord(text, variant string) bool {
	if variant == "" {
		return false
	}

	for start := 0; start+len(variant) <= len(text); {
		i := strings.Index(text[start:], variant)
		if i < 0 {
			return false
		}
		i += start

		if leftBoundary(text, i) && rightBoundary(text, i+len(variant)) {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		start = i + size
	}
	return false
}

func leftBoundary(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func rightBoundary(text string, end int) bool {
	end = skipVersion(text, end)
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}

// skipVersion advances past digits and dot-separated digit groups at i.
func skipVersion(text string, i int) int {
	for i < len(text) && isDigit(text[i]) {
		i++
		if i+1 < len(text) && text[i] == '.' && isDigit(text[i+1]) {
			i++
		}
	}
	return i
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
