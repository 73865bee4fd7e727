package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for storage and comparison:
//   - composes the text to Unicode NFC
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case, diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\u00a0' || r == '\u3000' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// HeadwordKey returns the case-insensitive key under which a headword is
// deduplicated and sorted. Lower-casing follows French rules.
func HeadwordKey(word string) string {
	word = NormalizeText(word)
	if word == "" {
		return ""
	}
	return cases.Lower(language.French).String(word)
}
