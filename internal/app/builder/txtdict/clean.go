package txtdict

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/heartmarshall/frenchdict/internal/domain"
)

var (
	pageMarkerRe = regexp.MustCompile(`<\d+>`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// CleanText removes inline page markers ("<123>"), collapses whitespace,
// and trims the result.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = pageMarkerRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return domain.NormalizeText(s)
}

// isHan reports whether r belongs to the Chinese script.
func isHan(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// containsHan reports whether s has at least one Chinese character.
func containsHan(s string) bool {
	return strings.IndexFunc(s, isHan) >= 0
}

// cjkPunctuation are marks that only appear in the Chinese glosses or the
// example layout, never in bare French headword lines.
const cjkPunctuation = "，。；、！？《》「」◇"

// isDefinitional reports whether an unnumbered body line looks like a gloss
// rather than stray layout text.
func isDefinitional(s string) bool {
	return strings.ContainsAny(s, ":："+cjkPunctuation) || containsHan(s)
}
