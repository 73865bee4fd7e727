// Package lexicon holds the static part-of-speech vocabulary shared by the
// dictionary parsers.
package lexicon

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/frenchdict/internal/domain"
)

// Abbreviation describes one part-of-speech abbreviation of the source
// dictionaries together with what it implies about the headword.
type Abbreviation struct {
	Abbr     string
	Full     string
	Category domain.POSCategory
	Gender   domain.Gender
	VerbType domain.VerbSubtype
}

// Tag converts the abbreviation into the tag stored on entries.
func (a Abbreviation) Tag() domain.PartOfSpeechTag {
	return domain.PartOfSpeechTag{Abbr: a.Abbr, Full: a.Full, Category: a.Category}
}

// abbreviations maps the canonical abbreviation to its description.
var abbreviations = map[string]Abbreviation{
	"n.":    {Abbr: "n.", Full: "名词", Category: domain.POSCategoryNoun},
	"n. m.": {Abbr: "n. m.", Full: "阳性名词", Category: domain.POSCategoryNoun, Gender: domain.GenderMasculine},
	"n. f.": {Abbr: "n. f.", Full: "阴性名词", Category: domain.POSCategoryNoun, Gender: domain.GenderFeminine},

	"v.":         {Abbr: "v.", Full: "动词", Category: domain.POSCategoryVerb},
	"v. t.":      {Abbr: "v. t.", Full: "及物动词", Category: domain.POSCategoryVerb, VerbType: domain.VerbSubtypeTransitive},
	"v. t. ind.": {Abbr: "v. t. ind.", Full: "间接及物动词", Category: domain.POSCategoryVerb, VerbType: domain.VerbSubtypeTransitive},
	"v. t. dir.": {Abbr: "v. t. dir.", Full: "直接及物动词", Category: domain.POSCategoryVerb, VerbType: domain.VerbSubtypeTransitive},
	"v. i.":      {Abbr: "v. i.", Full: "不及物动词", Category: domain.POSCategoryVerb, VerbType: domain.VerbSubtypeIntransitive},
	"v. pr.":     {Abbr: "v. pr.", Full: "代动词", Category: domain.POSCategoryVerb, VerbType: domain.VerbSubtypeReflexive},
	"v. aux.":    {Abbr: "v. aux.", Full: "助动词", Category: domain.POSCategoryVerb, VerbType: domain.VerbSubtypeAuxiliary},
	"v. impers.": {Abbr: "v. impers.", Full: "无人称动词", Category: domain.POSCategoryVerb, VerbType: domain.VerbSubtypeImpersonal},

	"a.":      {Abbr: "a.", Full: "形容词", Category: domain.POSCategoryAdjective},
	"adv.":    {Abbr: "adv.", Full: "副词", Category: domain.POSCategoryAdverb},
	"prép.":   {Abbr: "prép.", Full: "介词", Category: domain.POSCategoryPreposition},
	"conj.":   {Abbr: "conj.", Full: "连词", Category: domain.POSCategoryConjunction},
	"pron.":   {Abbr: "pron.", Full: "代词", Category: domain.POSCategoryPronoun},
	"det.":    {Abbr: "det.", Full: "限定词", Category: domain.POSCategoryDeterminer},
	"art.":    {Abbr: "art.", Full: "冠词", Category: domain.POSCategoryDeterminer},
	"interj.": {Abbr: "interj.", Full: "感叹词", Category: domain.POSCategoryInterjection},

	"loc. adv.":  {Abbr: "loc. adv.", Full: "副词短语", Category: domain.POSCategoryAdverb},
	"loc. conj.": {Abbr: "loc. conj.", Full: "连词短语", Category: domain.POSCategoryConjunction},
	"loc. prép.": {Abbr: "loc. prép.", Full: "介词短语", Category: domain.POSCategoryPreposition},
	"loc. verb.": {Abbr: "loc. verb.", Full: "动词短语", Category: domain.POSCategoryVerb},
}

// aliases are spellings found in the source text that stand for a canonical
// abbreviation. The Cyrillic "п." is an OCR artifact for "n.".
var aliases = map[string]string{
	"п.":    "n.",
	"prep.": "prép.",
	"adj.":  "a.",
}

// byLength lists every matchable spelling, longest first, so that
// "v. t. ind." is tried before "v. t." and "v.".
var byLength = longestFirst(abbreviations, aliases)

// canonicalOrder is a deterministic iteration order for fuzzy fallbacks.
var canonicalOrder = longestFirst(abbreviations, nil)

func longestFirst(table map[string]Abbreviation, extra map[string]string) []string {
	keys := make([]string, 0, len(table)+len(extra))
	for k := range table {
		keys = append(keys, k)
	}
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(keys[i]), utf8.RuneCountInString(keys[j])
		if li != lj {
			return li > lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Lookup returns the abbreviation for an exact spelling (aliases included).
func Lookup(abbr string) (Abbreviation, bool) {
	abbr = strings.TrimSpace(abbr)
	if canon, ok := aliases[abbr]; ok {
		abbr = canon
	}
	a, ok := abbreviations[abbr]
	return a, ok
}

// MustLookup is Lookup for abbreviations known to be in the table.
func MustLookup(abbr string) Abbreviation {
	a, ok := Lookup(abbr)
	if !ok {
		panic("lexicon: unknown abbreviation " + abbr)
	}
	return a
}

// Resolve maps a part-of-speech token run to a table entry. Exact and
// whitespace-insensitive matches are tried first; when fuzzy is set, a
// first-token prefix match and finally a stem containment match are
// accepted too.
func Resolve(token string, fuzzy bool) (Abbreviation, bool) {
	token = strings.Join(strings.Fields(token), " ")
	if token == "" {
		return Abbreviation{}, false
	}
	if a, ok := Lookup(token); ok {
		return a, true
	}

	compact := strings.ReplaceAll(token, " ", "")
	for _, k := range canonicalOrder {
		if strings.ReplaceAll(k, " ", "") == compact {
			return abbreviations[k], true
		}
	}
	for k, canon := range aliases {
		if strings.ReplaceAll(k, " ", "") == compact {
			return abbreviations[canon], true
		}
	}

	if !fuzzy {
		return Abbreviation{}, false
	}

	// Longest key that is a prefix of the token, e.g. "v. t. qch." → "v. t.".
	for _, k := range byLength {
		if strings.HasPrefix(token, k) {
			a, _ := Lookup(k)
			return a, true
		}
	}

	for _, k := range canonicalOrder {
		stem, _, _ := strings.Cut(k, ".")
		if len(stem) > 1 && strings.Contains(token, stem) {
			return abbreviations[k], true
		}
	}
	return Abbreviation{}, false
}

// MatchAt reports the longest abbreviation spelled at the start of s that is
// followed by a token boundary. It returns the abbreviation and the number of
// bytes consumed.
func MatchAt(s string) (Abbreviation, int, bool) {
	for _, k := range byLength {
		if !strings.HasPrefix(s, k) {
			continue
		}
		if !isBoundary(s[len(k):]) {
			continue
		}
		a, _ := Lookup(k)
		return a, len(k), true
	}
	return Abbreviation{}, 0, false
}

// FindFirst scans s for the earliest abbreviation that starts a token and
// ends at a boundary. Longest match wins at each position.
func FindFirst(s string) (Abbreviation, int, int, bool) {
	for i, r := range s {
		if i > 0 {
			prev, _ := utf8.DecodeLastRuneInString(s[:i])
			if !unicode.IsSpace(prev) {
				continue
			}
		}
		if unicode.IsSpace(r) {
			continue
		}
		if a, n, ok := MatchAt(s[i:]); ok {
			return a, i, i + n, true
		}
	}
	return Abbreviation{}, 0, 0, false
}

// StripLeading removes part-of-speech abbreviations that prefix s, a common
// artifact of the source layout ("a.缺席的" → "缺席的").
func StripLeading(s string) string {
	s = strings.TrimSpace(s)
	for {
		_, n, ok := MatchAt(s)
		if !ok {
			return s
		}
		s = strings.TrimSpace(s[n:])
	}
}

func isBoundary(rest string) bool {
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r) || r == ';' || r == '；' || r == '[' || r == '(' || r == ',' ||
		unicode.Is(unicode.Han, r) || unicode.IsPunct(r) && r != '.' && r != '-' && r != '\''
}
