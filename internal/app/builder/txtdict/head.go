package txtdict

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/frenchdict/internal/app/builder/lexicon"
	"github.com/heartmarshall/frenchdict/internal/domain"
)

// Drop reasons reported in Stats.DropReasons.
const (
	ReasonEmptyBlock   = "empty block"
	ReasonNoHeadword   = "no headword"
	ReasonNumeric      = "numeric headword"
	ReasonBoilerplate  = "boilerplate headword"
	ReasonUnknownPOS   = "unknown part of speech"
	ReasonNotADictHead = "not a headword"
)

// headError is returned for blocks whose head cannot be parsed.
type headError struct {
	reason string
}

func (e *headError) Error() string { return domain.ErrUnparseableHead.Error() + ": " + e.reason }

func (e *headError) Unwrap() error { return domain.ErrUnparseableHead }

// DropReason returns the reason recorded on an unparseable-head error,
// or "" for any other error.
func DropReason(err error) string {
	var he *headError
	if errors.As(err, &he) {
		return he.reason
	}
	return ""
}

// headwordStoplist holds tokens of the title page that look like headwords.
var headwordStoplist = map[string]bool{
	"公共法语学习词典":     true,
	"Dictionnaire": true,
}

var (
	bracketRe        = regexp.MustCompile(`\[([^\]]*)\]`)
	pastParticipleRe = regexp.MustCompile(`\(p\.\s*p\.\s*([^)]+)\)`)
)

// ParseHead extracts the headword and its grammatical annotations from the
// first line of a block, or the first two when the part of speech wrapped.
// It returns an error wrapping domain.ErrUnparseableHead when the block
// should be discarded.
func ParseHead(lines []string) (Head, error) {
	if len(lines) == 0 {
		return Head{}, &headError{reason: ReasonEmptyBlock}
	}

	text := headText(lines[0])
	consumed := 1
	if len(lines) > 1 {
		if _, _, _, ok := lexicon.FindFirst(text); !ok {
			next := CleanText(lines[1])
			if _, _, ok := lexicon.MatchAt(next); ok {
				text = text + " " + next
				consumed = 2
			}
		}
	}
	if subEntryRe.MatchString(">" + text) {
		return Head{}, &headError{reason: ReasonNotADictHead}
	}

	var firstErr error
	for _, st := range headStrategies {
		split, ok := st.split(text)
		if !ok {
			continue
		}
		head, err := buildHead(split)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		head.Consumed = consumed
		head.Strategy = st.name
		head.PastParticiple = findPastParticiple(text)
		return head, nil
	}
	if firstErr != nil {
		return Head{}, firstErr
	}
	return Head{}, &headError{reason: ReasonUnknownPOS}
}

// headText strips the block marker and page markers. Inner whitespace is
// kept: the wide-space strategy relies on it.
func headText(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, ">")
	line = pageMarkerRe.ReplaceAllString(line, " ")
	return strings.TrimSpace(norm.NFC.String(line))
}

func buildHead(split headSplit) (Head, error) {
	word, phonetic, err := normalizeHeadword(split.word)
	if err != nil {
		return Head{}, err
	}

	pos, primary, ok := resolvePOS(split.pos, split.fuzzy)
	if !ok {
		return Head{}, &headError{reason: ReasonUnknownPOS}
	}

	head := Head{
		Word:     word,
		Phonetic: phonetic,
		POS:      pos,
	}

	switch primary.Category {
	case domain.POSCategoryNoun:
		head.Gender = primary.Gender
		if head.Gender == domain.GenderNone {
			head.Gender = genderMarker(split.pos)
		}
	case domain.POSCategoryVerb:
		head.VerbType = primary.VerbType
		if head.VerbType == domain.VerbSubtypeNone {
			head.VerbType = verbMarker(split.pos)
		}
	}

	rest := strings.TrimSpace(split.rest)
	rest = strings.TrimSpace(pastParticipleRe.ReplaceAllString(rest, ""))
	if strings.HasPrefix(rest, "[") {
		if loc := bracketRe.FindStringSubmatchIndex(rest); loc != nil && loc[0] == 0 {
			inner := strings.TrimSpace(rest[loc[2]:loc[3]])
			switch {
			case containsHan(inner):
				head.ExtraInfo = inner
			case head.Phonetic == "":
				head.Phonetic = inner
			default:
				head.ExtraInfo = inner
			}
			rest = strings.TrimSpace(rest[loc[1]:])
		}
	}
	head.Remainder = rest

	return head, nil
}

// normalizeHeadword reduces the word part of a head line to the bare
// headword: inflection suffixes after a comma, bracketed phonetics, and the
// aspirated-h asterisk are removed. The first bracketed annotation is
// returned as the phonetic.
func normalizeHeadword(raw string) (string, string, error) {
	var phonetic string
	if m := bracketRe.FindStringSubmatch(raw); m != nil {
		phonetic = strings.TrimSpace(m[1])
	}

	word := raw
	if i := strings.IndexAny(word, ",，"); i >= 0 {
		word = word[:i]
	}
	word = bracketRe.ReplaceAllString(word, " ")
	word = strings.TrimSpace(word)
	word = strings.TrimLeft(word, "*")
	word = strings.Trim(word, " ,，;；:：")
	word = domain.NormalizeText(word)

	if word == "" || strings.IndexFunc(word, unicode.IsLetter) < 0 {
		return "", "", &headError{reason: ReasonNoHeadword}
	}
	if r := []rune(word)[0]; unicode.IsDigit(r) {
		return "", "", &headError{reason: ReasonNumeric}
	}
	if headwordStoplist[word] {
		return "", "", &headError{reason: ReasonBoilerplate}
	}
	return word, phonetic, nil
}

// resolvePOS turns a part-of-speech run such as "prép. ; adv." into tags.
// The primary (first) part may be resolved fuzzily; further parts must match
// the table. Duplicate abbreviations are dropped.
func resolvePOS(run string, fuzzy bool) ([]domain.PartOfSpeechTag, lexicon.Abbreviation, bool) {
	parts := strings.FieldsFunc(run, func(r rune) bool { return r == ';' || r == '；' })
	if len(parts) == 0 {
		return nil, lexicon.Abbreviation{}, false
	}

	primary, ok := lexicon.Resolve(parts[0], fuzzy)
	if !ok {
		return nil, lexicon.Abbreviation{}, false
	}

	tags := []domain.PartOfSpeechTag{primary.Tag()}
	for _, part := range parts[1:] {
		a, ok := lexicon.Resolve(part, false)
		if !ok {
			continue
		}
		if containsAbbr(tags, a.Abbr) {
			continue
		}
		tags = append(tags, a.Tag())
	}
	return tags, primary, true
}

func containsAbbr(tags []domain.PartOfSpeechTag, abbr string) bool {
	for _, t := range tags {
		if t.Abbr == abbr {
			return true
		}
	}
	return false
}

// genderMarker looks for a standalone "m." or "f." token.
func genderMarker(run string) domain.Gender {
	fields := strings.Fields(run)
	for _, f := range fields {
		if f == "m." {
			return domain.GenderMasculine
		}
	}
	for _, f := range fields {
		if f == "f." {
			return domain.GenderFeminine
		}
	}
	return domain.GenderNone
}

// verbMarker derives the verb subtype from loose tokens in the run.
func verbMarker(run string) domain.VerbSubtype {
	for _, f := range strings.Fields(run) {
		switch f {
		case "t.":
			return domain.VerbSubtypeTransitive
		case "i.":
			return domain.VerbSubtypeIntransitive
		case "pr.":
			return domain.VerbSubtypeReflexive
		case "aux.":
			return domain.VerbSubtypeAuxiliary
		case "impers.":
			return domain.VerbSubtypeImpersonal
		}
	}
	return domain.VerbSubtypeNone
}

func findPastParticiple(text string) string {
	m := pastParticipleRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
