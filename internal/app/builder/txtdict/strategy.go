package txtdict

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/frenchdict/internal/app/builder/lexicon"
)

// headSplit is a candidate division of the head line into the headword part,
// the part-of-speech run, and whatever follows.
type headSplit struct {
	word string
	pos  string
	rest string
	// fuzzy allows the primary part of speech to be resolved by prefix or
	// stem rather than by exact spelling.
	fuzzy bool
}

// headStrategy is one named way of splitting a head line. Strategies are
// tried in order; the first whose split yields a valid head wins.
type headStrategy struct {
	name  string
	split func(text string) (headSplit, bool)
}

var headStrategies = []headStrategy{
	{name: "abbreviation", split: splitAtAbbreviation},
	{name: "generic-token", split: splitAtGenericToken},
	{name: "spaced", split: splitAtWideSpace},
}

// splitAtAbbreviation finds the first token that is a known abbreviation and
// extends the run over further abbreviations joined by ';'.
func splitAtAbbreviation(text string) (headSplit, bool) {
	_, start, end, ok := lexicon.FindFirst(text)
	if !ok || start == 0 {
		return headSplit{}, false
	}

	for {
		rest := strings.TrimLeft(text[end:], " \t")
		sep := ""
		switch {
		case strings.HasPrefix(rest, ";"):
			sep = ";"
		case strings.HasPrefix(rest, "；"):
			sep = "；"
		}
		if sep == "" {
			break
		}
		next := strings.TrimLeft(rest[len(sep):], " \t")
		_, n, ok := lexicon.MatchAt(next)
		if !ok {
			break
		}
		end = len(text) - len(next) + n
	}

	return headSplit{
		word: text[:start],
		pos:  text[start:end],
		rest: text[end:],
	}, true
}

// genericHeadRe accepts any run of lower-case dotted tokens after the word,
// spaced or not, e.g. "absent, e a.; п." or "arbre n.m.".
var genericHeadRe = regexp.MustCompile(`^([^<>]+?)\s+((?:[a-zéп]+\.\s*)+(?:[;；]\s*(?:[a-zéп]+\.\s*)+)*)`)

func splitAtGenericToken(text string) (headSplit, bool) {
	m := genericHeadRe.FindStringSubmatchIndex(text)
	if m == nil {
		return headSplit{}, false
	}
	return headSplit{
		word:  text[m[2]:m[3]],
		pos:   text[m[4]:m[5]],
		rest:  text[m[1]:],
		fuzzy: true,
	}, true
}

// wideSpaceHeadRe reads the headword up to two spaces, a tab, or the end of
// the line, the layout of the scanned edition.
var wideSpaceHeadRe = regexp.MustCompile(`^([\p{L}][\p{L}'’\-\s]*?)(?:\s{2,}|\t|$)`)

func splitAtWideSpace(text string) (headSplit, bool) {
	m := wideSpaceHeadRe.FindStringSubmatchIndex(text)
	if m == nil {
		return headSplit{}, false
	}
	word := text[m[2]:m[3]]
	after := text[m[3]:]

	_, start, end, ok := lexicon.FindFirst(after)
	if !ok {
		return headSplit{}, false
	}
	return headSplit{
		word: word,
		pos:  after[start:end],
		rest: after[end:],
	}, true
}
