package wordlist

import (
	"strings"
)

// TagKind groups the grammatical tokens of the wordlist vocabulary.
type TagKind int

const (
	TagGender TagKind = iota + 1
	TagNumber
	TagMood
	TagTense
	TagPerson
	TagVerbType
)

// vocabulary is the fixed set of tag tokens the wordlist CSVs use.
var vocabulary = map[string]TagKind{
	"masculine": TagGender,
	"feminine":  TagGender,

	"singular": TagNumber,
	"plural":   TagNumber,

	"infinitive":  TagMood,
	"indicative":  TagMood,
	"subjunctive": TagMood,
	"conditional": TagMood,
	"imperative":  TagMood,
	"participle":  TagMood,
	"gerund":      TagMood,

	"present":     TagTense,
	"past":        TagTense,
	"imperfect":   TagTense,
	"future":      TagTense,
	"historic":    TagTense,
	"pluperfect":  TagTense,
	"simple-past": TagTense,

	"first-person":  TagPerson,
	"second-person": TagPerson,
	"third-person":  TagPerson,

	"transitive":   TagVerbType,
	"intransitive": TagVerbType,
	"pronominal":   TagVerbType,
	"reflexive":    TagVerbType,
	"auxiliary":    TagVerbType,
	"impersonal":   TagVerbType,
}

// TagSet is the recognized tags of one CSV row, in source order.
type TagSet struct {
	Tags    []string
	Unknown []string
}

// Has reports whether tag is present.
func (s TagSet) Has(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasKind reports whether any tag of kind k is present.
func (s TagSet) HasKind(k TagKind) bool {
	for _, t := range s.Tags {
		if vocabulary[t] == k {
			return true
		}
	}
	return false
}

// ParseTags reads a serialized list literal such as "['masculine', 'singular']"
// or `["infinitive"]`. Tokens are lower-cased and split into recognized and
// unknown ones; duplicates are dropped.
func ParseTags(literal string) TagSet {
	literal = strings.TrimSpace(literal)
	literal = strings.TrimPrefix(literal, "[")
	literal = strings.TrimSuffix(literal, "]")

	var set TagSet
	seen := make(map[string]bool)
	for _, tok := range strings.Split(literal, ",") {
		tok = strings.TrimSpace(tok)
		tok = strings.Trim(tok, `'"`)
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		if _, ok := vocabulary[tok]; ok {
			set.Tags = append(set.Tags, tok)
		} else {
			set.Unknown = append(set.Unknown, tok)
		}
	}
	return set
}
