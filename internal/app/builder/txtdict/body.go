package txtdict

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/frenchdict/internal/app/builder/lexicon"
	"github.com/heartmarshall/frenchdict/internal/domain"
)

// numberedSenseRe matches "2 text", "2 [口] text" and "2[口]text".
var numberedSenseRe = regexp.MustCompile(`^(\d+)(?:\s*\[([^\]]*)\]|\s+)\s*(.*)$`)

type senseDraft struct {
	index    int
	category string
	raw      []string
}

// ParseBody turns the lines after the head into senses. lead is the text
// left on the head line and is always treated as definitional. The result
// is never empty: without recoverable text a single sense carrying the
// primary part of speech's full name is returned.
func ParseBody(lead string, lines []string, primary domain.PartOfSpeechTag) []domain.Sense {
	body := make([]string, 0, len(lines)+1)
	if lead = CleanText(lead); lead != "" {
		body = append(body, lead)
	}
	leadCount := len(body)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if isBoundaryLine(line) {
			break
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, ">"))
		if line = CleanText(line); line != "" {
			body = append(body, line)
		}
	}

	drafts := draftSenses(body, leadCount)

	senses := make([]domain.Sense, 0, len(drafts))
	for _, d := range drafts {
		s, ok := d.build(primary)
		if ok {
			senses = append(senses, s)
		}
	}
	if len(senses) == 0 {
		return []domain.Sense{{Text: primary.Full}}
	}
	return senses
}

func draftSenses(body []string, leadCount int) []*senseDraft {
	numbered := false
	for _, line := range body {
		if numberedSenseRe.MatchString(line) {
			numbered = true
			break
		}
	}

	if !numbered {
		joined := strings.Join(body, " ")
		if leadCount > 0 || isDefinitional(joined) {
			return []*senseDraft{{raw: body}}
		}
		return nil
	}

	var (
		drafts  []*senseDraft
		current *senseDraft
	)
	for i, line := range body {
		if m := numberedSenseRe.FindStringSubmatch(line); m != nil {
			idx, _ := strconv.Atoi(m[1])
			current = &senseDraft{
				index:    idx,
				category: strings.TrimSpace(m[2]),
				raw:      []string{m[3]},
			}
			drafts = append(drafts, current)
			continue
		}
		if current != nil {
			current.raw = append(current.raw, line)
			continue
		}
		if i < leadCount || isDefinitional(line) {
			current = &senseDraft{raw: []string{line}}
			drafts = append(drafts, current)
		}
	}
	return drafts
}

// build splits the sense's first line into definition and example span.
// Continuation lines extend the definition, except those opening with the
// delimiter glyph, which carry further examples.
func (d *senseDraft) build(primary domain.PartOfSpeechTag) (domain.Sense, bool) {
	if len(d.raw) == 0 {
		return domain.Sense{}, false
	}
	def, span := splitDefinition(d.raw[0])
	defs, spans := []string{def}, []string{span}
	for _, line := range d.raw[1:] {
		if strings.HasPrefix(line, exampleDelimiter) {
			spans = append(spans, line)
			continue
		}
		defs = append(defs, line)
	}
	def = domain.NormalizeText(lexicon.StripLeading(strings.Join(defs, " ")))
	examples := ParseExamples(strings.Join(spans, " "))

	if def == "" && len(examples) == 0 {
		return domain.Sense{}, false
	}
	if def == "" {
		def = primary.Full
	}
	return domain.Sense{
		Index:    d.index,
		Category: d.category,
		Text:     def,
		Examples: examples,
	}, true
}

// splitDefinition cuts sense content at its first colon into definition and
// example span. Without a colon the first delimiter glyph is used instead.
func splitDefinition(content string) (string, string) {
	if i := strings.IndexAny(content, ":："); i >= 0 {
		_, size := utf8.DecodeRuneInString(content[i:])
		return strings.TrimSpace(content[:i]), strings.TrimSpace(content[i+size:])
	}
	if i := strings.Index(content, exampleDelimiter); i >= 0 {
		return strings.TrimSpace(content[:i]), strings.TrimSpace(content[i:])
	}
	return strings.TrimSpace(content), ""
}
