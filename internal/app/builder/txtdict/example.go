package txtdict

import (
	"strings"

	"github.com/heartmarshall/frenchdict/internal/domain"
)

// exampleDelimiter separates example sentences inside a sense.
const exampleDelimiter = "◇"

// ParseExamples splits an example span on the delimiter glyph. Every
// non-empty segment becomes one example.
func ParseExamples(span string) []domain.Example {
	var examples []domain.Example
	for _, seg := range strings.Split(span, exampleDelimiter) {
		seg = domain.NormalizeText(seg)
		if seg == "" {
			continue
		}
		examples = append(examples, SplitBilingual(seg))
	}
	return examples
}

// SplitBilingual divides a segment at its first Chinese character: the text
// before it is French, the text from it on is the translation. A segment
// without Chinese, or starting with it, is kept whole as French.
func SplitBilingual(seg string) domain.Example {
	seg = strings.TrimSpace(seg)
	i := strings.IndexFunc(seg, isHan)
	if i <= 0 {
		return domain.Example{Source: seg}
	}
	src := strings.TrimSpace(seg[:i])
	if src == "" {
		return domain.Example{Source: seg}
	}
	return domain.Example{
		Source:      src,
		Translation: strings.TrimSpace(seg[i:]),
	}
}
