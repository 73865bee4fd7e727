package txtdict

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strings"
)

// maxLineSize is the buffer size for bufio.Scanner (1 MB).
const maxLineSize = 1 << 20

var (
	letterHeadingRe = regexp.MustCompile(`^>\s*\p{Lu}\s*$`)
	subEntryRe      = regexp.MustCompile(`^>\s*\d+\s*【`)
	markerLineRe    = regexp.MustCompile(`^<\d+>$`)
)

// Options tune how the source text is split into entry blocks.
type Options struct {
	// FirstHeading is the letter heading that ends the front matter.
	// Lines before it are discarded. Empty disables preamble skipping.
	FirstHeading string
	// Boilerplate lists line prefixes (after an optional '>') that are
	// running headers of the document rather than content.
	Boilerplate []string
}

// DefaultOptions returns the settings for the published text edition.
func DefaultOptions() Options {
	return Options{
		FirstHeading: "A",
		Boilerplate:  []string{"公共法语学习词典", "Dictionnaire"},
	}
}

// Tokenizer splits dictionary text into RawEntryBlocks in a single forward
// pass over the input.
type Tokenizer struct {
	r     io.Reader
	opts  Options
	err   error
	stats TokenizerStats
	used  bool
}

// NewTokenizer creates a Tokenizer reading from r.
func NewTokenizer(r io.Reader, opts Options) *Tokenizer {
	return &Tokenizer{r: r, opts: opts}
}

// Err returns the first read error encountered by Blocks.
func (t *Tokenizer) Err() error { return t.err }

// Stats returns the counters accumulated so far.
func (t *Tokenizer) Stats() TokenizerStats { return t.stats }

// Blocks returns the sequence of entry blocks. The sequence can be ranged
// over once; later calls yield nothing.
func (t *Tokenizer) Blocks() iter.Seq[RawEntryBlock] {
	return func(yield func(RawEntryBlock) bool) {
		if t.used {
			return
		}
		t.used = true

		scanner := bufio.NewScanner(t.r)
		scanner.Buffer(make([]byte, 64*1024), maxLineSize)

		var (
			current  *RawEntryBlock
			stopped  bool
			preamble = t.opts.FirstHeading != ""
			held     []numberedLine
		)

		flush := func() {
			if current == nil || stopped {
				current = nil
				return
			}
			t.stats.Blocks++
			if !yield(*current) {
				stopped = true
			}
			current = nil
		}

		process := func(lineNo int, line string) {
			s := strings.TrimSpace(line)
			switch {
			case s == "":
				return
			case markerLineRe.MatchString(s):
				t.stats.Markers++
				flush()
			case t.isBoilerplate(s):
				t.stats.Boilerplate++
				if strings.HasPrefix(s, ">") {
					flush()
				}
			case strings.HasPrefix(s, ">"):
				switch {
				case subEntryRe.MatchString(s):
					if current == nil {
						t.stats.Orphans++
						return
					}
					current.Lines = append(current.Lines, strings.TrimSpace(s[1:]))
				case letterHeadingRe.MatchString(s):
					t.stats.Headings++
					flush()
				default:
					flush()
					current = &RawEntryBlock{StartLine: lineNo, Lines: []string{s}}
				}
			default:
				if current == nil {
					t.stats.Orphans++
					return
				}
				current.Lines = append(current.Lines, s)
			}
		}

		lineNo := 0
		for scanner.Scan() {
			lineNo++
			t.stats.TotalLines++
			line := strings.TrimRight(scanner.Text(), "\r")
			if lineNo == 1 {
				line = strings.TrimPrefix(line, "\ufeff")
			}

			if preamble {
				if t.isFirstHeading(line) {
					preamble = false
					t.stats.PreambleLines += len(held)
					held = nil
				} else {
					held = append(held, numberedLine{no: lineNo, text: line})
					continue
				}
			}

			process(lineNo, line)
			if stopped {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			t.err = fmt.Errorf("scan line %d: %w", lineNo+1, err)
			return
		}

		// No front-matter heading found: the whole input is content.
		for _, hl := range held {
			process(hl.no, hl.text)
			if stopped {
				return
			}
		}
		flush()
	}
}

type numberedLine struct {
	no   int
	text string
}

func (t *Tokenizer) isFirstHeading(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, ">") {
		return false
	}
	return strings.TrimSpace(s[1:]) == t.opts.FirstHeading
}

func (t *Tokenizer) isBoilerplate(s string) bool {
	s = strings.TrimSpace(strings.TrimPrefix(s, ">"))
	for _, p := range t.opts.Boilerplate {
		if p != "" && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// isBoundaryLine reports whether a trimmed line would start a new block or
// is a section/marker line, i.e. whether it ends the body of an entry.
func isBoundaryLine(s string) bool {
	if markerLineRe.MatchString(s) {
		return true
	}
	return strings.HasPrefix(s, ">") && !subEntryRe.MatchString(s)
}
