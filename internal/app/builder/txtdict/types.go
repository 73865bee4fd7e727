// Package txtdict parses the line-oriented text edition of the
// "公共法语学习词典" into dictionary entries.
// Pure function: reader in, domain structs out. No file output.
package txtdict

import "github.com/heartmarshall/frenchdict/internal/domain"

// RawEntryBlock is the run of lines between two entry boundaries.
// Lines are trimmed; the first line still carries the leading '>'.
type RawEntryBlock struct {
	StartLine int
	Lines     []string
}

// Head is what the head parser extracts from the first line(s) of a block.
type Head struct {
	Word           string
	Phonetic       string
	POS            []domain.PartOfSpeechTag
	Gender         domain.Gender
	VerbType       domain.VerbSubtype
	PastParticiple string
	ExtraInfo      string

	// Remainder is the text left on the head line after the part-of-speech
	// run, usually the start of the definition.
	Remainder string
	// Consumed is the number of block lines the head occupied.
	Consumed int
	// Strategy names the head-splitting strategy that succeeded.
	Strategy string
}

// Primary returns the first part-of-speech tag.
func (h *Head) Primary() domain.PartOfSpeechTag {
	if len(h.POS) == 0 {
		return domain.PartOfSpeechTag{}
	}
	return h.POS[0]
}

// TokenizerStats counts what the tokenizer saw and discarded.
type TokenizerStats struct {
	TotalLines    int
	PreambleLines int
	Blocks        int
	Headings      int
	Markers       int
	Boilerplate   int
	Orphans       int
}

// Stats holds parser statistics for logging.
type Stats struct {
	TokenizerStats
	Parsed      int
	Dropped     int
	DropReasons map[string]int
	Strategies  map[string]int
}

func newStats() Stats {
	return Stats{
		DropReasons: make(map[string]int),
		Strategies:  make(map[string]int),
	}
}

// Result is the outcome of parsing a whole text dictionary.
// Entries are in source order and not yet deduplicated.
type Result struct {
	Entries []domain.DictionaryEntry
	Stats   Stats
}
