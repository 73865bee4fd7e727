package txtdict

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/heartmarshall/frenchdict/internal/domain"
)

// ParseFile opens the text dictionary at filePath and parses it.
// A missing file is reported as domain.ErrSourceNotFound.
func ParseFile(filePath string, opts Options) (Result, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("open %s: %w", filePath, domain.ErrSourceNotFound)
		}
		return Result{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse splits r into entry blocks and parses each into a DictionaryEntry.
// Blocks with an unparseable head are dropped and counted by reason.
// Entries are returned in source order; duplicates are left to the merger.
func Parse(r io.Reader, opts Options) (Result, error) {
	tok := NewTokenizer(r, opts)
	stats := newStats()
	var entries []domain.DictionaryEntry

	for block := range tok.Blocks() {
		entry, strategy, err := ParseBlock(block)
		if err != nil {
			stats.Dropped++
			stats.DropReasons[DropReason(err)]++
			continue
		}
		stats.Parsed++
		stats.Strategies[strategy]++
		entries = append(entries, entry)
	}
	stats.TokenizerStats = tok.Stats()

	if err := tok.Err(); err != nil {
		return Result{Stats: stats}, fmt.Errorf("tokenize: %w", err)
	}
	return Result{Entries: entries, Stats: stats}, nil
}

// ParseBlock runs the head and body parsers over one block. It also returns
// the name of the head strategy that matched.
func ParseBlock(block RawEntryBlock) (domain.DictionaryEntry, string, error) {
	head, err := ParseHead(block.Lines)
	if err != nil {
		return domain.DictionaryEntry{}, "", err
	}

	senses := ParseBody(head.Remainder, block.Lines[head.Consumed:], head.Primary())

	return domain.DictionaryEntry{
		Word:           head.Word,
		Phonetic:       head.Phonetic,
		POS:            head.POS,
		Gender:         head.Gender,
		VerbType:       head.VerbType,
		PastParticiple: head.PastParticiple,
		ExtraInfo:      head.ExtraInfo,
		Definitions:    senses,
	}, head.Strategy, nil
}
