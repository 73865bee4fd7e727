// Package wordlist parses the per-category CSV wordlists of the
// French-Dictionary project into dictionary entries.
// Pure function: directory in, domain structs out. No file output.
package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/frenchdict/internal/app/builder/lexicon"
	"github.com/heartmarshall/frenchdict/internal/domain"
)

// category ties a CSV file name to the part of speech of its rows.
type category struct {
	file string
	pos  domain.POSCategory
}

// categories is the fixed read order of the wordlist files.
var categories = []category{
	{"nouns.csv", domain.POSCategoryNoun},
	{"verbs.csv", domain.POSCategoryVerb},
	{"adjectives.csv", domain.POSCategoryAdjective},
	{"adverbs.csv", domain.POSCategoryAdverb},
	{"conjunctions.csv", domain.POSCategoryConjunction},
	{"prepositions.csv", domain.POSCategoryPreposition},
	{"pronouns.csv", domain.POSCategoryPronoun},
	{"determiners.csv", domain.POSCategoryDeterminer},
}

// Options controls row selection.
type Options struct {
	// LemmasOnly keeps dictionary forms and drops inflections.
	LemmasOnly bool
}

// Stats holds parser statistics for logging.
type Stats struct {
	FilesRead      int
	FilesMissing   int
	Rows           int
	EmptyForms     int
	Inflections    int
	UnknownTags    int
	Kept           int
	KeptByCategory map[string]int
}

// Result is the outcome of parsing a wordlist directory.
// Entries are in file order and not yet deduplicated.
type Result struct {
	Entries []domain.DictionaryEntry
	Stats   Stats
}

// columns holds header positions; -1 means absent.
type columns struct {
	form, tags, gender, verbType, conjugation int
}

// Parse reads every known category file under dir. Missing files are
// skipped; a missing directory or one without any category file is reported
// as domain.ErrSourceNotFound.
func Parse(dir string, opts Options) (Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("stat %s: %w", dir, domain.ErrSourceNotFound)
		}
		return Result{}, fmt.Errorf("stat dir: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%s is not a directory: %w", dir, domain.ErrSourceNotFound)
	}

	res := Result{Stats: Stats{KeptByCategory: make(map[string]int)}}
	for _, c := range categories {
		f, err := os.Open(filepath.Join(dir, c.file))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				res.Stats.FilesMissing++
				continue
			}
			return res, fmt.Errorf("open %s: %w", c.file, err)
		}

		entries, err := parseCategory(f, c.pos, opts, &res.Stats)
		f.Close()
		if err != nil {
			return res, fmt.Errorf("parse %s: %w", c.file, err)
		}
		res.Stats.FilesRead++
		res.Stats.KeptByCategory[c.pos.String()] += len(entries)
		res.Entries = append(res.Entries, entries...)
	}

	if res.Stats.FilesRead == 0 {
		return res, fmt.Errorf("no wordlist files in %s: %w", dir, domain.ErrSourceNotFound)
	}
	return res, nil
}

// parseCategory reads one CSV. The header row locates the columns by name.
func parseCategory(r io.Reader, pos domain.POSCategory, opts Options, stats *Stats) ([]domain.DictionaryEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := locateColumns(header)
	if cols.form < 0 {
		return nil, fmt.Errorf("header %q has no form column", header)
	}

	var entries []domain.DictionaryEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		stats.Rows++

		form := domain.NormalizeText(field(record, cols.form))
		if form == "" {
			stats.EmptyForms++
			continue
		}

		tags := ParseTags(field(record, cols.tags))
		stats.UnknownTags += len(tags.Unknown)
		tags = withLegacyColumns(tags, field(record, cols.gender), field(record, cols.verbType))

		if opts.LemmasOnly && !isLemma(pos, tags) {
			stats.Inflections++
			continue
		}

		entry := buildEntry(form, pos, tags)
		entry.Conjugation = domain.NormalizeText(field(record, cols.conjugation))
		entries = append(entries, entry)
		stats.Kept++
	}
	return entries, nil
}

func locateColumns(header []string) columns {
	cols := columns{form: -1, tags: -1, gender: -1, verbType: -1, conjugation: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "form":
			cols.form = i
		case "word":
			if cols.form < 0 {
				cols.form = i
			}
		case "tags":
			cols.tags = i
		case "gender":
			cols.gender = i
		case "type":
			cols.verbType = i
		case "conjugation":
			cols.conjugation = i
		}
	}
	return cols
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// withLegacyColumns folds the older gender/type columns into the tag set.
func withLegacyColumns(tags TagSet, gender, verbType string) TagSet {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "m":
		if !tags.Has("masculine") {
			tags.Tags = append(tags.Tags, "masculine")
		}
	case "f":
		if !tags.Has("feminine") {
			tags.Tags = append(tags.Tags, "feminine")
		}
	}
	vt := strings.ToLower(strings.TrimSpace(verbType))
	if kind, ok := vocabulary[vt]; ok && kind == TagVerbType && !tags.Has(vt) {
		tags.Tags = append(tags.Tags, vt)
	}
	return tags
}

// isLemma reports whether a row is a dictionary form of its category.
func isLemma(pos domain.POSCategory, tags TagSet) bool {
	switch pos {
	case domain.POSCategoryNoun:
		return !tags.Has("plural")
	case domain.POSCategoryAdjective:
		if !tags.HasKind(TagGender) && !tags.HasKind(TagNumber) {
			return true
		}
		return !tags.Has("feminine") && !tags.Has("plural")
	case domain.POSCategoryVerb:
		return tags.Has("infinitive") || !tags.HasKind(TagMood)
	default:
		return true
	}
}

func buildEntry(form string, pos domain.POSCategory, tags TagSet) domain.DictionaryEntry {
	abbr := abbreviationFor(pos, tags)
	return domain.DictionaryEntry{
		Word:        form,
		POS:         []domain.PartOfSpeechTag{abbr.Tag()},
		Gender:      abbr.Gender,
		VerbType:    abbr.VerbType,
		Tags:        tags.Tags,
		Definitions: []domain.Sense{{Text: abbr.Full}},
	}
}

// abbreviationFor picks the most specific table entry the tags support.
func abbreviationFor(pos domain.POSCategory, tags TagSet) lexicon.Abbreviation {
	switch pos {
	case domain.POSCategoryNoun:
		switch {
		case tags.Has("masculine"):
			return lexicon.MustLookup("n. m.")
		case tags.Has("feminine"):
			return lexicon.MustLookup("n. f.")
		}
		return lexicon.MustLookup("n.")
	case domain.POSCategoryVerb:
		switch {
		case tags.Has("pronominal"), tags.Has("reflexive"):
			return lexicon.MustLookup("v. pr.")
		case tags.Has("transitive"):
			return lexicon.MustLookup("v. t.")
		case tags.Has("intransitive"):
			return lexicon.MustLookup("v. i.")
		case tags.Has("auxiliary"):
			return lexicon.MustLookup("v. aux.")
		case tags.Has("impersonal"):
			return lexicon.MustLookup("v. impers.")
		}
		return lexicon.MustLookup("v.")
	case domain.POSCategoryAdjective:
		return lexicon.MustLookup("a.")
	case domain.POSCategoryAdverb:
		return lexicon.MustLookup("adv.")
	case domain.POSCategoryConjunction:
		return lexicon.MustLookup("conj.")
	case domain.POSCategoryPreposition:
		return lexicon.MustLookup("prép.")
	case domain.POSCategoryPronoun:
		return lexicon.MustLookup("pron.")
	default:
		return lexicon.MustLookup("det.")
	}
}
