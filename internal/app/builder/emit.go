package builder

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/frenchdict/internal/domain"
)

// DocumentMeta is the descriptive part of one output dictionary.
type DocumentMeta struct {
	ID               string
	Name             string
	Description      string
	IndexDescription string
	Level            string
	Source           string
	License          string
	Version          string
}

// CategoryDocument is one per-category slice of a dictionary.
type CategoryDocument struct {
	FileName string
	Document domain.DictionaryDocument
}

// DocumentFileName returns the file a dictionary with the given id is written to.
func DocumentFileName(id string) string {
	return id + ".json"
}

// BuildDocument assembles the output document. Entries are copied and sorted
// by normalized headword in French dictionary order. Keys the collator ranks
// equal fall back to byte order, and identical keys keep their input order.
func BuildDocument(meta DocumentMeta, entries []domain.DictionaryEntry, generatedAt time.Time) domain.DictionaryDocument {
	type keyed struct {
		key   string
		entry domain.DictionaryEntry
	}
	tmp := make([]keyed, len(entries))
	for i, e := range entries {
		tmp[i] = keyed{key: e.Key(), entry: e}
	}
	coll := collate.New(language.French)
	slices.SortStableFunc(tmp, func(a, b keyed) int {
		if c := coll.CompareString(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.key, b.key)
	})

	words := make([]domain.DictionaryEntry, len(tmp))
	for i, k := range tmp {
		words[i] = k.entry
	}

	return domain.DictionaryDocument{
		Name:        meta.Name,
		Description: meta.Description,
		Count:       len(words),
		Source:      meta.Source,
		License:     meta.License,
		Version:     meta.Version,
		GeneratedAt: formatTimestamp(generatedAt),
		Words:       words,
	}
}

// SplitByCategory derives one document per part-of-speech category present
// in doc. An entry carrying several categories appears in each of them.
// Order follows domain.AllPOSCategories; empty categories are omitted.
func SplitByCategory(meta DocumentMeta, doc domain.DictionaryDocument) []CategoryDocument {
	var out []CategoryDocument
	for _, c := range domain.AllPOSCategories {
		var words []domain.DictionaryEntry
		for i := range doc.Words {
			if doc.Words[i].HasCategory(c) {
				words = append(words, doc.Words[i])
			}
		}
		if len(words) == 0 {
			continue
		}

		part := doc
		part.Name = meta.Name + " - " + c.DisplayName()
		part.POS = c
		part.Count = len(words)
		part.Words = words
		out = append(out, CategoryDocument{
			FileName: meta.ID + "_" + c.String() + ".json",
			Document: part,
		})
	}
	return out
}

// IndexRecordFor builds the index record describing doc.
func IndexRecordFor(meta DocumentMeta, doc domain.DictionaryDocument) domain.IndexRecord {
	desc := meta.IndexDescription
	if desc == "" {
		desc = meta.Description
	}
	return domain.IndexRecord{
		ID:          meta.ID,
		Name:        meta.Name,
		Level:       meta.Level,
		Count:       doc.Count,
		Description: desc,
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
