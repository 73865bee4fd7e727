package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/frenchdict/internal/app/builder/lexicon"
	"github.com/heartmarshall/frenchdict/internal/domain"
)

func testEntry(word string, abbrs ...string) domain.DictionaryEntry {
	e := domain.DictionaryEntry{Word: word}
	for _, a := range abbrs {
		tag := lexicon.MustLookup(a).Tag()
		e.POS = append(e.POS, tag)
		e.Definitions = append(e.Definitions, domain.Sense{Text: tag.Full})
	}
	return e
}

var testMeta = DocumentMeta{
	ID:          "gonggong",
	Name:        "公共法语学习词典",
	Description: "long description",
	Level:       "A1-B2",
	License:     "CC-BY",
}

func TestBuildDocument_SortsByNormalizedKey(t *testing.T) {
	entries := []domain.DictionaryEntry{
		testEntry("zèbre", "n. m."),
		testEntry("Été", "n. m."),
		testEntry("abeille", "n. f."),
		testEntry("Bonjour", "n. m."),
	}

	doc := BuildDocument(testMeta, entries, time.Time{})

	got := make([]string, len(doc.Words))
	for i, w := range doc.Words {
		got[i] = w.Word
	}
	assert.Equal(t, []string{"abeille", "Bonjour", "Été", "zèbre"}, got)
	assert.Equal(t, 4, doc.Count)
	assert.Equal(t, "公共法语学习词典", doc.Name)
	assert.Equal(t, "CC-BY", doc.License)
	assert.Empty(t, doc.GeneratedAt)
	assert.Equal(t, "zèbre", entries[0].Word, "input must not be reordered")
}

func TestBuildDocument_FrenchOrder(t *testing.T) {
	entries := []domain.DictionaryEntry{
		testEntry("fable", "n. f."),
		testEntry("école", "n. f."),
		testEntry("eau", "n. f."),
		testEntry("Œuf", "n. m."),
		testEntry("oasis", "n. f."),
		testEntry("pain", "n. m."),
		testEntry("chat", "n. m."),
		testEntry("Chat", "n. m."),
	}

	doc := BuildDocument(testMeta, entries, time.Time{})

	got := make([]string, len(doc.Words))
	for i, w := range doc.Words {
		got[i] = w.Word
	}
	assert.Equal(t, []string{"chat", "Chat", "eau", "école", "fable", "oasis", "Œuf", "pain"}, got)
}

func TestBuildDocument_Timestamp(t *testing.T) {
	at := time.Date(2025, 1, 2, 9, 30, 0, 0, time.FixedZone("CST", 8*3600))

	doc := BuildDocument(testMeta, nil, at)

	assert.Equal(t, "2025-01-02T01:30:00Z", doc.GeneratedAt)
	assert.NotNil(t, doc.Words)
	assert.Zero(t, doc.Count)
}

func TestSplitByCategory(t *testing.T) {
	doc := BuildDocument(testMeta, []domain.DictionaryEntry{
		testEntry("a", "prép.", "adv."),
		testEntry("chat", "n. m."),
		testEntry("aller", "v. i."),
	}, time.Unix(0, 0))

	parts := SplitByCategory(testMeta, doc)

	require.Len(t, parts, 4)
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = p.FileName
	}
	assert.Equal(t, []string{
		"gonggong_noun.json",
		"gonggong_verb.json",
		"gonggong_adv.json",
		"gonggong_prep.json",
	}, names)

	noun := parts[0].Document
	assert.Equal(t, "公共法语学习词典 - 名词", noun.Name)
	assert.Equal(t, domain.POSCategoryNoun, noun.POS)
	assert.Equal(t, 1, noun.Count)
	assert.Equal(t, doc.GeneratedAt, noun.GeneratedAt)

	assert.Equal(t, "a", parts[2].Document.Words[0].Word)
	assert.Equal(t, "a", parts[3].Document.Words[0].Word)
	assert.Equal(t, 3, doc.Count, "split must not alter the source document")
}

func TestIndexRecordFor(t *testing.T) {
	doc := domain.DictionaryDocument{Count: 42}

	rec := IndexRecordFor(testMeta, doc)
	assert.Equal(t, domain.IndexRecord{
		ID:          "gonggong",
		Name:        "公共法语学习词典",
		Level:       "A1-B2",
		Count:       42,
		Description: "long description",
	}, rec)

	meta := testMeta
	meta.IndexDescription = "short"
	assert.Equal(t, "short", IndexRecordFor(meta, doc).Description)
}

func TestDocumentFileName(t *testing.T) {
	assert.Equal(t, "french_dict.json", DocumentFileName("french_dict"))
}
