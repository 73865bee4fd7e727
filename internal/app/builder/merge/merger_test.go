package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/frenchdict/internal/app/builder/lexicon"
	"github.com/heartmarshall/frenchdict/internal/app/builder/txtdict"
	"github.com/heartmarshall/frenchdict/internal/domain"
)

func entry(word, abbr string, defs ...string) domain.DictionaryEntry {
	a := lexicon.MustLookup(abbr)
	e := domain.DictionaryEntry{
		Word:     word,
		POS:      []domain.PartOfSpeechTag{a.Tag()},
		Gender:   a.Gender,
		VerbType: a.VerbType,
	}
	for _, d := range defs {
		e.Definitions = append(e.Definitions, domain.Sense{Text: d})
	}
	return e
}

func TestMerger_SameHeadwordDifferentPOS(t *testing.T) {
	res, err := txtdict.Parse(strings.NewReader(">mot a. defA\n>mot v. defB\n"), txtdict.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)

	m := New()
	m.AddAll(res.Entries)

	require.Equal(t, 1, m.Len())
	got := m.Entries()[0]
	assert.Equal(t, "mot", got.Word)
	require.Len(t, got.POS, 2)
	assert.Equal(t, "a.", got.POS[0].Abbr)
	assert.Equal(t, "v.", got.POS[1].Abbr)
	require.Len(t, got.Definitions, 2)
	assert.Equal(t, "defA", got.Definitions[0].Text)
	assert.Equal(t, "defB", got.Definitions[1].Text)
}

func TestMerger_CaseInsensitiveKeyFirstSpellingWins(t *testing.T) {
	m := New()
	m.Add(entry("bonjour", "n. m.", "你好"))
	m.Add(entry("Bonjour", "n. m.", "问候", "你好"))

	require.Equal(t, 1, m.Len())
	got := m.Entries()[0]
	assert.Equal(t, "bonjour", got.Word)
	assert.Len(t, got.POS, 1, "same abbreviation must not repeat")
	require.Len(t, got.Definitions, 2)
	assert.Equal(t, "你好", got.Definitions[0].Text)
	assert.Equal(t, "问候", got.Definitions[1].Text)

	st := m.Stats()
	assert.Equal(t, 1, st.Added)
	assert.Equal(t, 1, st.Merged)
	assert.Equal(t, 0, st.POSAdded)
	assert.Equal(t, 1, st.SensesAdded)
	assert.Equal(t, 1, st.SensesSkipped)
}

func TestMerger_FirstWinsForScalarFields(t *testing.T) {
	first := entry("livre", "n. m.", "书")
	first.Phonetic = "livr"
	second := entry("livre", "n. f.", "磅")
	second.Phonetic = "other"
	second.PastParticiple = "x"
	second.Conjugation = "1er groupe"

	m := New()
	m.Add(first)
	m.Add(second)

	got := m.Entries()[0]
	assert.Equal(t, domain.GenderMasculine, got.Gender)
	assert.Equal(t, "livr", got.Phonetic)
	assert.Equal(t, "x", got.PastParticiple, "missing fields are filled from later entries")
	assert.Equal(t, "1er groupe", got.Conjugation)
	assert.Equal(t, []string{"n. m.", "n. f."}, []string{got.POS[0].Abbr, got.POS[1].Abbr})
}

func TestMerger_FillsMissingGenderAndVerbType(t *testing.T) {
	m := New()
	m.Add(entry("tour", "n.", "塔"))
	m.Add(entry("tour", "n. f.", "塔楼"))
	m.Add(entry("aller", "v.", "去"))
	m.Add(entry("aller", "v. i.", "走"))

	require.Equal(t, 2, m.Len())
	assert.Equal(t, domain.GenderFeminine, m.Entries()[0].Gender)
	assert.Equal(t, domain.VerbSubtypeIntransitive, m.Entries()[1].VerbType)
}

func TestMerger_TagsUnion(t *testing.T) {
	a := entry("beau", "a.", "美的")
	a.Tags = []string{"masculine", "singular"}
	b := entry("beau", "a.", "美的")
	b.Tags = []string{"singular", "plural"}

	m := New()
	m.AddAll([]domain.DictionaryEntry{a, b})

	assert.Equal(t, []string{"masculine", "singular", "plural"}, m.Entries()[0].Tags)
}

func TestMerger_RejectsEmptyKey(t *testing.T) {
	m := New()
	assert.False(t, m.Add(domain.DictionaryEntry{Word: "   "}))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 1, m.Stats().Rejected)
}

func TestMerger_PreservesFirstAppearanceOrder(t *testing.T) {
	m := New()
	m.AddAll([]domain.DictionaryEntry{
		entry("zèbre", "n. m.", "斑马"),
		entry("abeille", "n. f.", "蜜蜂"),
		entry("Zèbre", "n. m.", "斑马纹"),
	})

	require.Equal(t, 2, m.Len())
	assert.Equal(t, "zèbre", m.Entries()[0].Word)
	assert.Equal(t, "abeille", m.Entries()[1].Word)
}

func TestMerger_DoesNotAliasInput(t *testing.T) {
	src := []domain.DictionaryEntry{entry("chat", "n. m.", "猫")}
	m := New()
	m.AddAll(src)
	m.Add(entry("chat", "n. m.", "公猫"))

	assert.Len(t, src[0].Definitions, 1)
	assert.Len(t, m.Entries()[0].Definitions, 2)
}

func TestMerger_UniquenessAndCompleteness(t *testing.T) {
	input := []domain.DictionaryEntry{
		entry("Été", "n. m.", "夏天"),
		entry("été", "n. m.", "夏季"),
		entry("ÉTÉ", "v.", "是(过去分词)"),
		entry("hiver", "n. m.", "冬天"),
	}

	m := New()
	m.AddAll(input)

	seen := make(map[string]bool)
	for _, e := range m.Entries() {
		key := e.Key()
		assert.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true
	}

	for _, in := range input {
		var merged *domain.DictionaryEntry
		for i := range m.Entries() {
			if m.Entries()[i].Key() == in.Key() {
				merged = &m.Entries()[i]
			}
		}
		require.NotNil(t, merged, in.Word)
		for _, p := range in.POS {
			assert.True(t, merged.HasPOS(p.Abbr), "%s lost %s", in.Word, p.Abbr)
		}
		for _, s := range in.Definitions {
			assert.True(t, merged.HasDefinition(s.Text), "%s lost %q", in.Word, s.Text)
		}
	}
}
