package txtdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/frenchdict/internal/app/builder/lexicon"
	"github.com/heartmarshall/frenchdict/internal/domain"
)

var nounM = lexicon.MustLookup("n. m.").Tag()

func TestParseBody_LeadOnly(t *testing.T) {
	senses := ParseBody("放弃", nil, nounM)

	require.Len(t, senses, 1)
	assert.Equal(t, "放弃", senses[0].Text)
	assert.Empty(t, senses[0].Examples)
}

func TestParseBody_NumberedSensesWithExamples(t *testing.T) {
	lines := []string{
		"1 抛弃: ◇ l'abandon d'un projet 放弃计划 ◇ abandon de poste 擅离职守",
		"2 [转] 放任: vivre dans l'abandon 生活放任",
	}

	senses := ParseBody("", lines, nounM)

	require.Len(t, senses, 2)

	assert.Equal(t, 1, senses[0].Index)
	assert.Equal(t, "抛弃", senses[0].Text)
	assert.Equal(t, []domain.Example{
		{Source: "l'abandon d'un projet", Translation: "放弃计划"},
		{Source: "abandon de poste", Translation: "擅离职守"},
	}, senses[0].Examples)

	assert.Equal(t, 2, senses[1].Index)
	assert.Equal(t, "转", senses[1].Category)
	assert.Equal(t, "放任", senses[1].Text)
	assert.Equal(t, []domain.Example{
		{Source: "vivre dans l'abandon", Translation: "生活放任"},
	}, senses[1].Examples)
}

func TestParseBody_FallbackSense(t *testing.T) {
	senses := ParseBody("", nil, nounM)

	require.Len(t, senses, 1)
	assert.Equal(t, "阳性名词", senses[0].Text)
}

func TestParseBody_StrayLayoutTextIgnored(t *testing.T) {
	senses := ParseBody("", []string{"hello world"}, nounM)

	require.Len(t, senses, 1)
	assert.Equal(t, nounM.Full, senses[0].Text)
}

func TestParseBody_ContinuationAppended(t *testing.T) {
	senses := ParseBody("", []string{"1 离开", "quitter la maison 离开家", "2 出发"}, nounM)

	require.Len(t, senses, 2)
	assert.Equal(t, "离开 quitter la maison 离开家", senses[0].Text)
	assert.Equal(t, "出发", senses[1].Text)
}

func TestParseBody_ContinuationAfterExamples(t *testing.T) {
	senses := ParseBody("", []string{"1 书: ◇ Un livre.一本书。", "suite de la définition"}, nounM)

	require.Len(t, senses, 1)
	assert.Equal(t, "书 suite de la définition", senses[0].Text)
	assert.Equal(t, []domain.Example{{Source: "Un livre.", Translation: "一本书。"}}, senses[0].Examples)
}

func TestParseBody_ContinuationOfLead(t *testing.T) {
	senses := ParseBody("书: ◇ Un livre.一本书。", []string{"suite", "◇ deux livres 两本书"}, nounM)

	require.Len(t, senses, 1)
	assert.Equal(t, "书 suite", senses[0].Text)
	assert.Equal(t, []domain.Example{
		{Source: "Un livre.", Translation: "一本书。"},
		{Source: "deux livres", Translation: "两本书"},
	}, senses[0].Examples)
}

func TestParseBody_StopsAtNextEntry(t *testing.T) {
	senses := ParseBody("", []string{"1 甲", ">autre n. m. 乙", "2 丙"}, nounM)

	require.Len(t, senses, 1)
	assert.Equal(t, "甲", senses[0].Text)
}

func TestParseBody_ExamplesWithoutDefinition(t *testing.T) {
	senses := ParseBody("", []string{"1 : ◇ bonjour 你好"}, nounM)

	require.Len(t, senses, 1)
	assert.Equal(t, nounM.Full, senses[0].Text)
	assert.Equal(t, []domain.Example{{Source: "bonjour", Translation: "你好"}}, senses[0].Examples)
}

func TestParseBody_StripsLeadingAbbreviation(t *testing.T) {
	adj := lexicon.MustLookup("a.").Tag()

	senses := ParseBody("a.缺席的", nil, adj)
	require.Len(t, senses, 1)
	assert.Equal(t, "缺席的", senses[0].Text)

	senses = ParseBody("", []string{"1 a. 好的"}, adj)
	require.Len(t, senses, 1)
	assert.Equal(t, "好的", senses[0].Text)
}

func TestParseBody_LeadBeforeNumberedSenses(t *testing.T) {
	senses := ParseBody("总释义", []string{"1 甲义", "2 乙义"}, nounM)

	require.Len(t, senses, 3)
	assert.Equal(t, "总释义", senses[0].Text)
	assert.Zero(t, senses[0].Index)
	assert.Equal(t, "甲义", senses[1].Text)
	assert.Equal(t, "乙义", senses[2].Text)
}

func TestParseBody_CleansPageMarkers(t *testing.T) {
	senses := ParseBody("abc <12> 定义", nil, nounM)

	require.Len(t, senses, 1)
	assert.Equal(t, "abc 定义", senses[0].Text)
}

func TestSplitDefinition(t *testing.T) {
	tests := []struct {
		in, wantDef, wantSpan string
	}{
		{"抛弃: ◇ x 甲", "抛弃", "◇ x 甲"},
		{"抛弃：例句", "抛弃", "例句"},
		{"抛弃 ◇ x 甲", "抛弃", "◇ x 甲"},
		{"抛弃", "抛弃", ""},
	}
	for _, tt := range tests {
		def, span := splitDefinition(tt.in)
		assert.Equal(t, tt.wantDef, def, tt.in)
		assert.Equal(t, tt.wantSpan, span, tt.in)
	}
}
