package domain

// POSCategory is the coarse grammatical category a part-of-speech tag belongs to.
type POSCategory string

const (
	POSCategoryNoun         POSCategory = "noun"
	POSCategoryVerb         POSCategory = "verb"
	POSCategoryAdjective    POSCategory = "adj"
	POSCategoryAdverb       POSCategory = "adv"
	POSCategoryPreposition  POSCategory = "prep"
	POSCategoryConjunction  POSCategory = "conj"
	POSCategoryPronoun      POSCategory = "pron"
	POSCategoryDeterminer   POSCategory = "det"
	POSCategoryInterjection POSCategory = "intj"
)

func (c POSCategory) String() string { return string(c) }

func (c POSCategory) IsValid() bool {
	switch c {
	case POSCategoryNoun, POSCategoryVerb, POSCategoryAdjective, POSCategoryAdverb,
		POSCategoryPreposition, POSCategoryConjunction, POSCategoryPronoun,
		POSCategoryDeterminer, POSCategoryInterjection:
		return true
	}
	return false
}

// DisplayName returns the Chinese label used in per-category document names.
func (c POSCategory) DisplayName() string {
	switch c {
	case POSCategoryNoun:
		return "名词"
	case POSCategoryVerb:
		return "动词"
	case POSCategoryAdjective:
		return "形容词"
	case POSCategoryAdverb:
		return "副词"
	case POSCategoryPreposition:
		return "介词"
	case POSCategoryConjunction:
		return "连词"
	case POSCategoryPronoun:
		return "代词"
	case POSCategoryDeterminer:
		return "限定词"
	case POSCategoryInterjection:
		return "感叹词"
	}
	return string(c)
}

// AllPOSCategories lists categories in a stable order.
var AllPOSCategories = []POSCategory{
	POSCategoryNoun,
	POSCategoryVerb,
	POSCategoryAdjective,
	POSCategoryAdverb,
	POSCategoryPreposition,
	POSCategoryConjunction,
	POSCategoryPronoun,
	POSCategoryDeterminer,
	POSCategoryInterjection,
}

// Gender is the grammatical gender of a noun. The zero value means none.
type Gender string

const (
	GenderNone      Gender = ""
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderNone, GenderMasculine, GenderFeminine:
		return true
	}
	return false
}

// VerbSubtype is the valency/voice class of a verb. The zero value means none.
type VerbSubtype string

const (
	VerbSubtypeNone         VerbSubtype = ""
	VerbSubtypeTransitive   VerbSubtype = "transitive"
	VerbSubtypeIntransitive VerbSubtype = "intransitive"
	VerbSubtypeReflexive    VerbSubtype = "reflexive"
	VerbSubtypeAuxiliary    VerbSubtype = "auxiliary"
	VerbSubtypeImpersonal   VerbSubtype = "impersonal"
)

func (v VerbSubtype) String() string { return string(v) }

func (v VerbSubtype) IsValid() bool {
	switch v {
	case VerbSubtypeNone, VerbSubtypeTransitive, VerbSubtypeIntransitive,
		VerbSubtypeReflexive, VerbSubtypeAuxiliary, VerbSubtypeImpersonal:
		return true
	}
	return false
}
