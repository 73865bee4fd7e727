package domain

// PartOfSpeechTag is one grammatical label attached to a headword,
// e.g. {"v. t. ind.", "间接及物动词", verb}.
type PartOfSpeechTag struct {
	Abbr     string      `json:"abbr"`
	Full     string      `json:"full"`
	Category POSCategory `json:"category"`
}

// Example is a usage sentence with an optional Chinese translation.
type Example struct {
	Source      string `json:"fr"`
	Translation string `json:"zh,omitempty"`
}

// Sense is one meaning of a headword.
type Sense struct {
	Index    int       `json:"index,omitempty"`
	Category string    `json:"category,omitempty"`
	Text     string    `json:"text"`
	Examples []Example `json:"examples,omitempty"`
}

// DictionaryEntry is a normalized dictionary record for a single headword.
type DictionaryEntry struct {
	Word           string            `json:"word"`
	Phonetic       string            `json:"phonetic,omitempty"`
	POS            []PartOfSpeechTag `json:"pos"`
	Gender         Gender            `json:"gender,omitempty"`
	VerbType       VerbSubtype       `json:"verb_type,omitempty"`
	PastParticiple string            `json:"past_participle,omitempty"`
	ExtraInfo      string            `json:"extra_info,omitempty"`
	Conjugation    string            `json:"conjugation,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Definitions    []Sense           `json:"definitions"`
}

// Key returns the normalized headword the entry is deduplicated under.
func (e *DictionaryEntry) Key() string {
	return HeadwordKey(e.Word)
}

// HasPOS reports whether a tag with the given abbreviation is attached.
func (e *DictionaryEntry) HasPOS(abbr string) bool {
	for _, p := range e.POS {
		if p.Abbr == abbr {
			return true
		}
	}
	return false
}

// HasCategory reports whether any attached tag belongs to category c.
func (e *DictionaryEntry) HasCategory(c POSCategory) bool {
	for _, p := range e.POS {
		if p.Category == c {
			return true
		}
	}
	return false
}

// HasDefinition reports whether a sense with exactly this text exists.
func (e *DictionaryEntry) HasDefinition(text string) bool {
	for _, s := range e.Definitions {
		if s.Text == text {
			return true
		}
	}
	return false
}

// DictionaryDocument is the JSON document written once per source per run.
type DictionaryDocument struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	POS         POSCategory       `json:"pos,omitempty"`
	Count       int               `json:"count"`
	Source      string            `json:"source,omitempty"`
	License     string            `json:"license,omitempty"`
	Version     string            `json:"version,omitempty"`
	GeneratedAt string            `json:"generated_at,omitempty"`
	Words       []DictionaryEntry `json:"words"`
}

// IndexRecord describes one dictionary in the shared index file.
type IndexRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}
