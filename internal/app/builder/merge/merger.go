// Package merge deduplicates dictionary entries by normalized headword.
package merge

import (
	"slices"

	"github.com/heartmarshall/frenchdict/internal/domain"
)

// Stats counts what the merger did.
type Stats struct {
	Added         int
	Merged        int
	POSAdded      int
	SensesAdded   int
	SensesSkipped int
	Rejected      int
}

// Merger folds entries sharing a normalized headword into one. The first
// entry seen for a key is primary; later ones only contribute missing parts.
// A Merger holds per-run state and is not safe for concurrent use.
type Merger struct {
	index   map[string]int
	entries []domain.DictionaryEntry
	stats   Stats
}

// New creates an empty Merger.
func New() *Merger {
	return &Merger{index: make(map[string]int)}
}

// Add merges e into the set. Entries whose headword normalizes to an empty
// key are rejected and reported as false.
func (m *Merger) Add(e domain.DictionaryEntry) bool {
	key := e.Key()
	if key == "" {
		m.stats.Rejected++
		return false
	}

	idx, exists := m.index[key]
	if !exists {
		m.index[key] = len(m.entries)
		m.entries = append(m.entries, clone(e))
		m.stats.Added++
		return true
	}

	m.stats.Merged++
	m.mergeInto(&m.entries[idx], e)
	return true
}

// AddAll merges every entry in order.
func (m *Merger) AddAll(entries []domain.DictionaryEntry) {
	for _, e := range entries {
		m.Add(e)
	}
}

// Entries returns the merged entries in order of first appearance.
func (m *Merger) Entries() []domain.DictionaryEntry {
	return m.entries
}

// Len returns the number of distinct headwords.
func (m *Merger) Len() int { return len(m.entries) }

// Stats returns the merge counters.
func (m *Merger) Stats() Stats { return m.stats }

func (m *Merger) mergeInto(dst *domain.DictionaryEntry, src domain.DictionaryEntry) {
	for _, p := range src.POS {
		if dst.HasPOS(p.Abbr) {
			continue
		}
		dst.POS = append(dst.POS, p)
		m.stats.POSAdded++
	}

	for _, s := range src.Definitions {
		if dst.HasDefinition(s.Text) {
			m.stats.SensesSkipped++
			continue
		}
		dst.Definitions = append(dst.Definitions, cloneSense(s))
		m.stats.SensesAdded++
	}

	if dst.Gender == domain.GenderNone {
		dst.Gender = src.Gender
	}
	if dst.VerbType == domain.VerbSubtypeNone {
		dst.VerbType = src.VerbType
	}
	if dst.PastParticiple == "" {
		dst.PastParticiple = src.PastParticiple
	}
	if dst.Phonetic == "" {
		dst.Phonetic = src.Phonetic
	}
	if dst.ExtraInfo == "" {
		dst.ExtraInfo = src.ExtraInfo
	}
	if dst.Conjugation == "" {
		dst.Conjugation = src.Conjugation
	}

	for _, t := range src.Tags {
		if !slices.Contains(dst.Tags, t) {
			dst.Tags = append(dst.Tags, t)
		}
	}
}

// clone copies the slices of e so later merges never alias caller data.
func clone(e domain.DictionaryEntry) domain.DictionaryEntry {
	e.POS = slices.Clone(e.POS)
	e.Tags = slices.Clone(e.Tags)
	defs := make([]domain.Sense, len(e.Definitions))
	for i, s := range e.Definitions {
		defs[i] = cloneSense(s)
	}
	e.Definitions = defs
	return e
}

func cloneSense(s domain.Sense) domain.Sense {
	s.Examples = slices.Clone(s.Examples)
	return s
}
