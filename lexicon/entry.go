package lexicon

import (
	"github.com/wiktlex/wiktlex/grid"
	"github.com/wiktlex/wiktlex/orderedset"
)

// Definition is one sense line under a part-of-speech heading. Lemma is the
// linked canonical form when the sense is an inflection reference
// ("plural of mile" → "mile"); empty when the sense defines the word itself.
// The first definition of a heading carries the head word in Text.
type Definition struct {
	Text  string
	Lemma string
}

// Entry holds everything recorded for one word in one language.
// Entries are owned by the Store: read freely, mutate only through the
// Store's Merge operations so writes stay serialized.
type Entry struct {
	Etymology     []string
	Pronunciation []string
	Declension    grid.Declension

	defs     map[Heading][]Definition
	defOrder []Heading
}

// Definitions returns the definition pairs under a part-of-speech heading,
// in merge order. Nil when the heading is absent.
func (e *Entry) Definitions(h Heading) []Definition {
	out := make([]Definition, len(e.defs[h]))
	copy(out, e.defs[h])
	if len(out) == 0 {
		return nil
	}
	return out
}

// PartsOfSpeech returns the entry's part-of-speech headings in first-seen
// order.
func (e *Entry) PartsOfSpeech() []Heading {
	out := make([]Heading, len(e.defOrder))
	copy(out, e.defOrder)
	return out
}

// HasDeclension reports whether a non-empty declension was recorded.
func (e *Entry) HasDeclension() bool { return len(e.Declension) > 0 }

func (e *Entry) mergeEtymology(roots []string) {
	e.Etymology = orderedset.Merge(e.Etymology, roots)
}

func (e *Entry) mergePronunciation(ipas []string) {
	e.Pronunciation = orderedset.Merge(e.Pronunciation, ipas)
}

func (e *Entry) mergeDeclension(d grid.Declension) {
	if e.Declension == nil {
		e.Declension = make(grid.Declension)
	}
	e.Declension.Merge(d)
}

func (e *Entry) mergeDefinitions(h Heading, defs []Definition) {
	if len(defs) == 0 {
		return
	}
	if e.defs == nil {
		e.defs = make(map[Heading][]Definition)
	}
	if _, ok := e.defs[h]; !ok {
		e.defOrder = append(e.defOrder, h)
	}
	e.defs[h] = orderedset.Merge(e.defs[h], defs)
}
