// Package lexicon is the in-memory lexical store: word → language → heading →
// content, with merge-on-write semantics. New content is unioned into existing
// content, order-preserved and deduplicated, never destructively overwritten.
package lexicon

import "strings"

// Heading names one section of a word's language entry. The set is closed:
// unknown heading text is rejected at ingestion by ParseHeading.
type Heading string

// Non-part-of-speech headings.
const (
	Etymology     Heading = "Etymology"
	Pronunciation Heading = "Pronunciation"
	Declension    Heading = "Declension"
)

// Part-of-speech headings.
const (
	Noun         Heading = "Noun"
	Verb         Heading = "Verb"
	Adjective    Heading = "Adjective"
	Adverb       Heading = "Adverb"
	Preposition  Heading = "Preposition"
	Conjunction  Heading = "Conjunction"
	Interjection Heading = "Interjection"
	Morpheme     Heading = "Morpheme"
	Pronoun      Heading = "Pronoun"
	Phrase       Heading = "Phrase"
	Numeral      Heading = "Numeral"
	Particle     Heading = "Particle"
	Article      Heading = "Article"
	Participle   Heading = "Participle"
	Prefix       Heading = "Prefix"
	Suffix       Heading = "Suffix"
	Circumfix    Heading = "Circumfix"
	Interfix     Heading = "Interfix"
	Infix        Heading = "Infix"
)

var partsOfSpeech = []Heading{
	Noun, Verb, Adjective, Adverb, Preposition, Conjunction, Interjection,
	Morpheme, Pronoun, Phrase, Numeral, Particle, Article, Participle,
	Prefix, Suffix, Circumfix, Interfix, Infix,
}

var posSet = func() map[Heading]bool {
	m := make(map[Heading]bool, len(partsOfSpeech))
	for _, h := range partsOfSpeech {
		m[h] = true
	}
	return m
}()

// PartsOfSpeech returns all part-of-speech headings.
func PartsOfSpeech() []Heading {
	out := make([]Heading, len(partsOfSpeech))
	copy(out, partsOfSpeech)
	return out
}

// IsPartOfSpeech reports whether h is a part-of-speech heading.
func (h Heading) IsPartOfSpeech() bool { return posSet[h] }

// ParseHeading normalizes raw section-heading text into the closed heading
// set. Numbered variants ("Etymology 2", anchor ids like "Etymology_2") fold
// to their base heading, and inflection/conjugation sections are standardized
// as Declension. Unknown headings report false.
func ParseHeading(raw string) (Heading, bool) {
	name, _, _ := strings.Cut(strings.TrimSpace(raw), "_")
	name, _, _ = strings.Cut(name, " ")

	switch {
	case strings.HasPrefix(name, "Etym"):
		return Etymology, true
	case strings.HasPrefix(name, "Pronun"):
		return Pronunciation, true
	case strings.HasPrefix(name, "Declen"),
		strings.HasPrefix(name, "Inflec"),
		strings.HasPrefix(name, "Conjug"):
		return Declension, true
	}
	if posSet[Heading(name)] {
		return Heading(name), true
	}
	return "", false
}
