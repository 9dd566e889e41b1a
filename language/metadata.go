package language

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Metadata caches alphabets and frequency lexica per language. It replaces
// process-wide shared tables with an explicit cache handed to each component;
// writes go through the mutex, one writer per language key.
type Metadata struct {
	mu        sync.RWMutex
	alphabets map[Language]map[rune]bool
	lexica    map[Language]map[string]bool
	common    map[Language][]string
}

// NewMetadata returns an empty cache.
func NewMetadata() *Metadata {
	return &Metadata{
		alphabets: make(map[Language]map[rune]bool),
		lexica:    make(map[Language]map[string]bool),
		common:    make(map[Language][]string),
	}
}

// SetAlphabet records the letters of lang's alphabet. Upper and lower case
// variants of every letter are added.
func (m *Metadata) SetAlphabet(lang Language, letters []string) {
	set := make(map[rune]bool)
	for _, l := range letters {
		for _, r := range l {
			set[r] = true
		}
		for _, r := range strings.ToLower(l) {
			set[r] = true
		}
		for _, r := range strings.ToUpper(l) {
			set[r] = true
		}
	}
	m.mu.Lock()
	m.alphabets[lang] = set
	m.mu.Unlock()
}

// Alphabet returns the recorded letters of lang, lexically sorted runes as
// strings. Empty when unrecorded.
func (m *Metadata) Alphabet(lang Language) []string {
	m.mu.RLock()
	set := m.alphabets[lang]
	m.mu.RUnlock()
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, string(r))
	}
	slices.Sort(out)
	return out
}

// SetLexicon records lang's word list in frequency order.
func (m *Metadata) SetLexicon(lang Language, words []string) {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	m.mu.Lock()
	m.lexica[lang] = set
	m.common[lang] = append([]string(nil), words...)
	m.mu.Unlock()
}

// LoadLexicon parses a plaintext frequency list ("word count" per line, most
// frequent first) into lang's lexicon. lim > 0 caps the number of lines read.
func (m *Metadata) LoadLexicon(lang Language, r io.Reader, lim int) error {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word, _, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		if word == "" {
			continue
		}
		words = append(words, word)
		if lim > 0 && len(words) >= lim {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("language: read lexicon for %s: %w", lang, err)
	}
	m.SetLexicon(lang, words)
	return nil
}

// CommonWords returns up to lim of lang's most frequent words, most frequent
// first. lim <= 0 returns all.
func (m *Metadata) CommonWords(lang Language, lim int) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	words := m.common[lang]
	if lim > 0 && lim < len(words) {
		words = words[:lim]
	}
	return append([]string(nil), words...)
}

// InLexicon reports whether word is in lang's lexicon, or true when the
// lexicon is empty/unknown (membership undetermined).
func (m *Metadata) InLexicon(word string, lang Language) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lex := m.lexica[lang]
	return len(lex) == 0 || lex[word]
}

// Verify reports whether word plausibly belongs to lang: every rune drawn
// from the recorded alphabet (an unrecorded alphabet passes, undetermined)
// and the word present in the lexicon per InLexicon.
func (m *Metadata) Verify(word string, lang Language) bool {
	m.mu.RLock()
	alphabet := m.alphabets[lang]
	m.mu.RUnlock()
	if len(alphabet) > 0 {
		for _, r := range word {
			if !alphabet[r] {
				return false
			}
		}
	}
	return m.InLexicon(word, lang)
}
