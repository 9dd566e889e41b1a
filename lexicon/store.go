package lexicon

import (
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"

	"github.com/wiktlex/wiktlex/grid"
	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/orderedset"
)

var titleCaser = cases.Title(xlang.Und)

// Store is the in-memory lexical store: word → language → entry. Entries are
// created lazily on first write (or GetOrCreate) and never removed during a
// session. Reads may run concurrently; all writes take the store lock so
// merges stay idempotent.
type Store struct {
	mu     sync.RWMutex
	words  map[string]map[language.Language]*Entry
	logger *slog.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the store's logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.logger = l } }

// NewStore returns an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		words:  make(map[string]map[language.Language]*Entry),
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Len returns the number of words with at least one entry.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Words returns every stored word, unordered.
func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	return out
}

// Languages returns the languages recorded for word, unordered.
func (s *Store) Languages(word string) []language.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]language.Language, 0, len(s.words[word]))
	for l := range s.words[word] {
		out = append(out, l)
	}
	return out
}

// Lookup returns the entry for (word, lang) without creating one.
func (s *Store) Lookup(word string, lang language.Language) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.words[word][lang]
	return e, ok
}

// GetOrCreate returns the entry for (word, lang), creating an empty one on
// first access. Lookup-only paths must use Lookup instead.
func (s *Store) GetOrCreate(word string, lang language.Language) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(word, lang)
}

func (s *Store) getOrCreateLocked(word string, lang language.Language) *Entry {
	byLang, ok := s.words[word]
	if !ok {
		byLang = make(map[language.Language]*Entry)
		s.words[word] = byLang
	}
	e, ok := byLang[lang]
	if !ok {
		e = &Entry{}
		byLang[lang] = e
	}
	return e
}

// EntryWord returns the capitalization variant of word that has an entry for
// lang, probing the word as given, lowercased, then Title-cased. Falls back
// to word unchanged. Case matters: "Bem" and "bem" are different pages.
func (s *Store) EntryWord(word string, lang language.Language) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, probe := range []string{word, strings.ToLower(word), titleCaser.String(word)} {
		if _, ok := s.words[probe][lang]; ok {
			return probe
		}
	}
	return word
}

// MergeEtymology unions roots into the Etymology content of (word, lang).
func (s *Store) MergeEtymology(word string, lang language.Language, roots []string) {
	if len(roots) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(word, lang).mergeEtymology(roots)
}

// MergePronunciation unions ipas into the Pronunciation content of
// (word, lang).
func (s *Store) MergePronunciation(word string, lang language.Language, ipas []string) {
	if len(ipas) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(word, lang).mergePronunciation(ipas)
}

// MergeDefinitions unions definition pairs under a part-of-speech heading.
func (s *Store) MergeDefinitions(word string, lang language.Language, h Heading, defs []Definition) {
	if !h.IsPartOfSpeech() {
		s.logger.Warn("merge definitions under non-pos heading dropped",
			"word", word, "heading", string(h))
		return
	}
	if len(defs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(word, lang).mergeDefinitions(h, defs)
}

// MergeDeclension unions a declension mapping into (word, lang).
func (s *Store) MergeDeclension(word string, lang language.Language, d grid.Declension) {
	if len(d) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(word, lang).mergeDeclension(d)
}

// Etymology returns the etymological roots of (word, lang); nil when absent.
func (s *Store) Etymology(word string, lang language.Language) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.words[word][lang]
	if !ok {
		return nil
	}
	return append([]string(nil), e.Etymology...)
}

// Pronunciation returns the IPA pronunciations of (word, lang); nil when
// absent.
func (s *Store) Pronunciation(word string, lang language.Language) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.words[word][lang]
	if !ok {
		return nil
	}
	return append([]string(nil), e.Pronunciation...)
}

// Declension returns the declension of (word, lang). ok distinguishes "never
// recorded" from an empty mapping.
func (s *Store) Declension(word string, lang language.Language) (grid.Declension, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.words[word][lang]
	if !ok || len(e.Declension) == 0 {
		return nil, false
	}
	out := make(grid.Declension)
	out.Merge(e.Declension)
	return out, true
}

// Definitions returns the definition pairs of (word, lang) under h, in merge
// order; nil when absent. The slice is a copy, safe to hold across merges.
func (s *Store) Definitions(word string, lang language.Language, h Heading) []Definition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.words[word][lang]
	if !ok {
		return nil
	}
	return e.Definitions(h)
}

// PartsOfSpeech returns the part-of-speech headings of (word, lang) in
// first-seen order; empty when absent.
func (s *Store) PartsOfSpeech(word string, lang language.Language) []Heading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.words[word][lang]
	if !ok {
		return nil
	}
	return e.PartsOfSpeech()
}

// HeadWords returns the head word of every allowed part-of-speech heading:
// the lemma paired with the first definition of each heading, when set.
func (s *Store) HeadWords(word string, lang language.Language, poses []Heading) []string {
	allowed := posFilter(poses)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.words[word][lang]
	if !ok {
		return nil
	}
	heads := orderedset.New[string]()
	for _, h := range e.PartsOfSpeech() {
		if !allowed[h] {
			continue
		}
		defs := e.defs[h]
		if len(defs) == 0 {
			continue
		}
		if defs[0].Lemma != "" {
			heads.Add(defs[0].Lemma)
		}
	}
	return heads.Items()
}

// StemWords returns the stem words of every allowed part-of-speech heading:
// the lemma of every definition except the first (whose lemma is the head
// word, not a stem), when set.
func (s *Store) StemWords(word string, lang language.Language, poses []Heading) []string {
	allowed := posFilter(poses)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.words[word][lang]
	if !ok {
		return nil
	}
	stems := orderedset.New[string]()
	for _, h := range e.PartsOfSpeech() {
		if !allowed[h] {
			continue
		}
		defs := e.defs[h]
		for i := 1; i < len(defs); i++ {
			if defs[i].Lemma != "" {
				stems.Add(defs[i].Lemma)
			}
		}
	}
	return stems.Items()
}

// AllInflections inverts every declension recorded for lang: inflected form →
// lemma words carrying it.
func (s *Store) AllInflections(lang language.Language) map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]string)
	for word, byLang := range s.words {
		e, ok := byLang[lang]
		if !ok || !e.HasDeclension() {
			continue
		}
		for _, form := range e.Declension.Forms() {
			out[form] = orderedset.Merge(out[form], []string{word})
		}
	}
	return out
}

// posFilter builds the allowed-heading set; nil poses means every part of
// speech.
func posFilter(poses []Heading) map[Heading]bool {
	if poses == nil {
		poses = PartsOfSpeech()
	}
	m := make(map[Heading]bool, len(poses))
	for _, h := range poses {
		m[h] = true
	}
	return m
}
