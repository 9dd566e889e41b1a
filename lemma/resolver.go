// Package lemma resolves inflected word forms to their canonical dictionary
// forms (lemmas) and decomposes words into morphemes through their etymology
// chains. The resolver only consults the store it is handed: on a miss it
// reports what it has, and the calling layer decides whether to fetch,
// populate and ask again.
package lemma

import (
	"log/slog"

	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/lexicon"
	"github.com/wiktlex/wiktlex/orderedset"
)

// Resolver answers lemma and morpheme queries against a lexical store,
// filtering candidates through per-language metadata.
type Resolver struct {
	store  *lexicon.Store
	meta   *language.Metadata
	logger *slog.Logger
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithLogger sets the resolver's logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option { return func(r *Resolver) { r.logger = l } }

// NewResolver returns a resolver over store. meta may be nil, disabling the
// language-membership filter.
func NewResolver(store *lexicon.Store, meta *language.Metadata, opts ...Option) *Resolver {
	r := &Resolver{store: store, meta: meta, logger: slog.Default()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Lemmas returns the candidate lemmas of word, first branch wins:
// a word with a recorded declension is its own lemma; otherwise the stem
// words of its definitions; otherwise its head words. poses restricts which
// part-of-speech headings contribute; nil means all. Candidates not passing
// the language-membership check are filtered out.
func (r *Resolver) Lemmas(word string, lang language.Language, poses []lexicon.Heading) []string {
	if word == "" {
		return nil
	}
	word = r.store.EntryWord(word, lang)

	set := orderedset.New[string]()
	if _, ok := r.store.Declension(word, lang); ok {
		set.Add(word)
	} else {
		set.Update(r.store.StemWords(word, lang, poses))
		if set.Len() == 0 {
			set.Update(r.store.HeadWords(word, lang, poses))
		}
	}

	var lemmas []string
	for _, lemma := range set.Items() {
		if r.verify(lemma, lang) {
			lemmas = append(lemmas, lemma)
		}
	}
	return lemmas
}

// Lemmatize returns word's first lemma, or word itself when none is found.
func (r *Resolver) Lemmatize(word string, lang language.Language, poses []lexicon.Heading) string {
	if lemmas := r.Lemmas(word, lang, poses); len(lemmas) > 0 {
		return lemmas[0]
	}
	return word
}

// Uninflect maps an inflected form back to the lemma word whose declension
// carries it, falling back to Lemmatize when no declension in the store
// contains the form.
func (r *Resolver) Uninflect(word string, lang language.Language) string {
	if owners := r.store.AllInflections(lang)[word]; len(owners) > 0 {
		return owners[0]
	}
	return r.Lemmatize(word, lang, nil)
}

func (r *Resolver) verify(word string, lang language.Language) bool {
	if r.meta == nil {
		return true
	}
	return r.meta.Verify(word, lang)
}
