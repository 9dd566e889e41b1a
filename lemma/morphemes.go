package lemma

import (
	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/markup"
	"github.com/wiktlex/wiktlex/orderedset"
)

// Morphemes returns word's direct morphemes: its recorded etymology roots,
// after capitalization probing. Nil when no etymology is recorded.
func (r *Resolver) Morphemes(word string, lang language.Language) []string {
	word = r.store.EntryWord(word, lang)
	return r.store.Etymology(word, lang)
}

// AllMorphemes decomposes word transitively: a frontier traversal seeded with
// word, expanding each unvisited punctuation-free token through its direct
// morphemes. Affixes ("un-", "-able") are recorded but never expanded, and
// the visited set keeps etymology cycles from looping.
func (r *Resolver) AllMorphemes(word string, lang language.Language) []string {
	visited := make(map[string]bool)
	result := orderedset.New[string]()
	frontier := []string{word}

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		if cur == "" || visited[cur] || markup.ContainsPunct(cur) {
			continue
		}
		visited[cur] = true
		result.Add(cur)
		ms := r.Morphemes(cur, lang)
		result.Update(ms)
		frontier = append(frontier, ms...)
	}
	return result.Items()
}
