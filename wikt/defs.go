package wikt

import (
	"strings"

	"github.com/wiktlex/wiktlex/lexicon"
	"github.com/wiktlex/wiktlex/markup"
)

// Quotation sublists, usage notes and reference superscripts nested inside a
// sense line are not part of the definition text.
var defSkipTags = []string{"sup", "ul", "dl", "abbr"}

// sectionDefinitions extracts a part-of-speech section's definition pairs.
// The strong tag of the headword line comes first, each li sense after it.
// A sense linking a canonical form (a mention or form-of-definition-link
// span) carries that form as its lemma, parentheticals stripped.
func sectionDefinitions(sec markup.Section) []lexicon.Definition {
	var defs []lexicon.Definition
	for _, nd := range sec.FindAllTags("strong", "li") {
		// Only top-level sense lines count: an li inside another li is a
		// quotation or usage sublist, not a sense of its own.
		if nd.Ancestor(isListItem).Valid() {
			continue
		}
		text := nd.TextExcluding(defSkipTags)
		if text == "" {
			continue
		}
		lemma, ok := senseLemma(nd)
		if !ok {
			continue
		}
		defs = append(defs, lexicon.Definition{Text: text, Lemma: lemma})
	}
	return defs
}

func isListItem(nd markup.Node) bool { return nd.Tag() == "li" }

// senseLemma returns the lemma linked by a sense line, "" when the sense
// defines the word itself. ok is false when a lemma span exists but is empty,
// which marks a malformed line.
func senseLemma(nd markup.Node) (string, bool) {
	span := nd.Find(func(c markup.Node) bool {
		return c.Tag() == "span" &&
			(c.HasClass("mention") || c.HasClass("form-of-definition-link"))
	})
	if !span.Valid() {
		return "", true
	}
	text := span.TextExcluding(defSkipTags)
	if text == "" {
		return "", false
	}
	return strings.TrimSpace(markup.CleanParentheticals(text)), true
}
