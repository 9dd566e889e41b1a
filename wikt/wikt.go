// Package wikt parses fetched dictionary pages into lexical content. A page
// is sliced into per-language sections by walking the mw-headline spans under
// its h3–h5 headings; each section is dispatched by heading kind (etymology,
// pronunciation, part of speech, declension) and the extracted content merges
// into the lexical store.
package wikt

import (
	"log/slog"
	"strings"

	"github.com/wiktlex/wiktlex/grid"
	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/lexicon"
	"github.com/wiktlex/wiktlex/markup"
	"github.com/wiktlex/wiktlex/orderedset"
)

// Sections after this h2 are site chrome, not word entries.
const navigationPrefix = "Navigation"

var headerTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
}

var entryHeaderTags = map[string]bool{"h3": true, "h4": true, "h5": true}

// Parser extracts lexical entries from parsed pages.
type Parser struct {
	logger *slog.Logger
}

// Option customises a Parser.
type Option func(*Parser)

// WithLogger sets the parser's logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option { return func(p *Parser) { p.logger = l } }

// NewParser returns a page parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: slog.Default()}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Entry is the content extracted for one language on one page.
type Entry struct {
	Etymology     []string
	Pronunciation []string
	Declension    grid.Declension

	Definitions map[lexicon.Heading][]lexicon.Definition
	POSOrder    []lexicon.Heading
}

func (e *Entry) addDefinitions(h lexicon.Heading, defs []lexicon.Definition) {
	if e.Definitions == nil {
		e.Definitions = make(map[lexicon.Heading][]lexicon.Definition)
	}
	if _, ok := e.Definitions[h]; !ok {
		e.POSOrder = append(e.POSOrder, h)
	}
	e.Definitions[h] = append(e.Definitions[h], defs...)
}

// Parsed maps each language found on a page to its extracted entry.
type Parsed map[language.Language]*Entry

func (pd Parsed) entry(lang language.Language) *Entry {
	e, ok := pd[lang]
	if !ok {
		e = &Entry{}
		pd[lang] = e
	}
	return e
}

// ParsePage extracts every entry on the page. want narrows extraction to one
// language; the zero value keeps all of them. The walk stops at the first
// heading under a Navigation h2.
func (p *Parser) ParsePage(root markup.Node, want language.Language) Parsed {
	parsed := make(Parsed)

	spans := root.FindAll(func(n markup.Node) bool {
		if n.Tag() != "span" || !n.HasClass("mw-headline") {
			return false
		}
		id, ok := n.Attr("id")
		if !ok {
			return false
		}
		_, desired := lexicon.ParseHeading(id)
		return desired
	})

	for _, span := range spans {
		langName := headingLanguage(span)
		if langName == "" {
			continue
		}
		if strings.HasPrefix(langName, navigationPrefix) {
			break
		}
		lang := language.Language(langName)
		if want != "" && lang != want {
			continue
		}

		headingEl := span.Ancestor(func(n markup.Node) bool { return entryHeaderTags[n.Tag()] })
		if !headingEl.Valid() {
			continue
		}
		h, ok := lexicon.ParseHeading(markup.CleanHeader(headingEl.Text()))
		if !ok {
			continue
		}
		sec := markup.SliceSection(headingEl, headerTags)
		e := parsed.entry(lang)

		switch {
		case h == lexicon.Etymology:
			e.Etymology = orderedset.Merge(e.Etymology, sectionEtymology(sec, lang))
		case h == lexicon.Pronunciation:
			e.Pronunciation = orderedset.Merge(e.Pronunciation, sectionIPAs(sec))
		case h == lexicon.Declension:
			if d := sectionDeclension(sec, lang); len(d) > 0 {
				if e.Declension == nil {
					e.Declension = make(grid.Declension)
				}
				e.Declension.Merge(d)
			}
		case h.IsPartOfSpeech():
			if defs := sectionDefinitions(sec); len(defs) > 0 {
				e.addDefinitions(h, defs)
			}
		}
	}
	return parsed
}

// Populate parses the page and merges every extracted entry into the store
// under word. It reports the number of languages that produced content.
func (p *Parser) Populate(s *lexicon.Store, word string, root markup.Node, want language.Language) int {
	parsed := p.ParsePage(root, want)
	for lang, e := range parsed {
		s.MergeEtymology(word, lang, e.Etymology)
		s.MergePronunciation(word, lang, e.Pronunciation)
		for _, h := range e.POSOrder {
			s.MergeDefinitions(word, lang, h, e.Definitions[h])
		}
		s.MergeDeclension(word, lang, e.Declension)
		p.logger.Debug("populated entry", "word", word, "language", string(lang))
	}
	return len(parsed)
}

// headingLanguage resolves the language a heading belongs to: the text of the
// nearest preceding h2.
func headingLanguage(span markup.Node) string {
	h2 := span.Previous(func(n markup.Node) bool { return n.Tag() == "h2" })
	if !h2.Valid() {
		return ""
	}
	return markup.CleanHeader(h2.Text())
}
