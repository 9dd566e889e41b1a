package wikt

import (
	"strconv"
	"strings"

	"github.com/wiktlex/wiktlex/grid"
	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/markup"
)

// placeholderDash marks a not-applicable table cell.
const placeholderDash = "—"

// sectionDeclension reconstructs and folds the section's inflection table.
func sectionDeclension(sec markup.Section, lang language.Language) grid.Declension {
	table := declensionTable(sec, lang)
	if !table.Valid() {
		return nil
	}
	return grid.Assemble(grid.Reconstruct(tableCells(table, lang)))
}

// declensionTable picks the table holding the section's inflections: the one
// whose content links all target the language being processed, else the first
// table present.
func declensionTable(sec markup.Section, lang language.Language) markup.Node {
	tables := sec.FindAllTags("table")
	for _, t := range tables {
		if tableInLanguage(t, lang) {
			return t
		}
	}
	if len(tables) > 0 {
		return tables[0]
	}
	return markup.Node{}
}

func tableInLanguage(table markup.Node, lang language.Language) bool {
	suffix := langSuffix(lang)
	for _, td := range table.FindAllTags("td") {
		if !isContentTD(td, suffix) {
			continue
		}
		href, ok := td.Link()
		if !ok {
			continue
		}
		if !strings.HasSuffix(href, suffix) && !strings.HasSuffix(href, "redlink=1") {
			return false
		}
	}
	return true
}

// tableRows returns the table's rows, preferring the vsHide set: collapsible
// tables duplicate their content and only the hidden rows carry all of it.
func tableRows(table markup.Node) []markup.Node {
	hidden := table.FindAll(func(n markup.Node) bool {
		return n.Tag() == "tr" && n.HasClass("vsHide")
	})
	if len(hidden) > 0 {
		return hidden
	}
	return table.FindAllTags("tr")
}

func tableCells(table markup.Node, lang language.Language) [][]*grid.Cell {
	suffix := langSuffix(lang)
	var rows [][]*grid.Cell
	for _, tr := range tableRows(table) {
		var row []*grid.Cell
		for _, nd := range tr.FindAllTags("th", "td") {
			row = append(row, buildCell(nd, suffix))
		}
		rows = append(rows, row)
	}
	return rows
}

// buildCell classifies one table cell and resolves its text. Content beats
// header when a cell qualifies as both.
func buildCell(nd markup.Node, suffix string) *grid.Cell {
	href, _ := nd.Link()
	cell := &grid.Cell{
		Text:    cellText(nd, suffix),
		RowSpan: intAttr(nd, "rowspan"),
		ColSpan: intAttr(nd, "colspan"),
		Href:    href,
	}
	switch {
	case isContentCell(nd, suffix):
		cell.Kind = grid.Content
	case isHeaderCell(nd, suffix):
		cell.Kind = grid.Header
	}
	return cell
}

// cellText resolves a cell's usable text. When the cell nests inline spans,
// only the spans whose links target the language contribute (transliteration
// spans drop out), newline-joined; a span-free cell contributes its whole
// visible text.
func cellText(nd markup.Node, suffix string) string {
	spans := nd.FindAllTags("span")
	if len(spans) == 0 {
		return nd.TextExcluding(defSkipTags)
	}
	var parts []string
	for _, span := range spans {
		if !linksLanguage(span, suffix) {
			continue
		}
		parts = append(parts, span.TextExcluding(defSkipTags))
	}
	return strings.Join(parts, "\n")
}

// isContentCell reports whether the cell holds word forms: a non-empty td not
// led by a reference superscript and free of paragraphs, or a th whose link
// targets the language.
func isContentCell(nd markup.Node, suffix string) bool {
	switch nd.Tag() {
	case "td":
		raw := nd.TextExcluding(defSkipTags)
		if raw == "" || raw == placeholderDash {
			return false
		}
		if kids := nd.Children(); len(kids) > 0 && kids[0].Tag() == "sup" {
			return false
		}
		return !nd.FindTag("p").Valid()
	case "th":
		return linksLanguage(nd, suffix)
	}
	return false
}

// isHeaderCell reports whether the cell is a row or column label: no link at
// all, or a link leading outside the language (grammar-term articles).
// Red links count as in-language.
func isHeaderCell(nd markup.Node, suffix string) bool {
	a := nd.FindTag("a")
	if !a.Valid() {
		return true
	}
	href, ok := a.Attr("href")
	if !ok {
		return false
	}
	return !strings.HasSuffix(href, suffix) && !strings.HasSuffix(href, "redlink=1")
}

func isContentTD(nd markup.Node, suffix string) bool {
	return nd.Tag() == "td" && isContentCell(nd, suffix)
}

// linksLanguage reports whether the node's first link targets the language's
// section anchor.
func linksLanguage(nd markup.Node, suffix string) bool {
	href, ok := nd.Link()
	if !ok {
		return false
	}
	return strings.HasSuffix(href, suffix)
}

func langSuffix(lang language.Language) string {
	return strings.ReplaceAll(string(lang), " ", "_")
}

func intAttr(nd markup.Node, key string) int {
	val, ok := nd.Attr(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0
	}
	return n
}
