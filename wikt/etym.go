package wikt

import (
	"strings"

	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/markup"
)

// sectionEtymology extracts the two etymological roots of a compound or
// derivation: exactly two italic tags carrying the language's code. Sections
// with any other count are prose etymologies and yield nothing. The lang
// attribute is probed as a fallback only when the section spells out a
// "root + root" derivation.
func sectionEtymology(sec markup.Section, lang language.Language) []string {
	code, ok := language.Code(lang)
	if !ok {
		return nil
	}

	tags := italicsWithCode(sec, "xml:lang", code)
	if len(tags) == 0 && sectionHasPlus(sec) {
		tags = italicsWithCode(sec, "lang", code)
	}
	if len(tags) != 2 {
		return nil
	}

	roots := make([]string, 0, 2)
	for _, t := range tags {
		if text := t.TextExcluding([]string{"sup"}); text != "" {
			roots = append(roots, text)
		}
	}
	if len(roots) != 2 {
		return nil
	}
	return roots
}

// italicsWithCode returns up to two italic descendants whose attr equals code.
func italicsWithCode(sec markup.Section, attr, code string) []markup.Node {
	var out []markup.Node
	for _, n := range sec.FindAllTags("i") {
		if v, ok := n.Attr(attr); ok && v == code {
			out = append(out, n)
			if len(out) == 2 {
				break
			}
		}
	}
	return out
}

func sectionHasPlus(sec markup.Section) bool {
	for _, nd := range sec.Nodes {
		if strings.Contains(nd.Text(), "+") {
			return true
		}
	}
	return false
}
