package markup

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	spaceRe  = regexp.MustCompile(`( )+`)
	parenRe  = regexp.MustCompile(`\([^\(]*?\)`)
	quoteRe  = regexp.MustCompile(`"[^+]*?"`)
	entityRe = regexp.MustCompile(`&\S{3,10};`)
)

// CleanText NFC-normalizes s, strips stray entity text, collapses runs of
// spaces and tightens spacing around punctuation.
func CleanText(s string) string {
	s = norm.NFC.String(s)
	s = entityRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(cleanPunct(s))
}

// cleanPunct removes the space padding the tree walk introduces before
// punctuation and inside parentheses.
func cleanPunct(s string) string {
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.ReplaceAll(s, "( ", "(")
	s = strings.ReplaceAll(s, " )", ")")
	return s
}

// CleanHeader strips the trailing "[edit]" widget from a section heading.
func CleanHeader(s string) string {
	cleaned, _, _ := strings.Cut(CleanText(s), "[")
	return strings.TrimSpace(cleaned)
}

// CleanWord lowercases s and removes punctuation. Hyphens survive: affix
// entries like "un-" and "-able" are real dictionary words.
func CleanWord(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if r != '-' && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// CleanParentheticals removes parenthesized runs, repeating until nesting is
// resolved.
func CleanParentheticals(s string) string {
	for {
		next := parenRe.ReplaceAllString(s, "")
		if next == s {
			return next
		}
		s = next
	}
}

// CleanQuotes removes double-quoted runs.
func CleanQuotes(s string) string {
	return quoteRe.ReplaceAllString(s, "")
}

// asciiPunct is the classic punctuation set. Hyphen is included: a token with
// a hyphen is phrase notation, not a lookup key.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ContainsPunct reports whether word contains any punctuation character.
func ContainsPunct(word string) bool {
	return strings.ContainsAny(word, asciiPunct)
}
