package wikt

import (
	"strings"
	"unicode"

	"github.com/wiktlex/wiktlex/markup"
	"github.com/wiktlex/wiktlex/orderedset"
)

// Stress and delimiter marks survive the generic word cleaning (most are
// modifier letters, not punctuation) and are stripped explicitly.
var ipaMarkStripper = strings.NewReplacer(
	"ˈ", "", "ˌ", "", ".", "", "/", "", "›", "", `"`, "",
)

// Superscript annotation runes removed together with digits.
const ipaAnnotations = "⁻⁽⁾ˀ"

// sectionIPAs extracts the pronunciations of a section: IPA-classed spans
// under list items, cleaned and deduplicated, with entries carrying foreign
// symbols rooted out.
func sectionIPAs(sec markup.Section) []string {
	set := orderedset.New[string]()
	for _, span := range sec.FindAll(func(n markup.Node) bool {
		return n.Tag() == "span" && n.HasClass("IPA")
	}) {
		li := span.Ancestor(func(n markup.Node) bool { return n.Tag() == "li" })
		if !li.Valid() {
			continue
		}
		if ipa := cleanIPA(span.TextExcluding([]string{"sup"})); ipa != "" {
			set.Add(ipa)
		}
	}

	var valid []string
	for _, ipa := range set.Items() {
		if validIPA(ipa) {
			valid = append(valid, ipa)
		}
	}
	return valid
}

// cleanIPA normalizes one pronunciation: spacing collapsed, sound-change
// arrows cut, digits and annotation marks dropped, then the word cleaning
// pass and the stress-mark strip.
func cleanIPA(text string) string {
	text = strings.ReplaceAll(text, " ", "")
	text, _, _ = strings.Cut(text, "→")
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsDigit(r) || strings.ContainsRune(ipaAnnotations, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return ipaMarkStripper.Replace(markup.CleanWord(sb.String()))
}

// validIPA reports whether a cleaned pronunciation holds only phonetic
// symbols: letters and combining marks, with commas and spaces allowed as
// variant separators. Suffix fragments ("-ology") are rejected.
func validIPA(ipa string) bool {
	if ipa == "" || strings.HasPrefix(ipa, "-") {
		return false
	}
	for _, r := range ipa {
		if unicode.IsLetter(r) || unicode.IsMark(r) || r == ' ' || r == ',' {
			continue
		}
		return false
	}
	return true
}
