// Package language supplies per-language metadata: two-letter codes, alphabet
// tables and frequency lexica, plus the membership check the lemma cascade
// filters candidates with.
package language

// Language names a language the way section headings spell it ("Polish").
// The known set is closed; Known gates ingestion of anything else.
type Language string

// codes maps every supported language to its two-letter code.
var codes = map[Language]string{
	"Afrikaans":  "af",
	"Albanian":   "sq",
	"Arabic":     "ar",
	"Armenian":   "hy",
	"Basque":     "eu",
	"Bengali":    "bn",
	"Bosnian":    "bs",
	"Breton":     "br",
	"Bulgarian":  "bg",
	"Catalan":    "ca",
	"Chinese":    "zh",
	"Croatian":   "hr",
	"Danish":     "da",
	"Dutch":      "nl",
	"English":    "en",
	"Esperanto":  "eo",
	"Georgian":   "ka",
	"German":     "de",
	"Greek":      "el",
	"Finnish":    "fi",
	"French":     "fr",
	"Galician":   "gl",
	"Hebrew":     "he",
	"Hindi":      "hi",
	"Hungarian":  "hu",
	"Icelandic":  "is",
	"Indonesian": "id",
	"Italian":    "it",
	"Japanese":   "ja",
	"Kazakh":     "kk",
	"Korean":     "ko",
	"Latvian":    "lv",
	"Lithuanian": "lt",
	"Macedonian": "mk",
	"Malayan":    "ml",
	"Malay":      "ms",
	"Norwegian":  "no",
	"Persian":    "fa",
	"Polish":     "pl",
	"Portuguese": "pt",
	"Romanian":   "ro",
	"Russian":    "ru",
	"Serbian":    "sr",
	"Sinhala":    "si",
	"Slovak":     "sk",
	"Slovenian":  "sl",
	"Spanish":    "es",
	"Swedish":    "sv",
	"Tamil":      "ta",
	"Telugu":     "te",
	"Thai":       "th",
	"Tagalog":    "tl",
	"Turkish":    "tr",
	"Ukrainian":  "uk",
	"Vietnamese": "vi",
}

// Known reports whether lang is in the supported set.
func Known(lang Language) bool {
	_, ok := codes[lang]
	return ok
}

// Code returns lang's two-letter code. ok is false for unknown languages.
func Code(lang Language) (string, bool) {
	c, ok := codes[lang]
	return c, ok
}

// All returns every known language, unordered.
func All() []Language {
	out := make([]Language, 0, len(codes))
	for l := range codes {
		out = append(out, l)
	}
	return out
}
