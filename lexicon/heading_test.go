package lexicon

import "testing"

func TestParseHeading(t *testing.T) {
	cases := []struct {
		raw  string
		want Heading
		ok   bool
	}{
		{"Noun", Noun, true},
		{"Verb", Verb, true},
		{"Etymology", Etymology, true},
		{"Etymology 2", Etymology, true},
		{"Etymology_2", Etymology, true},
		{"Pronunciation", Pronunciation, true},
		{"Declension", Declension, true},
		{"Inflection", Declension, true},
		{"Conjugation", Declension, true},
		{"Derived terms", "", false},
		{"References", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseHeading(c.raw)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseHeading(%q): got (%q, %v), want (%q, %v)", c.raw, got, ok, c.want, c.ok)
		}
	}
}

func TestIsPartOfSpeech(t *testing.T) {
	if !Noun.IsPartOfSpeech() {
		t.Errorf("Noun: want part of speech")
	}
	if Declension.IsPartOfSpeech() {
		t.Errorf("Declension: want not part of speech")
	}
	if Etymology.IsPartOfSpeech() {
		t.Errorf("Etymology: want not part of speech")
	}
}
