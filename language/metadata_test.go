package language

import (
	"strings"
	"testing"
)

func TestKnown(t *testing.T) {
	if !Known("Polish") {
		t.Fatalf("Polish: want known")
	}
	if Known("Klingon") {
		t.Fatalf("Klingon: want unknown")
	}
	code, ok := Code("Polish")
	if !ok || code != "pl" {
		t.Fatalf("Code(Polish): got (%q, %v), want (pl, true)", code, ok)
	}
}

func TestSetAlphabetAddsCaseVariants(t *testing.T) {
	m := NewMetadata()
	m.SetAlphabet("Polish", []string{"a", "ż"})
	got := m.Alphabet("Polish")
	want := []string{"A", "a", "Ż", "ż"}
	if len(got) != len(want) {
		t.Fatalf("alphabet: got %v, want %v", got, want)
	}
	set := make(map[string]bool)
	for _, s := range got {
		set[s] = true
	}
	for _, s := range want {
		if !set[s] {
			t.Fatalf("alphabet missing %q: got %v", s, got)
		}
	}
}

func TestLoadLexicon(t *testing.T) {
	m := NewMetadata()
	src := "kot 9000\npies 7000\ndom 5000\n\nokno 100\n"
	if err := m.LoadLexicon("Polish", strings.NewReader(src), 3); err != nil {
		t.Fatalf("load lexicon: %v", err)
	}
	common := m.CommonWords("Polish", 2)
	if len(common) != 2 || common[0] != "kot" || common[1] != "pies" {
		t.Fatalf("common words: got %v, want [kot pies]", common)
	}
	if !m.InLexicon("dom", "Polish") {
		t.Fatalf("dom: want in lexicon")
	}
	if m.InLexicon("okno", "Polish") {
		t.Fatalf("okno: beyond limit, want not in lexicon")
	}
}

func TestInLexiconUndetermined(t *testing.T) {
	m := NewMetadata()
	if !m.InLexicon("anything", "Polish") {
		t.Fatalf("empty lexicon: want membership undetermined (true)")
	}
}

func TestVerify(t *testing.T) {
	m := NewMetadata()
	m.SetAlphabet("Polish", []string{"k", "o", "t", "a"})
	m.SetLexicon("Polish", []string{"kot", "kota"})

	if !m.Verify("kota", "Polish") {
		t.Fatalf("kota: want verified")
	}
	if m.Verify("xyz", "Polish") {
		t.Fatalf("xyz: letters outside alphabet, want rejected")
	}
	if m.Verify("tok", "Polish") {
		t.Fatalf("tok: alphabet ok but not in lexicon, want rejected")
	}

	// No metadata at all for the language: both checks are undetermined.
	if !m.Verify("bonjour", "French") {
		t.Fatalf("bonjour: no metadata, want pass")
	}
}
