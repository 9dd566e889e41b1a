package lexicon

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/wiktlex/wiktlex/grid"
	"github.com/wiktlex/wiktlex/language"
)

const polish = language.Language("Polish")

func TestLookupVsGetOrCreate(t *testing.T) {
	s := NewStore()
	if _, ok := s.Lookup("kot", polish); ok {
		t.Fatalf("lookup on empty store: want miss")
	}
	if s.Len() != 0 {
		t.Fatalf("lookup must not create entries: len %d", s.Len())
	}

	e := s.GetOrCreate("kot", polish)
	if e == nil {
		t.Fatalf("get or create: nil entry")
	}
	if got, ok := s.Lookup("kot", polish); !ok || got != e {
		t.Fatalf("lookup after create: got (%p, %v), want (%p, true)", got, ok, e)
	}
	if s.Len() != 1 {
		t.Fatalf("len: got %d, want 1", s.Len())
	}
}

func TestMergeIdempotent(t *testing.T) {
	s := NewStore()
	s.MergeEtymology("kot", polish, []string{"kotъ"})
	s.MergeEtymology("kot", polish, []string{"kotъ"})
	if got := s.Etymology("kot", polish); !reflect.DeepEqual(got, []string{"kotъ"}) {
		t.Fatalf("etymology: got %v, want [kotъ]", got)
	}

	s.MergePronunciation("kot", polish, []string{"kɔt"})
	s.MergePronunciation("kot", polish, []string{"kɔt", "kɔt̪"})
	if got := s.Pronunciation("kot", polish); !reflect.DeepEqual(got, []string{"kɔt", "kɔt̪"}) {
		t.Fatalf("pronunciation: got %v", got)
	}
}

func TestMergeDefinitionsOrderPreserved(t *testing.T) {
	s := NewStore()
	s.MergeDefinitions("kot", polish, Noun, []Definition{
		{Text: "kot"},
		{Text: "a cat"},
	})
	s.MergeDefinitions("kot", polish, Noun, []Definition{
		{Text: "a cat"},
		{Text: "a kind of grappling hook"},
	})
	e, _ := s.Lookup("kot", polish)
	defs := e.Definitions(Noun)
	want := []Definition{{Text: "kot"}, {Text: "a cat"}, {Text: "a kind of grappling hook"}}
	if !reflect.DeepEqual(defs, want) {
		t.Fatalf("definitions: got %v, want %v", defs, want)
	}
}

func TestMergeDefinitionsRejectsNonPOS(t *testing.T) {
	s := NewStore()
	s.MergeDefinitions("kot", polish, Etymology, []Definition{{Text: "x"}})
	if s.Len() != 0 {
		t.Fatalf("non-pos heading must be dropped, store len %d", s.Len())
	}
}

func TestPartsOfSpeechFirstSeenOrder(t *testing.T) {
	s := NewStore()
	s.MergeDefinitions("lead", language.Language("English"), Verb, []Definition{{Text: "lead"}})
	s.MergeDefinitions("lead", language.Language("English"), Noun, []Definition{{Text: "lead"}})
	got := s.PartsOfSpeech("lead", language.Language("English"))
	if !reflect.DeepEqual(got, []Heading{Verb, Noun}) {
		t.Fatalf("parts of speech: got %v, want [Verb Noun]", got)
	}
}

func TestMergeDeclensionAcrossTables(t *testing.T) {
	// Two partial tables for the same word union into one mapping; repeats
	// do not duplicate forms.
	s := NewStore()
	s.MergeDeclension("felinus", language.Language("Latin"), grid.Declension{
		"singular": {"nominative": {"felinus"}},
	})
	s.MergeDeclension("felinus", language.Language("Latin"), grid.Declension{
		"singular": {"nominative": {"felinus"}, "genitive": {"felini"}},
		"plural":   {"nominative": {"felini"}},
	})
	d, ok := s.Declension("felinus", language.Language("Latin"))
	if !ok {
		t.Fatalf("declension: want present")
	}
	want := grid.Declension{
		"singular": {"nominative": {"felinus"}, "genitive": {"felini"}},
		"plural":   {"nominative": {"felini"}},
	}
	if !reflect.DeepEqual(d, want) {
		t.Fatalf("declension: got %v, want %v", d, want)
	}

	// The returned mapping is a copy.
	d["singular"]["nominative"] = append(d["singular"]["nominative"], "bogus")
	d2, _ := s.Declension("felinus", language.Language("Latin"))
	if !reflect.DeepEqual(d2, want) {
		t.Fatalf("declension after caller mutation: got %v, want %v", d2, want)
	}
}

func TestEntryWordProbesCapitalization(t *testing.T) {
	english := language.Language("English")
	s := NewStore()
	s.MergeDefinitions("Monday", english, Noun, []Definition{{Text: "Monday"}})
	if got := s.EntryWord("monday", english); got != "Monday" {
		t.Fatalf("entry word: got %q, want Monday", got)
	}
	if got := s.EntryWord("Monday", english); got != "Monday" {
		t.Fatalf("entry word exact: got %q, want Monday", got)
	}

	s.MergeDefinitions("bem", language.Language("Portuguese"), Adverb, []Definition{{Text: "bem"}})
	if got := s.EntryWord("Bem", language.Language("Portuguese")); got != "bem" {
		t.Fatalf("entry word lowered: got %q, want bem", got)
	}

	// No variant stored: identity.
	if got := s.EntryWord("ghost", english); got != "ghost" {
		t.Fatalf("entry word fallback: got %q, want ghost", got)
	}
}

func TestHeadAndStemWords(t *testing.T) {
	english := language.Language("English")
	s := NewStore()
	// "driven": head word is the lemma of the first verb sense, the past
	// participle sense after it contributes a stem word.
	s.MergeDefinitions("driven", english, Verb, []Definition{
		{Text: "driven", Lemma: "driven"},
		{Text: "past participle of drive", Lemma: "drive"},
	})
	s.MergeDefinitions("driven", english, Adjective, []Definition{
		{Text: "driven", Lemma: "driven"},
	})

	heads := s.HeadWords("driven", english, nil)
	if !reflect.DeepEqual(heads, []string{"driven"}) {
		t.Fatalf("head words: got %v, want [driven]", heads)
	}
	stems := s.StemWords("driven", english, nil)
	if !reflect.DeepEqual(stems, []string{"drive"}) {
		t.Fatalf("stem words: got %v, want [drive]", stems)
	}

	// Restricting to adjectives hides the verb's stem.
	if got := s.StemWords("driven", english, []Heading{Adjective}); len(got) != 0 {
		t.Fatalf("adjective stems: got %v, want none", got)
	}
}

func TestAllInflections(t *testing.T) {
	s := NewStore()
	s.MergeDeclension("kot", polish, grid.Declension{
		"singular": {"nominative": {"kot"}, "genitive": {"kota"}},
		"plural":   {"nominative": {"koty"}},
	})
	s.MergeDeclension("kotka", polish, grid.Declension{
		"singular": {"genitive": {"kota", "kotki"}},
	})
	inv := s.AllInflections(polish)
	if got := inv["koty"]; !reflect.DeepEqual(got, []string{"kot"}) {
		t.Fatalf("koty: got %v, want [kot]", got)
	}
	got := inv["kota"]
	if len(got) != 2 {
		t.Fatalf("kota: got %v, want two lemma words", got)
	}
}

func TestDefinitionsAccessorCopies(t *testing.T) {
	s := NewStore()
	s.MergeDefinitions("kot", polish, Noun, []Definition{{Text: "kot"}, {Text: "cat"}})

	defs := s.Definitions("kot", polish, Noun)
	defs[0].Text = "mutated"
	if got := s.Definitions("kot", polish, Noun)[0].Text; got != "kot" {
		t.Fatalf("stored definition mutated through accessor copy: got %q", got)
	}
	if s.Definitions("kot", polish, Verb) != nil {
		t.Fatalf("absent heading: want nil")
	}
	if s.Definitions("pies", polish, Noun) != nil {
		t.Fatalf("absent word: want nil")
	}
}

// Readers and a writer hammer the same word. Run with the race detector to
// be meaningful.
func TestConcurrentQueriesAndMerges(t *testing.T) {
	s := NewStore()
	s.MergeDefinitions("kot", polish, Noun, []Definition{{Text: "kot"}})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 200 {
			s.MergeDefinitions("kot", polish, Verb,
				[]Definition{{Text: fmt.Sprintf("sense %d", i)}})
			s.MergeDeclension("kot", polish,
				grid.Declension{"singular": {"nominative": {"kot"}}})
		}
	}()
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				for _, h := range s.PartsOfSpeech("kot", polish) {
					if defs := s.Definitions("kot", polish, h); len(defs) == 0 {
						t.Errorf("heading %s listed without definitions", h)
						return
					}
				}
				s.Declension("kot", polish)
			}
		}()
	}
	wg.Wait()
}
