package grid

import (
	"reflect"
	"testing"
)

func kotTable() *Grid {
	return Reconstruct([][]*Cell{
		{header(""), header("Singular"), header("Plural")},
		{header("Nominative"), content("kot"), content("koty")},
		{header("Genitive"), content("kota"), content("kotów")},
	})
}

func TestAssemble_KotTable(t *testing.T) {
	got := Assemble(kotTable())
	want := Declension{
		"singular": {"nominative": {"kot"}, "genitive": {"kota"}},
		"plural":   {"nominative": {"koty"}, "genitive": {"kotów"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("assemble: got %v, want %v", got, want)
	}
}

func TestAssemble_SplitsForms(t *testing.T) {
	g := Reconstruct([][]*Cell{
		{header(""), header("Plural")},
		{header("Dative"), content("kotom, kotam/kotóm")},
	})
	got := Assemble(g)
	want := []string{"kotom", "kotam", "kotóm"}
	if !reflect.DeepEqual(got["plural"]["dative"], want) {
		t.Fatalf("split forms: got %v, want %v", got["plural"]["dative"], want)
	}
}

func TestAssemble_PlaceholderLabelDropped(t *testing.T) {
	g := Reconstruct([][]*Cell{
		{header(""), header("Singular")},
		{header("—"), content("kot")},
	})
	got := Assemble(g)
	// The dash row label is excluded; with it gone the row path is empty and
	// the 2x2 table is not one-dimensional, so nothing is recorded.
	if len(got) != 0 {
		t.Fatalf("placeholder label: got %v, want empty declension", got)
	}
}

func TestAssemble_OneDimensionalList(t *testing.T) {
	// Two columns, three rows: rows-cols == 1, the disguised list case.
	g := Reconstruct([][]*Cell{
		{header("positive"), header("comparative")},
		{content("szybki"), content("szybszy")},
		{content("szybka"), content("szybsza")},
	})
	got := Assemble(g)
	if !reflect.DeepEqual(got["positive"][""], []string{"szybki", "szybka"}) {
		t.Fatalf("one-dimensional: got %v", got["positive"][""])
	}
}

func TestAssemble_OneDimensionalHeuristicDoesNotFire(t *testing.T) {
	// Two extra rows (rows-cols == 2): the heuristic must not fire, so
	// empty row paths record nothing. Pins the known coverage gap rather
	// than generalizing it.
	g := Reconstruct([][]*Cell{
		{header("positive"), header("comparative")},
		{content("szybki"), content("szybszy")},
		{content("szybka"), content("szybsza")},
		{content("szybkie"), content("szybsze")},
	})
	got := Assemble(g)
	if len(got) != 0 {
		t.Fatalf("rows-cols==2: got %v, want empty", got)
	}
}

func TestAssemble_EmptyColumnPathSkipped(t *testing.T) {
	g := Reconstruct([][]*Cell{
		{content("kot"), content("koty")},
	})
	if got := Assemble(g); len(got) != 0 {
		t.Fatalf("no headers: got %v, want empty", got)
	}
}

func TestDeclension_MergeDedups(t *testing.T) {
	d := Declension{"singular": {"nominative": {"kot"}}}
	d.Merge(Declension{"singular": {"nominative": {"kot", "kotek"}}})
	want := []string{"kot", "kotek"}
	if !reflect.DeepEqual(d["singular"]["nominative"], want) {
		t.Fatalf("merge: got %v, want %v", d["singular"]["nominative"], want)
	}
}

func TestDeclension_Forms(t *testing.T) {
	forms := Assemble(kotTable()).Forms()
	want := map[string]bool{"kot": true, "koty": true, "kota": true, "kotów": true}
	if len(forms) != len(want) {
		t.Fatalf("forms: got %v", forms)
	}
	for _, f := range forms {
		if !want[f] {
			t.Errorf("unexpected form %q", f)
		}
	}
}

func TestSplitForms(t *testing.T) {
	got := SplitForms(" kot ,koty\n/ kota ")
	want := []string{"kot", "koty", "kota"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("split: got %v, want %v", got, want)
	}
}
