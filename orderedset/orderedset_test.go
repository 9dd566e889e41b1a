package orderedset

import (
	"reflect"
	"testing"
)

func TestAdd_Order(t *testing.T) {
	s := New[string]()
	for _, w := range []string{"kot", "koty", "kot", "kota"} {
		s.Add(w)
	}
	want := []string{"kot", "koty", "kota"}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("items: got %v, want %v", got, want)
	}
}

func TestAdd_Reports(t *testing.T) {
	s := New[int]()
	if !s.Add(1) {
		t.Errorf("first add: got false, want true")
	}
	if s.Add(1) {
		t.Errorf("second add: got true, want false")
	}
}

func TestMerge_Idempotent(t *testing.T) {
	base := []string{"felinus"}
	extra := []string{"felinus", "catus"}
	once := Merge(base, extra)
	twice := Merge(once, extra)
	want := []string{"felinus", "catus"}
	if !reflect.DeepEqual(once, want) {
		t.Fatalf("merge once: got %v, want %v", once, want)
	}
	if !reflect.DeepEqual(twice, want) {
		t.Fatalf("merge twice: got %v, want %v", twice, want)
	}
}

func TestMerge_CommutativeAsSets(t *testing.T) {
	a := []string{"x", "y"}
	b := []string{"y", "z"}
	ab := Merge(a, b)
	ba := Merge(b, a)
	if len(ab) != len(ba) {
		t.Fatalf("set sizes differ: %v vs %v", ab, ba)
	}
	seen := make(map[string]bool)
	for _, v := range ab {
		seen[v] = true
	}
	for _, v := range ba {
		if !seen[v] {
			t.Errorf("item %q in ba but not ab", v)
		}
	}
}

func TestItems_Copy(t *testing.T) {
	s := New("a", "b")
	items := s.Items()
	items[0] = "z"
	if got := s.Items()[0]; got != "a" {
		t.Errorf("internal slice mutated: got %q, want %q", got, "a")
	}
}
