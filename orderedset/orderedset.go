// Package orderedset provides an append-ordered set: duplicates are dropped,
// first-seen order is preserved. Every merge path in the lexicon goes through
// it, which is what makes merges idempotent.
package orderedset

// Set is an append-ordered set of comparable items.
// The zero value is not usable; call New.
type Set[T comparable] struct {
	seen  map[T]struct{}
	items []T
}

// New returns a set seeded with items, in order, deduplicated.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{seen: make(map[T]struct{}, len(items))}
	s.Update(items)
	return s
}

// Add inserts item unless already present. Reports whether it was inserted.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.seen[item]; ok {
		return false
	}
	s.seen[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Update inserts every item in order.
func (s *Set[T]) Update(items []T) {
	for _, item := range items {
		s.Add(item)
	}
}

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.seen[item]
	return ok
}

// Len returns the number of distinct items.
func (s *Set[T]) Len() int { return len(s.items) }

// Items returns the items in insertion order. The slice is a copy.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Merge unions extra into base, preserving first-seen order.
// It is the one-shot form used by lexicon merges.
func Merge[T comparable](base, extra []T) []T {
	s := New(base...)
	s.Update(extra)
	return s.Items()
}
