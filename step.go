package runestring

import "iter"

// Iterator is a random access cursor over the runes of a [String].
//
// An iterator is an index into the view it was created from, so it never
// points into a buffer directly. Valid positions are 0 through Len()-1; the
// position Len() is the end position returned by [String.End]. Stepping past
// either end is allowed, but [Iterator.Rune] only works at valid positions.
//
// An iterator borrows its string: it does not hold a reference to the buffer.
type Iterator struct {
	s   String
	pos int
}

// Begin returns an iterator at the first rune of s.
func (s String) Begin() Iterator {
	return Iterator{s: s}
}

// End returns an iterator one past the last rune of s.
func (s String) End() Iterator {
	return Iterator{s: s, pos: s.length}
}

// Index returns the position of it relative to the start of its string.
func (it Iterator) Index() int {
	return it.pos
}

// Valid reports whether it points at a rune.
func (it Iterator) Valid() bool {
	return it.pos >= 0 && it.pos < it.s.length
}

// Rune returns the rune it points at. It returns an error wrapping
// [ErrOutOfBounds] if it is not [Iterator.Valid].
func (it Iterator) Rune() (Rune, error) {
	return it.s.At(it.pos)
}

// Next moves it to the following rune.
func (it *Iterator) Next() {
	it.pos++
}

// Prev moves it to the preceding rune.
func (it *Iterator) Prev() {
	it.pos--
}

// Add returns an iterator n runes after it. A negative n moves backwards.
func (it Iterator) Add(n int) Iterator {
	return Iterator{s: it.s, pos: it.pos + n}
}

// Distance returns the number of steps from the iterator from to it. Both
// iterators must belong to the same string.
func (it Iterator) Distance(from Iterator) int {
	return it.pos - from.pos
}

// Equal reports whether it and o point at the same position of the same view.
func (it Iterator) Equal(o Iterator) bool {
	return it.pos == o.pos && it.s.buf == o.s.buf && it.s.offset == o.s.offset && it.s.length == o.s.length
}

// All returns an iterator over the index and rune pairs of s, front to back.
func (s String) All() iter.Seq2[int, Rune] {
	return func(yield func(int, Rune) bool) {
		for i, r := range s.view() {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Backward returns an iterator over the index and rune pairs of s, back to
// front.
func (s String) Backward() iter.Seq2[int, Rune] {
	return func(yield func(int, Rune) bool) {
		runes := s.view()
		for i := len(runes) - 1; i >= 0; i-- {
			if !yield(i, runes[i]) {
				return
			}
		}
	}
}
