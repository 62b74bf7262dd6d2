package runestring

import "sync/atomic"

// buffer is the shared storage behind one or more String views. Its runes
// are written once, right after allocation, and never modified afterwards.
type buffer struct {
	runes []Rune
	refs  atomic.Int32
}

// newBuffer allocates a buffer for n runes holding a single reference.
func newBuffer(n int) *buffer {
	b := &buffer{runes: make([]Rune, n)}
	b.refs.Store(1)
	return b
}

// acquire adds a reference to b and returns it. A nil buffer stays nil.
func (b *buffer) acquire() *buffer {
	if b != nil {
		b.refs.Add(1)
	}
	return b
}

// release drops a reference from b. When the last reference is dropped the
// runes are released and true is returned.
func (b *buffer) release() bool {
	if b == nil {
		return false
	}
	if b.refs.Add(-1) != 0 {
		return false
	}
	b.runes = nil
	return true
}
