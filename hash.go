package runestring

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit hash of the runes of s. Strings that are
// [String.Equal] have the same hash.
func (s String) Hash() uint64 {
	return s.hash(func(c uint32) uint32 { return c })
}

// HashFold returns a 64-bit hash of the case folded runes of s. Strings that
// are [String.EqualFold] have the same hash.
func (s String) HashFold() uint64 {
	return s.hash(ToLower)
}

func (s String) hash(fold func(uint32) uint32) uint64 {
	d := xxhash.New()
	var unit [4]byte
	for _, r := range s.view() {
		binary.LittleEndian.PutUint32(unit[:], fold(r.code))
		_, _ = d.Write(unit[:])
	}
	return d.Sum64()
}

// Interner deduplicates string contents so that equal strings share a single
// buffer. It is safe for concurrent use.
type Interner struct {
	mu      sync.Mutex
	buckets map[uint64][]String
	size    int
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{buckets: make(map[uint64][]String)}
}

// Intern returns a string equal to s that shares the buffer of the first
// string with this content passed to the Interner. The result holds its own
// reference.
func (in *Interner) Intern(s String) String {
	if s.Empty() {
		return String{}
	}
	h := s.Hash()

	in.mu.Lock()
	defer in.mu.Unlock()

	for _, c := range in.buckets[h] {
		if c.Equal(s) {
			return c.Share()
		}
	}
	in.buckets[h] = append(in.buckets[h], s.Share())
	in.size++
	return s.Share()
}

// Len returns the number of distinct contents held by the Interner.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.size
}

// Reset releases every string held by the Interner.
func (in *Interner) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()

	for h, bucket := range in.buckets {
		for i := range bucket {
			bucket[i].Release()
		}
		delete(in.buckets, h)
	}
	in.size = 0
}
