package runestring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_Accessors(t *testing.T) {
	var empty String
	assert.Equal(t, 0, empty.Len())
	assert.True(t, empty.Empty())
	assert.True(t, empty.Blank())
	assert.True(t, FromString("\t ").Blank())
	assert.False(t, FromString(" a ").Blank())

	front, err := FromString("a").Front()
	require.NoError(t, err)
	assert.Equal(t, MustRune('a'), front)

	back, err := FromString("abc").Back()
	require.NoError(t, err)
	assert.Equal(t, MustRune('c'), back)

	at, err := FromString("\xc3\xb6h\xc3\xb6").At(1)
	require.NoError(t, err)
	assert.Equal(t, MustRune('h'), at)
}

func TestString_AtOutOfBounds(t *testing.T) {
	s := FromString("abc")
	for _, i := range []int{-1, 3, 100} {
		_, err := s.At(i)
		require.ErrorIs(t, err, ErrOutOfBounds, "index %d", i)
	}

	var empty String
	_, err := empty.Front()
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = empty.Back()
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, "xxx", Repeat(3, MustRune('x')).String())
	assert.True(t, Repeat(0, MustRune('x')).Empty())
	assert.True(t, Repeat(-2, MustRune('x')).Empty())

	runes := []Rune{MustRune('h'), MustRune('i')}
	s := FromRunes(runes)
	runes[0] = MustRune('X')
	assert.Equal(t, "hi", s.String(), "FromRunes copies its input")

	s, err := FromCodes([]uint32{0xE4, 0x5047})
	require.NoError(t, err)
	assert.Equal(t, "ä假", s.String())

	_, err = FromCodes([]uint32{'a', 0x110000})
	require.ErrorIs(t, err, ErrRange)
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint32
	}{
		{"empty", "", nil},
		{"ASCII", "abc", []uint32{'a', 'b', 'c'}},
		{"mixed widths", "aä假😀", []uint32{'a', 0xE4, 0x5047, 0x1F600}},
		{"embedded NUL", "a\x00b", []uint32{'a', 0, 'b'}},
		{"stops at invalid byte", "ab\xffcd", []uint32{'a', 'b'}},
		{"stops at truncated sequence", "a\xe5\x81", []uint32{'a'}},
		{"stops at overlong", "a\xc0\x80b", []uint32{'a'}},
		{"stops at surrogate", "a\xed\xa0\x80b", []uint32{'a'}},
		{"invalid at start", "\x80abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []String{FromString(tt.input), FromBytes([]byte(tt.input))} {
				var got []uint32
				for _, r := range s.Runes() {
					got = append(got, r.Code())
				}
				assert.Equal(t, tt.want, got)
				assert.Equal(t, len(tt.want), s.Len())
			}
		})
	}
}

func TestString_Equal(t *testing.T) {
	assert.True(t, FromString("foo").Equal(FromString("foo")))
	assert.False(t, FromString("foo").Equal(FromString("fo")))
	assert.False(t, FromString("foo").Equal(FromString("bar")))
	assert.True(t, String{}.Equal(FromString("")))
	assert.True(t, FromString("a\xc3\xa4").EqualFold(FromString("A\xc3\x84")))
	assert.False(t, FromString("ab").EqualFold(FromString("AC")))
}

func TestString_EqualSameBuffer(t *testing.T) {
	s := FromString("abab")
	first := s.Substr(0, 2)
	second := s.Substr(2, 2)
	shifted := s.Substr(1, 2)

	require.True(t, first.SharesStorage(second))
	assert.True(t, first.Equal(second), "same content, different windows")
	assert.False(t, first.Equal(shifted))
	assert.True(t, first.Equal(first.Share()))
	assert.Equal(t, 0, first.Compare(second))
	assert.Equal(t, -1, first.Compare(shifted))

	left, right := s.Substr(1, 2), s.Substr(1, 2)
	assert.True(t, left.SharesStorage(right))
	assert.True(t, left.Equal(right))
	assert.True(t, left.EqualFold(right))
	assert.Equal(t, 0, left.Compare(right))
}

func TestString_AtAfterRelease(t *testing.T) {
	s := FromString("abc")
	borrowed := s.Substr(1, -1)
	it := borrowed.Begin()
	borrowed.Release()

	// it borrowed its view before the last reference was dropped.
	s.Release()
	_, err := it.Rune()
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestString_Compare(t *testing.T) {
	tests := []struct {
		a, b     string
		want     int
		wantFold int
	}{
		{"foo", "foo", 0, 0},
		{"abc", "abd", -1, -1},
		{"abd", "abc", 1, 1},
		{"ab", "abc", -1, -1},
		{"abc", "ab", 1, 1},
		{"", "", 0, 0},
		{"", "a", -1, -1},
		{"a\xc3\xa4", "A\xc3\x84", 1, 0},
		{"ABC", "abd", -1, -1},
	}

	for _, tt := range tests {
		a, b := FromString(tt.a), FromString(tt.b)
		assert.Equal(t, tt.want, a.Compare(b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.wantFold, a.CompareFold(b), "%q vs %q folded", tt.a, tt.b)
	}
}

func TestString_Concat(t *testing.T) {
	a, b := FromString("a"), FromString("b")
	ab := a.Concat(b)
	assert.Equal(t, "ab", ab.String())
	assert.False(t, ab.SharesStorage(a))
	assert.Equal(t, 1, a.Refs())

	same := a.Concat(String{})
	assert.True(t, same.SharesStorage(a))
	assert.Equal(t, 2, a.Refs())

	same = String{}.Concat(b)
	assert.True(t, same.SharesStorage(b))
	assert.True(t, String{}.Concat(String{}).Empty())
}

func TestString_Append(t *testing.T) {
	s := FromString("ab")
	t2 := s.Append(MustRune(0xE4))
	assert.Equal(t, "abä", t2.String())
	assert.Equal(t, "ab", s.String())
	assert.Equal(t, "x", String{}.Append(MustRune('x')).String())
}

func TestString_Trim(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\t a\r\n ", "a"},
		{"a", "a"},
		{"  ", ""},
		{"", ""},
		{" a b ", "a b"},
		{" x ", "x"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromString(tt.input).Trim().String(), "%q", tt.input)
	}

	s := FromString("  padded  ")
	trimmed := s.Trim()
	assert.True(t, trimmed.SharesStorage(s))
	assert.Equal(t, 2, s.Refs())
}

func TestString_Substr(t *testing.T) {
	tests := []struct {
		pos, count int
		want       string
	}{
		{1, -1, "bc"},
		{1, 2, "bc"},
		{1, 5, "bc"},
		{1, 1, "b"},
		{0, 3, "abc"},
		{0, 0, ""},
		{3, 1, ""},
		{-1, 2, ""},
		{10, -1, ""},
	}

	s := FromString("abc")
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Substr(tt.pos, tt.count).String(), "Substr(%d, %d)", tt.pos, tt.count)
	}

	sub := s.Substr(1, -1)
	assert.True(t, sub.SharesStorage(s))
	assert.False(t, s.Substr(0, 0).SharesStorage(s), "empty results hold no buffer")
}

func TestString_Case(t *testing.T) {
	assert.Equal(t, "\xc3\x84", FromString("\xc3\xa4").ToUpper().String())
	assert.Equal(t, "\xc3\xa4", FromString("\xc3\x84").ToLower().String())
	assert.Equal(t, "ПРИВЕТ WORLD", FromString("привет world").ToUpper().String())

	s := FromString("already lower")
	lower := s.ToLower()
	assert.True(t, lower.Equal(s))
	assert.False(t, lower.SharesStorage(s), "case conversion always copies")
}

func TestString_Sharing(t *testing.T) {
	s := FromString("hello world")
	require.Equal(t, 1, s.Refs())

	shared := s.Share()
	assert.Equal(t, 2, s.Refs())
	assert.True(t, shared.SharesStorage(s))

	word := s.Substr(6, -1)
	assert.Equal(t, 3, s.Refs())

	shared.Release()
	assert.True(t, shared.Empty())
	assert.Equal(t, 0, shared.Refs())
	assert.Equal(t, 2, s.Refs())

	s.Release()
	assert.Equal(t, 1, word.Refs())
	assert.Equal(t, "world", word.String(), "a sub-view keeps the buffer alive")

	word.Release()
	assert.Equal(t, 0, word.Refs())
}

func TestString_ReleaseFreesBuffer(t *testing.T) {
	s := FromString("abc")
	b := s.buf
	s.Release()
	assert.Nil(t, b.runes)
	assert.Equal(t, int32(0), b.refs.Load())

	// Releasing the zero value is a no-op.
	var empty String
	empty.Release()
	empty.Release()
}

func TestString_Assign(t *testing.T) {
	a := FromString("first")
	b := FromString("second")
	old := a.buf

	a.Assign(b)
	assert.Equal(t, "second", a.String())
	assert.True(t, a.SharesStorage(b))
	assert.Equal(t, 2, b.Refs())
	assert.Nil(t, old.runes, "the previous buffer lost its last reference")

	// Re-pointing to another window of the same buffer keeps the count.
	a.Assign(b.Substr(0, 3))
	assert.Equal(t, "sec", a.String())

	a.Assign(String{})
	assert.True(t, a.Empty())
	assert.Equal(t, 0, a.Refs())
}

func TestString_Runes(t *testing.T) {
	s := FromString("ab")
	runes := s.Runes()
	runes[0] = MustRune('z')
	assert.Equal(t, "ab", s.String(), "Runes returns a copy")
}

func TestString_ConcurrentShare(t *testing.T) {
	s := FromString("shared")
	const workers = 16

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				v := s.Share()
				_ = v.Len()
				v.Release()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, s.Refs())
}
