package runestring

// String is an immutable sequence of runes.
//
// A String is a view, an offset and a length, into a shared, reference counted
// buffer. Taking a substring, trimming or splitting never copies runes: the
// result is a new window into the same buffer. Operations that produce new
// content, such as [String.Concat] or [String.ToUpper], always allocate a new
// buffer and leave every existing view untouched.
//
// The zero value is the empty string.
//
// Every String returned by this package owns one reference to its buffer.
// Copying a String with a plain assignment creates a borrowed view that does
// not count as a reference; use [String.Share] to take a counted copy,
// [String.Assign] to re-point a variable and [String.Release] to drop one.
// A borrowed view must not be used after the last owning view was released.
type String struct {
	buf    *buffer
	offset int
	length int
}

// Repeat returns a string of count copies of r. A count of zero or less
// yields the empty string.
func Repeat(count int, r Rune) String {
	if count <= 0 {
		return String{}
	}
	b := newBuffer(count)
	for i := range b.runes {
		b.runes[i] = r
	}
	return String{buf: b, length: count}
}

// FromRunes returns a string holding a copy of runes.
func FromRunes(runes []Rune) String {
	if len(runes) == 0 {
		return String{}
	}
	b := newBuffer(len(runes))
	copy(b.runes, runes)
	return String{buf: b, length: len(runes)}
}

// FromCodes returns a string holding the given code points. It returns an
// error wrapping [ErrRange] if any of them is larger than [MaxCode].
func FromCodes(codes []uint32) (String, error) {
	for _, c := range codes {
		if c > MaxCode {
			return String{}, rangeError(c)
		}
	}
	if len(codes) == 0 {
		return String{}, nil
	}
	b := newBuffer(len(codes))
	for i, c := range codes {
		b.runes[i] = Rune{code: c}
	}
	return String{buf: b, length: len(codes)}, nil
}

// FromString decodes the UTF-8 encoded text s. Decoding is best-effort: it
// stops silently at the first malformed sequence and the result holds the
// runes decoded up to that point.
func FromString(s string) String {
	var n, count int
	for n < len(s) {
		_, size := DecodeRuneInString(s[n:])
		if size == 0 {
			break
		}
		n += size
		count++
	}
	if count == 0 {
		return String{}
	}
	b := newBuffer(count)
	for i, pos := 0, 0; i < count; i++ {
		code, size := DecodeRuneInString(s[pos:])
		b.runes[i] = Rune{code: code}
		pos += size
	}
	return String{buf: b, length: count}
}

// FromBytes is like [FromString] but its input is a byte slice.
func FromBytes(p []byte) String {
	var n, count int
	for n < len(p) {
		_, size := DecodeRune(p[n:])
		if size == 0 {
			break
		}
		n += size
		count++
	}
	if count == 0 {
		return String{}
	}
	b := newBuffer(count)
	for i, pos := 0, 0; i < count; i++ {
		code, size := DecodeRune(p[pos:])
		b.runes[i] = Rune{code: code}
		pos += size
	}
	return String{buf: b, length: count}
}

// view returns the runes of s. The slice aliases the shared buffer and must
// not be modified.
func (s String) view() []Rune {
	if s.length == 0 {
		return nil
	}
	return s.buf.runes[s.offset : s.offset+s.length]
}

// window returns a new owning view of length runes starting at pos.
func (s String) window(pos, length int) String {
	if length == 0 {
		return String{}
	}
	return String{buf: s.buf.acquire(), offset: s.offset + pos, length: length}
}

// Share returns a copy of s that holds its own reference to the buffer.
func (s String) Share() String {
	return s.window(0, s.length)
}

// Assign makes s a view of the same content as o. The buffer s referred to
// before is released if s held its last reference. No runes are copied.
func (s *String) Assign(o String) {
	if s.buf != o.buf {
		s.buf.release()
		s.buf = o.buf.acquire()
	}
	s.offset, s.length = o.offset, o.length
}

// Release drops the reference s holds and resets s to the empty string. The
// buffer is freed when this was its last reference.
func (s *String) Release() {
	s.buf.release()
	*s = String{}
}

// Refs returns the number of references held on the buffer of s, or 0 for
// a string without one.
func (s String) Refs() int {
	if s.buf == nil {
		return 0
	}
	return int(s.buf.refs.Load())
}

// SharesStorage reports whether s and o are views into the same buffer.
func (s String) SharesStorage(o String) bool {
	return s.buf != nil && s.buf == o.buf
}

// Len returns the number of runes in s.
func (s String) Len() int {
	return s.length
}

// Empty reports whether s has no runes.
func (s String) Empty() bool {
	return s.length == 0
}

// Blank reports whether s is empty or consists of white space only.
func (s String) Blank() bool {
	for _, r := range s.view() {
		if !IsSpace(r.code) {
			return false
		}
	}
	return true
}

// Front returns the first rune of s, or an error wrapping [ErrOutOfBounds] if
// s is empty.
func (s String) Front() (Rune, error) {
	return s.At(0)
}

// Back returns the last rune of s, or an error wrapping [ErrOutOfBounds] if
// s is empty.
func (s String) Back() (Rune, error) {
	return s.At(s.length - 1)
}

// At returns the rune at index i, or an error wrapping [ErrOutOfBounds] if i
// is not a valid index. A borrowed view whose buffer has been released has no
// valid index.
func (s String) At(i int) (Rune, error) {
	if i < 0 || i >= s.length {
		return Rune{}, boundsError(i, s.length)
	}
	if s.buf == nil || s.buf.runes == nil {
		return Rune{}, boundsError(i, 0)
	}
	return s.buf.runes[s.offset+i], nil
}

// Runes returns a copy of the runes of s.
func (s String) Runes() []Rune {
	return append([]Rune(nil), s.view()...)
}

// Equal reports whether s and o hold the same runes.
func (s String) Equal(o String) bool {
	if s.length != o.length {
		return false
	}
	if s.buf == o.buf && s.offset == o.offset {
		return true
	}
	b := o.view()
	for i, r := range s.view() {
		if r.code != b[i].code {
			return false
		}
	}
	return true
}

// EqualFold reports whether s and o are equal under case folding.
func (s String) EqualFold(o String) bool {
	if s.length != o.length {
		return false
	}
	if s.buf == o.buf && s.offset == o.offset {
		return true
	}
	b := o.view()
	for i, r := range s.view() {
		if !r.EqualFold(b[i]) {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing s and o lexicographically by code
// point. The result is 0 if s == o, -1 if s < o, and +1 if s > o. A string
// that is a prefix of the other orders first.
func (s String) Compare(o String) int {
	if s.buf != o.buf || s.offset != o.offset {
		a, b := s.view(), o.view()
		for i := range min(len(a), len(b)) {
			if c := a[i].Compare(b[i]); c != 0 {
				return c
			}
		}
	}
	return compareLengths(s.length, o.length)
}

// CompareFold is like [String.Compare] but compares case folded runes.
func (s String) CompareFold(o String) int {
	if s.buf != o.buf || s.offset != o.offset {
		a, b := s.view(), o.view()
		for i := range min(len(a), len(b)) {
			if c := a[i].CompareFold(b[i]); c != 0 {
				return c
			}
		}
	}
	return compareLengths(s.length, o.length)
}

func compareLengths(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// Concat returns the concatenation of s and o in a newly allocated buffer. If
// either operand is empty, the other one is returned without copying.
func (s String) Concat(o String) String {
	switch {
	case s.length == 0:
		return o.Share()
	case o.length == 0:
		return s.Share()
	}
	b := newBuffer(s.length + o.length)
	copy(b.runes, s.view())
	copy(b.runes[s.length:], o.view())
	return String{buf: b, length: s.length + o.length}
}

// Append returns a new string holding the runes of s followed by r.
func (s String) Append(r Rune) String {
	b := newBuffer(s.length + 1)
	copy(b.runes, s.view())
	b.runes[s.length] = r
	return String{buf: b, length: s.length + 1}
}

// Trim returns s without leading and trailing white space. The result is a
// view into the buffer of s.
func (s String) Trim() String {
	runes := s.view()
	i, j := 0, len(runes)
	for i < j && IsSpace(runes[i].code) {
		i++
	}
	for j > i && IsSpace(runes[j-1].code) {
		j--
	}
	return s.window(i, j-i)
}

// Substr returns the view of at most count runes starting at pos. A negative
// count selects everything up to the end of s. The window is clamped to the
// bounds of s; a pos outside of s yields the empty string.
func (s String) Substr(pos, count int) String {
	if pos < 0 || pos >= s.length {
		return String{}
	}
	if count < 0 || count > s.length-pos {
		count = s.length - pos
	}
	return s.window(pos, count)
}

// ToLower returns a copy of s with every rune mapped to lower case.
func (s String) ToLower() String {
	return s.mapRunes(Rune.ToLower)
}

// ToUpper returns a copy of s with every rune mapped to upper case.
func (s String) ToUpper() String {
	return s.mapRunes(Rune.ToUpper)
}

// mapRunes returns a new string with fn applied to every rune of s. The
// result never shares the buffer of s, even if no rune changes.
func (s String) mapRunes(fn func(Rune) Rune) String {
	if s.length == 0 {
		return String{}
	}
	b := newBuffer(s.length)
	for i, r := range s.view() {
		b.runes[i] = fn(r)
	}
	return String{buf: b, length: s.length}
}
