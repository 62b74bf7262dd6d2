package runestring

import "io"

// Rune is a single Unicode code point in the range 0 through [MaxCode].
//
// The zero value is U+0000. Runes are plain values and can be copied and
// compared freely; use [NewRune] or [MustRune] to create one from an integer.
type Rune struct {
	code uint32
}

// The smallest and the largest code point.
var (
	MinRune = Rune{}
	MaxRune = Rune{code: MaxCode}
)

// NewRune returns the rune for the given code point. It returns an error
// wrapping [ErrRange] if code is larger than [MaxCode].
func NewRune(code uint32) (Rune, error) {
	if code > MaxCode {
		return Rune{}, rangeError(code)
	}
	return Rune{code: code}, nil
}

// MustRune is like [NewRune] but panics if code is out of range. It is meant
// for constants known to be valid.
func MustRune(code uint32) Rune {
	r, err := NewRune(code)
	if err != nil {
		panic(err)
	}
	return r
}

// Code returns the code point which the rune represents.
func (r Rune) Code() uint32 {
	return r.code
}

// IsZero reports whether r is U+0000.
func (r Rune) IsZero() bool {
	return r.code == 0
}

// Set replaces the code point of r. It returns an error wrapping [ErrRange],
// and leaves r unchanged, if code is larger than [MaxCode].
func (r *Rune) Set(code uint32) error {
	if code > MaxCode {
		return rangeError(code)
	}
	r.code = code
	return nil
}

// Equal reports whether r and o are the same code point.
func (r Rune) Equal(o Rune) bool {
	return r.code == o.code
}

// EqualCode reports whether r is the code point code.
func (r Rune) EqualCode(code uint32) bool {
	return r.code == code
}

// EqualFold reports whether r and o are equal under case folding.
func (r Rune) EqualFold(o Rune) bool {
	return r.EqualFoldCode(o.code)
}

// EqualFoldCode reports whether r and code are equal under case folding.
func (r Rune) EqualFoldCode(code uint32) bool {
	return ToLower(r.code) == ToLower(code)
}

// Compare returns -1, 0 or +1 depending on whether r orders before, equal to
// or after o.
func (r Rune) Compare(o Rune) int {
	return compareCodes(r.code, o.code)
}

// CompareCode is like [Rune.Compare] against a raw code point.
func (r Rune) CompareCode(code uint32) int {
	return compareCodes(r.code, code)
}

// CompareFold is like [Rune.Compare] but compares the case folded values.
func (r Rune) CompareFold(o Rune) int {
	return r.CompareFoldCode(o.code)
}

// CompareFoldCode is like [Rune.CompareFold] against a raw code point.
func (r Rune) CompareFoldCode(code uint32) int {
	return compareCodes(ToLower(r.code), ToLower(code))
}

func compareCodes(a, b uint32) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// ToLower returns the lower case equivalent of r if it is upper case.
func (r Rune) ToLower() Rune {
	return Rune{code: ToLower(r.code)}
}

// ToUpper returns the upper case equivalent of r if it is lower case.
func (r Rune) ToUpper() Rune {
	return Rune{code: ToUpper(r.code)}
}

// Next returns the code point following r. The successor of [MaxRune] is
// [MinRune].
func (r Rune) Next() Rune {
	if r.code == MaxCode {
		return MinRune
	}
	return Rune{code: r.code + 1}
}

// Prev returns the code point preceding r. The predecessor of [MinRune] is
// [MaxRune].
func (r Rune) Prev() Rune {
	if r.code == 0 {
		return MaxRune
	}
	return Rune{code: r.code - 1}
}

// Character classes, see the package level functions of the same name.

func (r Rune) IsAlnum() bool   { return IsAlnum(r.code) }
func (r Rune) IsAlpha() bool   { return IsAlpha(r.code) }
func (r Rune) IsASCII() bool   { return IsASCII(r.code) }
func (r Rune) IsBlank() bool   { return IsBlank(r.code) }
func (r Rune) IsControl() bool { return IsControl(r.code) }
func (r Rune) IsDigit() bool   { return IsDigit(r.code) }
func (r Rune) IsGraph() bool   { return IsGraph(r.code) }
func (r Rune) IsLower() bool   { return IsLower(r.code) }
func (r Rune) IsNumber() bool  { return IsNumber(r.code) }
func (r Rune) IsPrint() bool   { return IsPrint(r.code) }
func (r Rune) IsPunct() bool   { return IsPunct(r.code) }
func (r Rune) IsSpace() bool   { return IsSpace(r.code) }
func (r Rune) IsUpper() bool   { return IsUpper(r.code) }
func (r Rune) IsWord() bool    { return IsWord(r.code) }
func (r Rune) IsXDigit() bool  { return IsXDigit(r.code) }

// UTF8 returns the UTF-8 encoding of r, or nil if r is not [Encodable].
func (r Rune) UTF8() []byte {
	b, ok := EncodeRune(r.code)
	if !ok {
		return nil
	}
	return b
}

// String returns r encoded as UTF-8. It returns an empty string if r is not
// [Encodable].
func (r Rune) String() string {
	return string(r.UTF8())
}

// WriteTo writes the UTF-8 encoding of r to w.
func (r Rune) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.UTF8())
	return int64(n), err
}
