package runestring

import "io"

// Numbers fundamental to the encoding.
const (
	MaxCode = 0x10FFFF // Maximum valid Unicode code point.
	UTFMax  = 4        // Maximum number of bytes of a UTF-8 encoded code point.
)

// Code points in the surrogate range are not valid for UTF-8.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// The noncharacter band of the Arabic Presentation Forms-A block.
const (
	noncharMin = 0xFDD0
	noncharMax = 0xFDEF
)

const (
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// Encodable reports whether code can be written as UTF-8 by [AppendRune].
// Code points above [MaxCode], UTF-16 surrogates and noncharacters (U+FDD0
// through U+FDEF and every code point ending in FFFE or FFFF) are rejected.
func Encodable(code uint32) bool {
	switch {
	case code > MaxCode:
		return false
	case code&0xFFFE == 0xFFFE:
		return false
	case surrogateMin <= code && code <= surrogateMax:
		return false
	case noncharMin <= code && code <= noncharMax:
		return false
	}
	return true
}

// RuneLen returns the number of bytes required to encode code, or -1 if code
// is not [Encodable].
func RuneLen(code uint32) int {
	switch {
	case !Encodable(code):
		return -1
	case code <= rune1Max:
		return 1
	case code <= rune2Max:
		return 2
	case code <= rune3Max:
		return 3
	}
	return 4
}

// AppendRune appends the UTF-8 encoding of code to the end of p and returns
// the extended buffer. If code is not [Encodable], p is returned unchanged and
// the second return value is false.
func AppendRune(p []byte, code uint32) ([]byte, bool) {
	switch n := RuneLen(code); n {
	case -1:
		return p, false
	case 1:
		return append(p, byte(code)), true
	case 2:
		return append(p,
			t2|byte(code>>6),
			tx|byte(code)&maskx,
		), true
	case 3:
		return append(p,
			t3|byte(code>>12),
			tx|byte(code>>6)&maskx,
			tx|byte(code)&maskx,
		), true
	default:
		return append(p,
			t4|byte(code>>18),
			tx|byte(code>>12)&maskx,
			tx|byte(code>>6)&maskx,
			tx|byte(code)&maskx,
		), true
	}
}

// EncodeRune returns the UTF-8 encoding of code. The second return value is
// false if code is not [Encodable].
func EncodeRune(code uint32) ([]byte, bool) {
	return AppendRune(make([]byte, 0, UTFMax), code)
}

// DecodeSize returns the length of the UTF-8 sequence introduced by the given
// lead byte: 1 to 4, or 0 if lead is a continuation byte or cannot start a
// sequence. The obsolete 5- and 6-byte forms (lead bytes 0xF8 to 0xFD) are
// reported as 0.
func DecodeSize(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xC0 == tx:
		return 0
	case lead&0xE0 == t2:
		return 2
	case lead&0xF0 == t3:
		return 3
	case lead&0xF8 == t4:
		return 4
	}
	return 0
}

// leadBits returns the payload bits of a lead byte for a sequence of size n.
func leadBits(lead byte, n int) uint32 {
	switch n {
	case 2:
		return uint32(lead & mask2)
	case 3:
		return uint32(lead & mask3)
	case 4:
		return uint32(lead & mask4)
	}
	return uint32(lead)
}

// DecodeRune decodes the first UTF-8 sequence in p and returns the code point
// and its width in bytes. If p is empty or starts with a malformed, overlong,
// truncated or non-[Encodable] sequence, the returned size is 0.
func DecodeRune(p []byte) (code uint32, size int) {
	if len(p) == 0 {
		return 0, 0
	}
	n := DecodeSize(p[0])
	if n == 0 || len(p) < n {
		return 0, 0
	}
	code = leadBits(p[0], n)
	for _, b := range p[1:n] {
		if b&0xC0 != tx {
			return 0, 0
		}
		code = code<<6 | uint32(b&maskx)
	}
	if RuneLen(code) != n {
		return 0, 0
	}
	return code, n
}

// DecodeRuneInString is like [DecodeRune] but its input is a string.
func DecodeRuneInString(s string) (code uint32, size int) {
	if len(s) == 0 {
		return 0, 0
	}
	n := DecodeSize(s[0])
	if n == 0 || len(s) < n {
		return 0, 0
	}
	code = leadBits(s[0], n)
	for i := 1; i < n; i++ {
		if s[i]&0xC0 != tx {
			return 0, 0
		}
		code = code<<6 | uint32(s[i]&maskx)
	}
	if RuneLen(code) != n {
		return 0, 0
	}
	return code, n
}

// ReadRune reads one UTF-8 encoded code point from r.
//
// It returns [io.EOF] if r is exhausted before the first byte and
// [io.ErrUnexpectedEOF] if r ends in the middle of a sequence. A lead byte that
// cannot start a sequence, a continuation byte without the 10xxxxxx pattern or
// a decoded value that is overlong, a surrogate or otherwise not [Encodable]
// yields [ErrInvalidUTF8]. Bytes read before the failure are consumed.
func ReadRune(r io.ByteReader) (uint32, error) {
	lead, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	n := DecodeSize(lead)
	if n == 0 {
		return 0, ErrInvalidUTF8
	}
	code := leadBits(lead, n)
	for i := 1; i < n; i++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		} else if err != nil {
			return 0, err
		}
		if b&0xC0 != tx {
			return 0, ErrInvalidUTF8
		}
		code = code<<6 | uint32(b&maskx)
	}
	if RuneLen(code) != n {
		return 0, ErrInvalidUTF8
	}
	return code, nil
}
