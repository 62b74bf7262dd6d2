package runestring

import (
	"encoding/binary"
	"unicode/utf8"

	"go.trai.ch/zerr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// UTF8 returns s encoded as UTF-8. Runes that are not [Encodable] are
// skipped.
func (s String) UTF8() []byte {
	runes := s.view()
	p := make([]byte, 0, len(runes))
	for _, r := range runes {
		p, _ = AppendRune(p, r.code)
	}
	return p
}

// String returns s encoded as UTF-8, see [String.UTF8].
func (s String) String() string {
	return string(s.UTF8())
}

// UTF16BE returns s encoded as big endian UTF-16 without a byte order mark.
func (s String) UTF16BE() []byte {
	return s.appendUTF16(nil, binary.BigEndian)
}

// UTF16LE returns s encoded as little endian UTF-16 without a byte order mark.
func (s String) UTF16LE() []byte {
	return s.appendUTF16(nil, binary.LittleEndian)
}

// UTF32BE returns s encoded as big endian UTF-32 without a byte order mark.
func (s String) UTF32BE() []byte {
	return s.appendUTF32(nil, binary.BigEndian)
}

// UTF32LE returns s encoded as little endian UTF-32 without a byte order mark.
func (s String) UTF32LE() []byte {
	return s.appendUTF32(nil, binary.LittleEndian)
}

// appendUTF16 appends the UTF-16 code units of s in the given byte order.
// Code points above U+FFFF are written as surrogate pairs, everything else,
// including lone surrogates, as a single code unit.
func (s String) appendUTF16(p []byte, order binary.AppendByteOrder) []byte {
	runes := s.view()
	size := 0
	for _, r := range runes {
		if r.code > rune3Max {
			size += 4
		} else {
			size += 2
		}
	}
	if p == nil {
		p = make([]byte, 0, size)
	}
	for _, r := range runes {
		c := r.code
		if c <= rune3Max {
			p = order.AppendUint16(p, uint16(c))
			continue
		}
		c -= 0x10000
		p = order.AppendUint16(p, uint16(surrogateMin+c>>10))
		p = order.AppendUint16(p, uint16(0xDC00+c&0x3FF))
	}
	return p
}

// appendUTF32 appends every rune of s as four bytes in the given byte order.
func (s String) appendUTF32(p []byte, order binary.AppendByteOrder) []byte {
	runes := s.view()
	if p == nil {
		p = make([]byte, 0, 4*len(runes))
	}
	for _, r := range runes {
		p = order.AppendUint32(p, r.code)
	}
	return p
}

// FromUTF16BE decodes big endian UTF-16 text. Unpaired surrogates are
// replaced with U+FFFD, noncharacters are kept and a byte order mark is not
// interpreted.
func FromUTF16BE(p []byte) (String, error) {
	return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), p)
}

// FromUTF16LE is like [FromUTF16BE] for little endian input.
func FromUTF16LE(p []byte) (String, error) {
	return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), p)
}

// FromUTF32BE decodes big endian UTF-32 text. Surrogates and values above
// [MaxCode] are replaced with U+FFFD; noncharacters are kept.
func FromUTF32BE(p []byte) (String, error) {
	return decodeWith(utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), p)
}

// FromUTF32LE is like [FromUTF32BE] for little endian input.
func FromUTF32LE(p []byte) (String, error) {
	return decodeWith(utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), p)
}

// decodeWith transcodes p to UTF-8 with enc and collects the result. The
// transcoded text is well-formed, so noncharacters are kept as they are
// rather than ending the string the way [FromBytes] would.
func decodeWith(enc encoding.Encoding, p []byte) (String, error) {
	text, err := enc.NewDecoder().Bytes(p)
	if err != nil {
		return String{}, zerr.Wrap(err, "failed to decode text")
	}
	n := utf8.RuneCount(text)
	if n == 0 {
		return String{}, nil
	}
	b := newBuffer(n)
	i := 0
	for _, c := range string(text) {
		b.runes[i] = Rune{code: uint32(c)}
		i++
	}
	return String{buf: b, length: n}, nil
}
