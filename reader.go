package runestring

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Reader decodes UTF-8 text from a byte stream.
//
// Malformed input stops decoding and is recorded: once [Reader.Err] returns a
// non-nil error, every further read fails with it. The end of the input,
// including a stream that ends in the middle of a sequence, is not a failure.
type Reader struct {
	r   io.ByteReader
	err error
}

// NewReader returns a Reader decoding r. If r does not implement
// [io.ByteReader] it is wrapped in a [bufio.Reader].
func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// Err returns the error that stopped decoding, or nil if the input has been
// well-formed so far.
func (r *Reader) Err() error {
	return r.err
}

// ReadRune reads the next rune. At the end of the input it returns [io.EOF].
// Malformed input returns an error wrapping [ErrInvalidUTF8].
func (r *Reader) ReadRune() (Rune, error) {
	if r.err != nil {
		return Rune{}, r.err
	}
	code, err := ReadRune(r.r)
	switch {
	case err == nil:
		return Rune{code: code}, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return Rune{}, io.EOF
	}
	r.err = err
	return Rune{}, err
}

// ReadLine reads runes up to and including the next line feed and returns
// them, without the line feed, as a new string.
//
// The error is nil if the line was terminated by a line feed. If the input
// ends first, the error is [io.EOF] and the string holds the runes of the
// unterminated last line, if any. If decoding fails, the string holds the
// runes read before the malformed sequence and the error is the one also
// reported by [Reader.Err].
func (r *Reader) ReadLine() (String, error) {
	var runes []Rune
	for {
		c, err := r.ReadRune()
		if err != nil {
			return FromRunes(runes), err
		}
		if c.code == lineFeed {
			return FromRunes(runes), nil
		}
		runes = append(runes, c)
	}
}

// Lines returns an iterator over the remaining lines of the input, as read by
// [Reader.ReadLine]. An unterminated last line is included. Iteration stops at
// the end of the input or at the first decoding failure; check [Reader.Err]
// afterwards.
func (r *Reader) Lines() iter.Seq[String] {
	return func(yield func(String) bool) {
		for {
			line, err := r.ReadLine()
			if err != nil {
				if err == io.EOF && !line.Empty() {
					yield(line)
				}
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}

// WriteTo writes the UTF-8 encoding of s to w.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.UTF8())
	return int64(n), err
}
