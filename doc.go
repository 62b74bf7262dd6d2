/*
Package runestring implements Unicode code point strings with shared,
reference counted storage, together with the UTF-8, UTF-16 and UTF-32 codecs
that back them.

# Overview

Using this package, you can:
  - Hold single code points as [Rune] values, classify them and map their case
  - Encode and decode UTF-8 one code point at a time
  - Build [String] values whose substrings, lines and words share one buffer
  - Search, compare, trim and split strings by code point
  - Convert strings to UTF-8, UTF-16 or UTF-32 and back
  - Read UTF-8 text from a stream rune by rune or line by line

# Runes

A [Rune] is a code point in the range 0 through [MaxCode]. Construct one with
[NewRune], which rejects larger values with [ErrRange]:

	r, err := runestring.NewRune(0x00C4) // Ä
	r.ToLower()                           // ä
	r.IsUpper()                           // true
	r.String()                            // "Ä"

Case mapping uses a fixed table covering ASCII, Latin-1, Latin Extended-A,
Cyrillic, Armenian, Georgian and the fullwidth Latin letters. Code points
outside of it are returned unchanged.

# Strings and Sharing

A [String] is a window into a shared buffer. [String.Substr], [String.Trim],
[String.Lines] and [String.Words] return new windows without copying runes;
operations producing new content, such as [String.Concat] and
[String.ToUpper], allocate a new buffer.

Every String returned by the package owns a reference to its buffer. A plain
Go assignment makes a borrowed copy. [String.Share] takes another reference,
[String.Assign] re-points a variable and [String.Release] gives a reference
back. When the last reference is released the buffer drops its runes.

	s := runestring.FromString("  hello world  ")
	t := s.Trim()  // shares the buffer of s
	s.Release()    // t keeps the buffer alive
	fmt.Println(t) // hello world
	t.Release()

# Searching and Splitting

[String.Find] and [String.RFind] return rune offsets or [NotFound]. Lines
end at LF, CR or CR LF; words are separated by runs of white space.

# Encodings

[String.UTF8], [String.UTF16BE], [String.UTF16LE], [String.UTF32BE] and
[String.UTF32LE] serialize a string. Code points that UTF-8 cannot represent,
namely surrogates and noncharacters, are skipped by the UTF-8 encoder. Text
parsed with [FromString] or [FromBytes] stops silently at the first malformed
sequence.

# Streams

A [Reader] decodes UTF-8 from an [io.Reader]. Unlike the literal parsers it
reports malformed input: [Reader.Err] returns an error wrapping
[ErrInvalidUTF8] after the first bad sequence.

# Concurrency

Reading a String from several goroutines is safe and so is sharing and
releasing distinct views of one buffer. A single String variable must not be
assigned or released concurrently.
*/
package runestring
