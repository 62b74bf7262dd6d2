package runestring

// NotFound is returned by the search functions when there is no match. It is
// never a valid index.
const NotFound = -1

// Find returns the index of the first occurrence of needle in s at or after
// pos, or [NotFound]. A negative pos searches from the start. An empty needle
// matches at pos itself as long as pos is not past the end of s.
func (s String) Find(needle String, pos int) int {
	return s.FindRunes(needle.view(), pos)
}

// FindRunes is like [String.Find] with the needle given as a rune slice.
func (s String) FindRunes(needle []Rune, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if len(needle) == 0 {
		if pos > s.length {
			return NotFound
		}
		return pos
	}
	runes := s.view()
	for i := pos; i+len(needle) <= len(runes); i++ {
		if hasPrefix(runes[i:], needle) {
			return i
		}
	}
	return NotFound
}

// FindRune returns the index of the first occurrence of r in s at or after
// pos, or [NotFound].
func (s String) FindRune(r Rune, pos int) int {
	if pos < 0 {
		pos = 0
	}
	runes := s.view()
	for i := pos; i < len(runes); i++ {
		if runes[i].code == r.code {
			return i
		}
	}
	return NotFound
}

// RFind returns the index of the last occurrence of needle in s that starts
// at or before pos, or [NotFound]. A negative pos searches from the end. An
// empty needle matches at pos, or at the end of s if pos is past it.
func (s String) RFind(needle String, pos int) int {
	return s.RFindRunes(needle.view(), pos)
}

// RFindRunes is like [String.RFind] with the needle given as a rune slice.
func (s String) RFindRunes(needle []Rune, pos int) int {
	if pos < 0 || pos > s.length {
		pos = s.length
	}
	if len(needle) > s.length {
		return NotFound
	}
	runes := s.view()
	for i := min(pos, len(runes)-len(needle)); i >= 0; i-- {
		if hasPrefix(runes[i:], needle) {
			return i
		}
	}
	return NotFound
}

// RFindRune returns the index of the last occurrence of r in s at or before
// pos, or [NotFound]. A negative pos searches from the end.
func (s String) RFindRune(r Rune, pos int) int {
	runes := s.view()
	if pos < 0 || pos >= len(runes) {
		pos = len(runes) - 1
	}
	for i := pos; i >= 0; i-- {
		if runes[i].code == r.code {
			return i
		}
	}
	return NotFound
}

// Contains reports whether needle occurs in s.
func (s String) Contains(needle String) bool {
	return s.Find(needle, 0) != NotFound
}

// HasPrefix reports whether s begins with prefix.
func (s String) HasPrefix(prefix String) bool {
	return prefix.length <= s.length && hasPrefix(s.view(), prefix.view())
}

// HasSuffix reports whether s ends with suffix.
func (s String) HasSuffix(suffix String) bool {
	return suffix.length <= s.length && hasPrefix(s.view()[s.length-suffix.length:], suffix.view())
}

// hasPrefix reports whether runes starts with prefix. The caller guarantees
// that runes is at least as long as prefix.
func hasPrefix(runes, prefix []Rune) bool {
	for j, r := range prefix {
		if runes[j].code != r.code {
			return false
		}
	}
	return true
}
