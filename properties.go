package runestring

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Composite character classes built from the Unicode general categories.
var (
	// Letters and decimal digits.
	alnumTable = rangetable.Merge(unicode.L, unicode.Nd)

	// Space separators and the horizontal tab.
	blankTable = rangetable.Merge(unicode.Zs, rangetable.New('\t'))

	// Punctuation and symbols, which matches C's ispunct() on ASCII.
	punctTable = rangetable.Merge(unicode.P, unicode.S)

	// Letters, decimal digits and connector punctuation (which includes '_').
	wordTable = rangetable.Merge(unicode.L, unicode.Nd, unicode.Pc)
)

// caseSearch returns the range of the sorted table containing code, using a
// binary search. The second return value is false if no range contains it.
func caseSearch(table []caseRange, code uint32) (caseRange, bool) {
	// Run a binary search.
	from := 0
	to := len(table)
	for to > from {
		middle := (from + to) / 2
		cr := table[middle]
		if code < cr.lo {
			to = middle
			continue
		}
		if code > cr.hi {
			from = middle + 1
			continue
		}
		return cr, true
	}
	return caseRange{}, false
}

// mapCase applies the case mapping table to code.
func mapCase(table []caseRange, code uint32) uint32 {
	cr, ok := caseSearch(table, code)
	if !ok {
		return code
	}
	switch cr.rule {
	case crEven:
		if code&1 != 0 {
			return code
		}
	case crOdd:
		if code&1 == 0 {
			return code
		}
	}
	return uint32(int32(code) + cr.delta)
}

// ToLower returns the lower case equivalent of code if it is an upper case
// character covered by the case tables. Any other value is returned unchanged.
func ToLower(code uint32) uint32 {
	if code < 'A' {
		return code
	}
	return mapCase(toLowerTable, code)
}

// ToUpper returns the upper case equivalent of code if it is a lower case
// character covered by the case tables. Any other value is returned unchanged.
func ToUpper(code uint32) uint32 {
	if code < 'a' {
		return code
	}
	return mapCase(toUpperTable, code)
}

// IsAlnum reports whether code is a letter or a decimal digit.
func IsAlnum(code uint32) bool {
	if code <= unicode.MaxASCII {
		return IsDigit(code) || isASCIILetter(code)
	}
	return code <= MaxCode && unicode.Is(alnumTable, rune(code))
}

// IsAlpha reports whether code is a letter.
func IsAlpha(code uint32) bool {
	if code <= unicode.MaxASCII {
		return isASCIILetter(code)
	}
	return code <= MaxCode && unicode.IsLetter(rune(code))
}

// IsASCII reports whether code is in the 7-bit ASCII range.
func IsASCII(code uint32) bool {
	return code <= unicode.MaxASCII
}

// IsBlank reports whether code separates words on a line, that is, a space
// separator or a horizontal tab.
func IsBlank(code uint32) bool {
	return code <= MaxCode && unicode.Is(blankTable, rune(code))
}

// IsControl reports whether code is a control character.
func IsControl(code uint32) bool {
	return code <= MaxCode && unicode.IsControl(rune(code))
}

// IsDigit reports whether code is one of the decimal digits '0' through '9'.
func IsDigit(code uint32) bool {
	return '0' <= code && code <= '9'
}

// IsGraph reports whether code is printable and not a space.
func IsGraph(code uint32) bool {
	return code != ' ' && IsPrint(code)
}

// IsLower reports whether code is a lower case letter.
func IsLower(code uint32) bool {
	if code <= unicode.MaxASCII {
		return 'a' <= code && code <= 'z'
	}
	return code <= MaxCode && unicode.IsLower(rune(code))
}

// IsNumber reports whether code is a number character of any script.
func IsNumber(code uint32) bool {
	if code <= unicode.MaxASCII {
		return IsDigit(code)
	}
	return code <= MaxCode && unicode.IsNumber(rune(code))
}

// IsPrint reports whether code is printable. Unlike [IsGraph], the ASCII space
// is printable.
func IsPrint(code uint32) bool {
	return code <= MaxCode && unicode.IsPrint(rune(code))
}

// IsPunct reports whether code is a punctuation character or a symbol.
func IsPunct(code uint32) bool {
	return code <= MaxCode && unicode.Is(punctTable, rune(code))
}

// IsSpace reports whether code is white space as defined by the Unicode
// White_Space property.
func IsSpace(code uint32) bool {
	return code <= MaxCode && unicode.IsSpace(rune(code))
}

// IsUpper reports whether code is an upper case letter.
func IsUpper(code uint32) bool {
	if code <= unicode.MaxASCII {
		return 'A' <= code && code <= 'Z'
	}
	return code <= MaxCode && unicode.IsUpper(rune(code))
}

// IsWord reports whether code can be part of an identifier-like word.
func IsWord(code uint32) bool {
	return code <= MaxCode && unicode.Is(wordTable, rune(code))
}

// IsXDigit reports whether code is a hexadecimal digit.
func IsXDigit(code uint32) bool {
	return IsDigit(code) || 'a' <= code && code <= 'f' || 'A' <= code && code <= 'F'
}

func isASCIILetter(code uint32) bool {
	return 'a' <= code && code <= 'z' || 'A' <= code && code <= 'Z'
}
