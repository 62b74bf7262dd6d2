package runestring

import "github.com/rivo/uniseg"

// Width returns the number of monospace character cells needed to display s,
// for example in a terminal. East Asian wide characters and most emojis take
// two cells, combining marks and control characters none.
func (s String) Width() int {
	return uniseg.StringWidth(s.String())
}

// Width returns the number of monospace character cells needed to display r.
func (r Rune) Width() int {
	return uniseg.StringWidth(r.String())
}
