package runestring

// Words splits s around each run of white space, as defined by [IsSpace], and
// returns the words in between. Only non-empty words are returned, so leading,
// trailing and repeated white space produce no empty elements. Each word is a
// view into the buffer of s.
func (s String) Words() []String {
	var words []String
	runes := s.view()
	begin := 0
	for i, r := range runes {
		if !IsSpace(r.code) {
			continue
		}
		if i > begin {
			words = append(words, s.window(begin, i-begin))
		}
		begin = i + 1
	}
	if begin < len(runes) {
		words = append(words, s.window(begin, len(runes)-begin))
	}
	return words
}
