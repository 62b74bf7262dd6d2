package runestring

// Line terminators recognized by [String.Lines].
const (
	lineFeed       = '\n'
	carriageReturn = '\r'
)

// Lines splits s into the lines it contains. A line ends at a line feed, at a
// carriage return, or at a carriage return followed by a line feed, which
// counts as a single terminator. Terminators are not part of the returned
// lines.
//
// Empty lines between terminators are kept, but a terminator at the very end
// of s does not start another, empty line. A string without terminators is
// returned as its only line. Each line is a view into the buffer of s.
func (s String) Lines() []String {
	var lines []String
	runes := s.view()
	begin := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i].code {
		case carriageReturn:
			lines = append(lines, s.window(begin, i-begin))
			if i+1 < len(runes) && runes[i+1].code == lineFeed {
				i++ // CR LF
			}
			begin = i + 1
		case lineFeed:
			lines = append(lines, s.window(begin, i-begin))
			begin = i + 1
		}
	}
	if begin < len(runes) {
		lines = append(lines, s.window(begin, len(runes)-begin))
	}
	return lines
}
