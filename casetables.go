package runestring

// Case mapping rules. A rule decides which code points of a range are mapped.
const (
	crAll  = iota // Every code point in the range.
	crEven        // Even code points only, odd ones are left unchanged.
	crOdd         // Odd code points only, even ones are left unchanged.
)

// caseRange maps the code points lo through hi (inclusive) by adding delta to
// those selected by rule. Ranges within a table are sorted and disjoint.
type caseRange struct {
	lo, hi uint32
	rule   int
	delta  int32
}

// toLowerTable holds the upper to lower case mappings.
var toLowerTable = []caseRange{
	{0x0041, 0x005A, crAll, 32},   // A..Z
	{0x00C0, 0x00D6, crAll, 32},   // Latin-1 À..Ö
	{0x00D8, 0x00DE, crAll, 32},   // Latin-1 Ø..Þ
	{0x0100, 0x012F, crEven, 1},   // Latin Extended-A pairs
	{0x0130, 0x0130, crAll, -199}, // İ -> i
	{0x0132, 0x0137, crEven, 1},   // Ĳ..ķ
	{0x0139, 0x0148, crOdd, 1},    // Ĺ..ň
	{0x014A, 0x0177, crEven, 1},   // Ŋ..ŷ
	{0x0178, 0x0178, crAll, -121}, // Ÿ -> ÿ
	{0x0179, 0x017E, crOdd, 1},    // Ź..ž
	{0x0200, 0x0217, crEven, 1},   // Latin Extended-B Ȁ..ȗ
	{0x0401, 0x040C, crAll, 80},   // Cyrillic Ё..Ќ
	{0x040E, 0x040F, crAll, 80},   // Cyrillic Ў..Џ
	{0x0410, 0x042F, crAll, 32},   // Cyrillic А..Я
	{0x0460, 0x047F, crEven, 1},   // Cyrillic Ѡ..ѿ
	{0x0531, 0x0556, crAll, 48},   // Armenian Ա..Ֆ
	{0x10A0, 0x10C5, crAll, 48},   // Georgian Asomtavruli -> Mkhedruli
	{0xFF21, 0xFF3A, crAll, 32},   // Fullwidth Ａ..Ｚ
}

// toUpperTable holds the lower to upper case mappings.
var toUpperTable = []caseRange{
	{0x0061, 0x007A, crAll, -32},  // a..z
	{0x00E0, 0x00F6, crAll, -32},  // Latin-1 à..ö
	{0x00F8, 0x00FE, crAll, -32},  // Latin-1 ø..þ
	{0x00FF, 0x00FF, crAll, 121},  // ÿ -> Ÿ
	{0x0100, 0x012F, crOdd, -1},   // Latin Extended-A pairs
	{0x0131, 0x0131, crAll, -232}, // ı -> I
	{0x0132, 0x0137, crOdd, -1},   // Ĳ..ķ
	{0x0139, 0x0148, crEven, -1},  // Ĺ..ň
	{0x014A, 0x0177, crOdd, -1},   // Ŋ..ŷ
	{0x0179, 0x017E, crEven, -1},  // Ź..ž
	{0x017F, 0x017F, crAll, -300}, // ſ -> S
	{0x0200, 0x0217, crOdd, -1},   // Latin Extended-B Ȁ..ȗ
	{0x0430, 0x044F, crAll, -32},  // Cyrillic а..я
	{0x0451, 0x045C, crAll, -80},  // Cyrillic ё..ќ
	{0x045E, 0x045F, crAll, -80},  // Cyrillic ў..џ
	{0x0460, 0x047F, crOdd, -1},   // Cyrillic Ѡ..ѿ
	{0x0561, 0x0586, crAll, -48},  // Armenian ա..ֆ
	{0xFF41, 0xFF5A, crAll, -32},  // Fullwidth ａ..ｚ
}
