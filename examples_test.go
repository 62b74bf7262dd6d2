package runestring_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/scalecode-solutions/runestring"
)

func ExampleNewRune() {
	r, err := runestring.NewRune(0x00C4)
	if err != nil {
		panic(err)
	}
	fmt.Println(r, r.ToLower(), r.IsUpper())

	_, err = runestring.NewRune(0x110000)
	fmt.Println(err != nil)
	// Output: Ä ä true
	// true
}

func ExampleEncodeRune() {
	b, ok := runestring.EncodeRune(0x1F600)
	fmt.Printf("% x %v\n", b, ok)

	_, ok = runestring.EncodeRune(0xD800)
	fmt.Println(ok)
	// Output: f0 9f 98 80 true
	// false
}

func ExampleString_Trim() {
	s := runestring.FromString("  hello world  ")
	t := s.Trim()
	fmt.Println(t.SharesStorage(s), t.Refs())

	s.Release()
	fmt.Printf("[%s] %d\n", t, t.Refs())
	t.Release()
	// Output: true 2
	// [hello world] 1
}

func ExampleString_Find() {
	s := runestring.FromString("grüße, grüße")
	needle := runestring.FromString("grüße")
	fmt.Println(s.Find(needle, 0), s.Find(needle, 1), s.RFind(needle, -1))
	fmt.Println(s.Find(runestring.FromString("xyz"), 0) == runestring.NotFound)
	// Output: 0 7 7
	// true
}

func ExampleString_Lines() {
	s := runestring.FromString("one\r\ntwo\n\nthree")
	for _, line := range s.Lines() {
		fmt.Printf("(%s)\n", line)
	}
	// Output: (one)
	// (two)
	// ()
	// (three)
}

func ExampleString_Words() {
	s := runestring.FromString("\tthe  quick fox ")
	fmt.Println(len(s.Words()), s.Words()[2])
	// Output: 3 fox
}

func ExampleString_ToUpper() {
	s := runestring.FromString("ärger über öl")
	fmt.Println(s.ToUpper())
	// Output: ÄRGER ÜBER ÖL
}

func ExampleString_UTF16BE() {
	s := runestring.FromString("a😀")
	fmt.Printf("% x\n", s.UTF16BE())
	// Output: 00 61 d8 3d de 00
}

func ExampleReader_Lines() {
	rd := runestring.NewReader(strings.NewReader("first\nsecond\nthird"))
	for line := range rd.Lines() {
		_, _ = line.WriteTo(os.Stdout)
		fmt.Println()
	}
	fmt.Println(rd.Err())
	// Output: first
	// second
	// third
	// <nil>
}

func ExampleInterner() {
	in := runestring.NewInterner()
	a := in.Intern(runestring.FromString("token"))
	b := in.Intern(runestring.FromString("token"))
	fmt.Println(a.SharesStorage(b), in.Len())
	// Output: true 1
}
