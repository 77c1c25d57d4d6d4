package bible

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var superscriptReplacer = strings.NewReplacer(
	"0", "⁰",
	"1", "¹",
	"2", "²",
	"3", "³",
	"4", "⁴",
	"5", "⁵",
	"6", "⁶",
	"7", "⁷",
	"8", "⁸",
	"9", "⁹",
)

// Superscript maps ASCII digits to their Unicode superscript form.
// Every other character passes through unchanged.
func Superscript(s string) string {
	return superscriptReplacer.Replace(s)
}

// CapitalizeBook formats a lowercase book name for display.
// Every word gets an upper-case first letter unless it starts with a digit,
// so "1 samuel" becomes "1 Samuel" and "song of solomon" becomes
// "Song Of Solomon".
func CapitalizeBook(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if unicode.IsNumber(r) {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

// FormatLine renders one verse in the corpus line format read by Parse.
func FormatLine(book string, chapter, verse int, text string) string {
	return fmt.Sprintf("%s %d:%d %s", CapitalizeBook(book), chapter, verse, text)
}
