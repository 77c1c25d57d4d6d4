// Package detect finds verse references such as "John 3:16" or
// "1 Corinthians 13:4-7" in free text.
package detect

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"shuvoedward/Bible_lookup/internal/bible"
)

var referencePattern = buildPattern(bible.CanonicalBooks)

// buildPattern matches any of books followed by chapter:verse or
// chapter:verse-verse. Numbered books may omit the space ("1john").
func buildPattern(books []string) *regexp.Regexp {
	alternatives := make([]string, 0, len(books))
	for _, book := range books {
		words := strings.Fields(strings.ToLower(book))
		var b strings.Builder
		for i, word := range words {
			b.WriteString(regexp.QuoteMeta(word))
			if i == len(words)-1 {
				break
			}
			if i == 0 && isNumber(word) {
				b.WriteString(`\s?`)
			} else {
				b.WriteString(`\s+`)
			}
		}
		alternatives = append(alternatives, b.String())
	}

	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alternatives, "|") + `)\s+\d+:\d+(?:-\d+)?\b`)
}

// References returns the references found in text in order of appearance.
// Book names are matched case-insensitively and returned lowercase.
func References(text string) []bible.Lookup {
	var lookups []bible.Lookup

	for _, match := range referencePattern.FindAllString(text, -1) {
		l, ok := parseMatch(match)
		if ok {
			lookups = append(lookups, l)
		}
	}

	return lookups
}

func parseMatch(match string) (bible.Lookup, bool) {
	bookChapter, verses, _ := strings.Cut(match, ":")

	fields := strings.Fields(bookChapter)
	chapter, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return bible.Lookup{}, false
	}
	book := splitNumberPrefix(strings.Join(fields[:len(fields)-1], " "))

	first, last, isRange := strings.Cut(verses, "-")
	verse, err := strconv.Atoi(first)
	if err != nil {
		return bible.Lookup{}, false
	}
	if !isRange {
		return bible.NewLookup(book, chapter, verse), true
	}

	thru, err := strconv.Atoi(last)
	if err != nil || thru < verse {
		return bible.Lookup{}, false
	}
	return bible.NewRangeLookup(book, chapter, verse, thru), true
}

// splitNumberPrefix turns "1john" into "1 john".
func splitNumberPrefix(book string) string {
	if len(book) > 1 && unicode.IsDigit(rune(book[0])) && book[1] != ' ' {
		return book[:1] + " " + book[1:]
	}
	return book
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
