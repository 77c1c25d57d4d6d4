package bible

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Lookup identifies a single verse, or an inclusive verse range when built
// with NewRangeLookup. Book is always lowercase.
type Lookup struct {
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	ThruVerse int    `json:"thru_verse,omitempty"`

	hasThru bool
}

func NewLookup(book string, chapter, verse int) Lookup {
	return Lookup{
		Book:    normalizeBook(book),
		Chapter: chapter,
		Verse:   verse,
	}
}

func NewRangeLookup(book string, chapter, verse, thruVerse int) Lookup {
	return Lookup{
		Book:      normalizeBook(book),
		Chapter:   chapter,
		Verse:     verse,
		ThruVerse: thruVerse,
		hasThru:   true,
	}
}

// IsRange reports whether l was built as a range, even one that ends at 0.
func (l Lookup) IsRange() bool {
	return l.hasThru || l.ThruVerse != 0
}

// String renders the lookup for display, e.g. "1 Samuel 3:4" or "John 3:16-17".
func (l Lookup) String() string {
	if l.IsRange() {
		return fmt.Sprintf("%s %d:%d-%d", CapitalizeBook(l.Book), l.Chapter, l.Verse, l.ThruVerse)
	}
	return fmt.Sprintf("%s %d:%d", CapitalizeBook(l.Book), l.Chapter, l.Verse)
}

var referencePattern = regexp.MustCompile(`^(.+?)\s+(\d+):(\d+)(?:\s*-\s*(\d+))?$`)

// ParseReference parses a reference such as "John 3:16" or "song of
// solomon 2:1-4". The book is not checked against any index.
func ParseReference(ref string) (Lookup, error) {
	m := referencePattern.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return Lookup{}, fmt.Errorf("%w: %q", ErrInvalidVerseFormat, ref)
	}

	chapter, err := positiveInt(m[2])
	if err != nil {
		return Lookup{}, fmt.Errorf("%w: chapter in %q", ErrInvalidVerseFormat, ref)
	}
	verse, err := positiveInt(m[3])
	if err != nil {
		return Lookup{}, fmt.Errorf("%w: verse in %q", ErrInvalidVerseFormat, ref)
	}

	if m[4] == "" {
		return NewLookup(m[1], chapter, verse), nil
	}

	thru, err := positiveInt(m[4])
	if err != nil || thru < verse {
		return Lookup{}, fmt.Errorf("%w: verse range in %q", ErrInvalidVerseFormat, ref)
	}
	return NewRangeLookup(m[1], chapter, verse, thru), nil
}

func normalizeBook(book string) string {
	return strings.ToLower(strings.Join(strings.Fields(book), " "))
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
