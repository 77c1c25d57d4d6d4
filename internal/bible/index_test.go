package bible

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

const testCorpus = `Genesis 1:1 In the beginning God created the heaven and the earth.
Genesis 1:2 And the earth was without form, and void; and darkness was upon the face of the deep.
Genesis 1:3 And God said, Let there be light: and there was light.
John 3:17 For God did not send...
John 3:16 For God so loved...
1 Samuel 3:4 That the LORD called Samuel: and he answered, Here am I.
Song of Solomon 2:1 I am the rose of Sharon, and the lily of the valleys.
Song   of Solomon 2:2    As the lily among thorns,   so is my love among the daughters.
`

func mustParse(t *testing.T, text string) *Index {
	t.Helper()
	idx, err := ParseString(text)
	if err != nil {
		t.Fatalf("ParseString() returned an error: %v", err)
	}
	return idx
}

func TestParseRoundTripsEveryLine(t *testing.T) {
	idx := mustParse(t, testCorpus)

	tests := []struct {
		lookup Lookup
		want   string
	}{
		{NewLookup("Genesis", 1, 1), "In the beginning God created the heaven and the earth."},
		{NewLookup("genesis", 1, 3), "And God said, Let there be light: and there was light."},
		{NewLookup("john", 3, 16), "For God so loved..."},
		{NewLookup("JOHN", 3, 17), "For God did not send..."},
		{NewLookup("1 samuel", 3, 4), "That the LORD called Samuel: and he answered, Here am I."},
		{NewLookup("song of solomon", 2, 1), "I am the rose of Sharon, and the lily of the valleys."},
		{NewLookup("Song of Solomon", 2, 2), "As the lily among thorns, so is my love among the daughters."},
	}

	for _, tt := range tests {
		got, err := idx.Verse(tt.lookup, false)
		if err != nil {
			t.Errorf("Verse(%v) returned an error: %v", tt.lookup, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Verse(%v) = %q, want %q", tt.lookup, got, tt.want)
		}
	}

	if idx.Len() != 8 {
		t.Errorf("expected 8 verses, but got %d", idx.Len())
	}
}

func TestParseKeepsColonsInText(t *testing.T) {
	idx := mustParse(t, "Genesis 1:3 And God said, Let there be light: and there was light.\n")

	got, err := idx.Verse(NewLookup("genesis", 1, 3), false)
	if err != nil {
		t.Fatalf("Verse() returned an error: %v", err)
	}
	if got != "And God said, Let there be light: and there was light." {
		t.Errorf("unexpected verse %q", got)
	}
}

func TestParseDuplicateLastWins(t *testing.T) {
	idx := mustParse(t, "John 1:1 first\nJohn 1:1 second\n")

	got, _ := idx.Verse(NewLookup("john", 1, 1), false)
	if got != "second" {
		t.Errorf("expected the later line to win, but got %q", got)
	}
	if idx.Len() != 1 {
		t.Errorf("expected 1 verse, but got %d", idx.Len())
	}
}

func TestParseSkipsBlankLinesAndBOM(t *testing.T) {
	idx := mustParse(t, "\ufeffJohn 1:1 In the beginning was the Word\r\n\r\n   \nJohn 1:2 The same was in the beginning with God.\r\n")

	got, err := idx.Verse(NewLookup("john", 1, 1), false)
	if err != nil {
		t.Fatalf("Verse() returned an error: %v", err)
	}
	if got != "In the beginning was the Word" {
		t.Errorf("unexpected verse %q", got)
	}
	if idx.Len() != 2 {
		t.Errorf("expected 2 verses, but got %d", idx.Len())
	}
}

func TestParseMalformedLine(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no colon", "Genesis 1 In the beginning"},
		{"no book", "1:1 In the beginning"},
		{"chapter not a number", "Genesis one:1 In the beginning"},
		{"zero chapter", "Genesis 0:1 In the beginning"},
		{"verse not a number", "Genesis 1:a In the beginning"},
		{"zero verse", "Genesis 1:0 In the beginning"},
		{"missing verse", "Genesis 1:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString("Genesis 1:1 ok\n" + tt.line + "\nGenesis 1:2 ok\n")
			if !errors.Is(err, ErrInvalidVerseFormat) {
				t.Fatalf("expected ErrInvalidVerseFormat, but got %v", err)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected a *ParseError, but got %T", err)
			}
			if perr.Line != 2 {
				t.Errorf("expected line 2, but got %d", perr.Line)
			}
			if perr.Text != tt.line {
				t.Errorf("expected text %q, but got %q", tt.line, perr.Text)
			}
		})
	}
}

func TestParseAllowsEmptyVerseText(t *testing.T) {
	idx := mustParse(t, "3 John 1:15 \n")

	got, err := idx.Verse(NewLookup("3 john", 1, 15), false)
	if err != nil {
		t.Fatalf("Verse() returned an error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty text, but got %q", got)
	}
}

func TestVerseScenario(t *testing.T) {
	idx := mustParse(t, testCorpus)

	got, err := idx.Verse(NewLookup("john", 3, 16), false)
	if err != nil || got != "For God so loved..." {
		t.Errorf("single verse: got %q, %v", got, err)
	}

	got, err = idx.Verse(NewRangeLookup("john", 3, 16, 17), false)
	if err != nil || got != "For God so loved... For God did not send..." {
		t.Errorf("range: got %q, %v", got, err)
	}

	chapters, err := idx.Chapters("john")
	if err != nil || !slices.Contains(chapters, 3) {
		t.Errorf("chapters: got %v, %v", chapters, err)
	}

	maxVerse, err := idx.MaxVerse("john", 3)
	if err != nil || maxVerse != 17 {
		t.Errorf("max verse: got %d, %v", maxVerse, err)
	}

	_, err = idx.Verse(NewLookup("john", 4, 1), false)
	if !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("expected ErrChapterNotFound, but got %v", err)
	}
}

func TestVerseErrorKinds(t *testing.T) {
	idx := mustParse(t, testCorpus)

	tests := []struct {
		name   string
		lookup Lookup
		want   error
	}{
		{"missing book", NewLookup("exodus", 1, 1), ErrBookNotFound},
		{"missing chapter", NewLookup("genesis", 2, 1), ErrChapterNotFound},
		{"missing verse", NewLookup("genesis", 1, 9), ErrVerseNotFound},
		{"range missing book", NewRangeLookup("exodus", 1, 1, 2), ErrBookNotFound},
		{"range missing chapter", NewRangeLookup("genesis", 5, 1, 2), ErrChapterNotFound},
		{"range missing tail verse", NewRangeLookup("genesis", 1, 2, 4), ErrVerseNotFound},
		{"reversed range", NewRangeLookup("genesis", 1, 3, 1), ErrInvalidVerseFormat},
		{"range ending at zero", NewRangeLookup("john", 3, 16, 0), ErrInvalidVerseFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Verse(tt.lookup, false)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, but got %v", tt.want, err)
			}
			if got != "" {
				t.Errorf("expected no partial result, but got %q", got)
			}
		})
	}
}

func TestRangeEqualsJoinedSingles(t *testing.T) {
	idx := mustParse(t, testCorpus)

	var singles []string
	for v := 1; v <= 3; v++ {
		text, err := idx.Verse(NewLookup("genesis", 1, v), false)
		if err != nil {
			t.Fatalf("Verse() returned an error: %v", err)
		}
		singles = append(singles, text)
	}

	got, err := idx.Verse(NewRangeLookup("genesis", 1, 1, 3), false)
	if err != nil {
		t.Fatalf("Verse() returned an error: %v", err)
	}
	want := strings.TrimSpace(strings.Join(singles, " "))
	if got != want {
		t.Errorf("range = %q, want %q", got, want)
	}
}

func TestVerseSuperscripts(t *testing.T) {
	idx := mustParse(t, testCorpus)

	got, _ := idx.Verse(NewLookup("john", 3, 16), true)
	if got != "¹⁶For God so loved..." {
		t.Errorf("single: got %q", got)
	}

	got, _ = idx.Verse(NewRangeLookup("john", 3, 16, 17), true)
	if got != "¹⁶For God so loved... ¹⁷For God did not send..." {
		t.Errorf("range: got %q", got)
	}
}

func TestChapterIsInVerseOrder(t *testing.T) {
	// Verses 10 and 2 would swap places under a string sort.
	idx := mustParse(t, "Psalms 1:10 ten\nPsalms 1:2 two\nPsalms 1:1 one\n")

	got, err := idx.Chapter("psalms", 1, false)
	if err != nil {
		t.Fatalf("Chapter() returned an error: %v", err)
	}
	if got != "one two ten " {
		t.Errorf("Chapter() = %q", got)
	}

	got, _ = idx.Chapter("Psalms", 1, true)
	if got != "¹one ²two ¹⁰ten " {
		t.Errorf("Chapter() with superscripts = %q", got)
	}
}

func TestChapterErrors(t *testing.T) {
	idx := mustParse(t, testCorpus)

	if _, err := idx.Chapter("exodus", 1, false); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, but got %v", err)
	}
	if _, err := idx.Chapter("genesis", 50, false); !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("expected ErrChapterNotFound, but got %v", err)
	}
}

func TestBook(t *testing.T) {
	idx := mustParse(t, "Jude 1:2 b\nJude 1:1 a\nObadiah 1:1 o\n")

	got, err := idx.Book("jude", false)
	if err != nil {
		t.Fatalf("Book() returned an error: %v", err)
	}
	if got != "a b \n\n" {
		t.Errorf("Book() = %q", got)
	}

	if _, err := idx.Book("exodus", false); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound, but got %v", err)
	}
}

func TestListings(t *testing.T) {
	idx := mustParse(t, testCorpus)

	books := idx.Books()
	want := []string{"1 samuel", "genesis", "john", "song of solomon"}
	if !slices.Equal(books, want) {
		t.Errorf("Books() = %v, want %v", books, want)
	}

	if _, err := idx.Chapters("exodus"); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("Chapters(): expected ErrBookNotFound, but got %v", err)
	}

	verses, err := idx.Verses("genesis", 1)
	if err != nil || !slices.Equal(verses, []int{1, 2, 3}) {
		t.Errorf("Verses() = %v, %v", verses, err)
	}
}

// A missing book surfaces as ErrChapterNotFound from Verses and MaxVerse.
func TestVersesMissingBookIsChapterNotFound(t *testing.T) {
	idx := mustParse(t, testCorpus)

	if _, err := idx.Verses("exodus", 1); !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("Verses(): expected ErrChapterNotFound, but got %v", err)
	}
	if _, err := idx.Verses("genesis", 7); !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("Verses(): expected ErrChapterNotFound, but got %v", err)
	}
	if _, err := idx.MaxVerse("exodus", 1); !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("MaxVerse(): expected ErrChapterNotFound, but got %v", err)
	}
}

func TestListingErrorsNameTheNormalizedBook(t *testing.T) {
	idx := mustParse(t, testCorpus)

	_, err := idx.Verses("  EXODUS ", 1)
	if err == nil || !strings.Contains(err.Error(), ": exodus 1") {
		t.Errorf("Verses(): expected the normalized book in %v", err)
	}

	_, err = idx.MaxVerse("Song  Of Solomon", 9)
	if err == nil || !strings.Contains(err.Error(), ": song of solomon 9") {
		t.Errorf("MaxVerse(): expected the normalized book in %v", err)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	a := mustParse(t, testCorpus)
	b := mustParse(t, testCorpus)

	if a.Digest() != b.Digest() {
		t.Errorf("digests differ: %x != %x", a.Digest(), b.Digest())
	}
	if !slices.Equal(a.Books(), b.Books()) {
		t.Fatalf("book sets differ")
	}

	var left, right []string
	collect := func(out *[]string) func(string, int, int, string) error {
		return func(book string, chapter, verse int, text string) error {
			*out = append(*out, FormatLine(book, chapter, verse, text))
			return nil
		}
	}
	a.Walk(collect(&left))
	b.Walk(collect(&right))
	if !slices.Equal(left, right) {
		t.Errorf("contents differ:\n%v\n%v", left, right)
	}

	reordered := mustParse(t, strings.Join(reverse(strings.Split(strings.TrimSpace(testCorpus), "\n")), "\n"))
	if reordered.Digest() != a.Digest() {
		t.Errorf("expected line order not to change the digest")
	}

	changed := mustParse(t, testCorpus+"John 3:18 He that believeth on him is not condemned\n")
	if changed.Digest() == a.Digest() {
		t.Errorf("expected different content to change the digest")
	}
}

func reverse(lines []string) []string {
	out := slices.Clone(lines)
	slices.Reverse(out)
	return out
}

func TestWalkRoundTripsThroughFormatLine(t *testing.T) {
	idx := mustParse(t, testCorpus)

	var b strings.Builder
	idx.Walk(func(book string, chapter, verse int, text string) error {
		b.WriteString(FormatLine(book, chapter, verse, text))
		b.WriteByte('\n')
		return nil
	})

	again := mustParse(t, b.String())
	if again.Digest() != idx.Digest() {
		t.Errorf("expected the rendered corpus to parse back to the same index")
	}
}

func TestRandomVerse(t *testing.T) {
	idx := mustParse(t, testCorpus)
	rng := rand.New(rand.NewPCG(1, 2))

	for range 50 {
		l, err := idx.RandomVerse(rng)
		if err != nil {
			t.Fatalf("RandomVerse() returned an error: %v", err)
		}
		if l.IsRange() {
			t.Fatalf("expected a single verse lookup, but got %v", l)
		}
		if _, err := idx.Verse(l, false); err != nil {
			t.Fatalf("RandomVerse() returned %v which does not resolve: %v", l, err)
		}
	}

	empty := mustParse(t, "")
	if _, err := empty.RandomVerse(rng); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected ErrBookNotFound for an empty index, but got %v", err)
	}
}

func TestRandomVerseIsSeedable(t *testing.T) {
	idx := mustParse(t, testCorpus)

	a, _ := idx.RandomVerse(rand.New(rand.NewPCG(7, 7)))
	b, _ := idx.RandomVerse(rand.New(rand.NewPCG(7, 7)))
	if a != b {
		t.Errorf("expected equal seeds to pick the same verse, got %v and %v", a, b)
	}
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	for chapter := 1; chapter <= 150; chapter++ {
		for verse := 1; verse <= 30; verse++ {
			sb.WriteString(FormatLine("psalms", chapter, verse, "Praise ye the LORD. Praise God in his sanctuary: praise him in the firmament of his power."))
			sb.WriteByte('\n')
		}
	}
	corpus := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseString(corpus); err != nil {
			b.Fatal(err)
		}
	}
}
