package bible

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// maxLineSize bounds a single corpus line. The longest verse in the bundled
// translations is well under 1KB.
const maxLineSize = 1024 * 1024

// Index maps book -> chapter -> verse -> text. It is never mutated after
// Parse returns, so it can be shared between goroutines without locking.
type Index struct {
	books  map[string]map[int]map[int]string
	count  int
	digest uint64
}

// ParseString is Parse over an in-memory corpus.
func ParseString(text string) (*Index, error) {
	return Parse(strings.NewReader(text))
}

// Parse builds an Index from a corpus with one verse per line in the form
// "Book Chapter:Verse Text". Blank lines are skipped; a repeated
// book/chapter/verse replaces the earlier text. The first malformed line
// aborts the parse with a *ParseError.
func Parse(r io.Reader) (*Index, error) {
	idx := &Index{
		books: make(map[string]map[int]map[int]string),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		book, chapter, verse, text, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Reason: err.Error()}
		}
		idx.insert(book, chapter, verse, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, IOError(err)
	}

	idx.digest = idx.computeDigest()
	return idx, nil
}

func parseLine(line string) (book string, chapter, verse int, text string, err error) {
	// Book names can contain spaces ("1 samuel", "song of solomon"), so the
	// line is split on the colon first and the chapter is the last token
	// before it.
	bookChapter, verseText, found := strings.Cut(line, ":")
	if !found {
		return "", 0, 0, "", errors.New("missing ':' between chapter and verse")
	}

	head := strings.Fields(bookChapter)
	if len(head) < 2 {
		return "", 0, 0, "", errors.New("missing book name or chapter")
	}
	chapter, err = positiveInt(head[len(head)-1])
	if err != nil {
		return "", 0, 0, "", fmt.Errorf("invalid chapter: %w", err)
	}
	book = strings.ToLower(strings.Join(head[:len(head)-1], " "))

	tail := strings.Fields(verseText)
	if len(tail) == 0 {
		return "", 0, 0, "", errors.New("missing verse number")
	}
	verse, err = positiveInt(tail[0])
	if err != nil {
		return "", 0, 0, "", fmt.Errorf("invalid verse: %w", err)
	}
	text = strings.Join(tail[1:], " ")

	return book, chapter, verse, text, nil
}

func (idx *Index) insert(book string, chapter, verse int, text string) {
	chapters, ok := idx.books[book]
	if !ok {
		chapters = make(map[int]map[int]string)
		idx.books[book] = chapters
	}
	verses, ok := chapters[chapter]
	if !ok {
		verses = make(map[int]string)
		chapters[chapter] = verses
	}
	if _, exists := verses[verse]; !exists {
		idx.count++
	}
	verses[verse] = text
}

// computeDigest hashes the index content in sorted key order so that equal
// content always yields the same digest regardless of source line order.
func (idx *Index) computeDigest() uint64 {
	h := xxh3.New()
	for _, book := range slices.Sorted(maps.Keys(idx.books)) {
		chapters := idx.books[book]
		for _, chapter := range slices.Sorted(maps.Keys(chapters)) {
			verses := chapters[chapter]
			for _, verse := range slices.Sorted(maps.Keys(verses)) {
				fmt.Fprintf(h, "%s\x00%d\x00%d\x00%s\n", book, chapter, verse, verses[verse])
			}
		}
	}
	return h.Sum64()
}

// Digest identifies the content of the index.
func (idx *Index) Digest() uint64 {
	return idx.digest
}

// Len returns the number of verses in the index.
func (idx *Index) Len() int {
	return idx.count
}

func (idx *Index) chapter(book string, chapter int) (map[int]string, error) {
	chapters, ok := idx.books[book]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBookNotFound, book)
	}
	verses, ok := chapters[chapter]
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrChapterNotFound, book, chapter)
	}
	return verses, nil
}

func (idx *Index) text(book string, chapter, verse int) (string, error) {
	verses, err := idx.chapter(book, chapter)
	if err != nil {
		return "", err
	}
	text, ok := verses[verse]
	if !ok {
		return "", fmt.Errorf("%w: %s %d:%d", ErrVerseNotFound, book, chapter, verse)
	}
	return text, nil
}

func writeVerse(b *strings.Builder, verse int, text string, superscripts bool) {
	if superscripts {
		b.WriteString(Superscript(strconv.Itoa(verse)))
	}
	b.WriteString(text)
	b.WriteByte(' ')
}

// Verse returns the text of a single verse or, for a range lookup, the texts
// of every verse in the range joined by single spaces. A range fails as a
// whole if any verse in it is missing.
func (idx *Index) Verse(l Lookup, superscripts bool) (string, error) {
	book := normalizeBook(l.Book)

	if !l.IsRange() {
		text, err := idx.text(book, l.Chapter, l.Verse)
		if err != nil {
			return "", err
		}
		if superscripts {
			return Superscript(strconv.Itoa(l.Verse)) + text, nil
		}
		return text, nil
	}

	if l.ThruVerse < l.Verse {
		return "", fmt.Errorf("%w: range %d-%d ends before it starts", ErrInvalidVerseFormat, l.Verse, l.ThruVerse)
	}

	var b strings.Builder
	for verse := l.Verse; verse <= l.ThruVerse; verse++ {
		text, err := idx.text(book, l.Chapter, verse)
		if err != nil {
			return "", err
		}
		writeVerse(&b, verse, text, superscripts)
	}
	return strings.TrimSpace(b.String()), nil
}

// Chapter returns every verse of a chapter in verse order, each followed by
// a space.
func (idx *Index) Chapter(book string, chapter int, superscripts bool) (string, error) {
	verses, err := idx.chapter(normalizeBook(book), chapter)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, verse := range slices.Sorted(maps.Keys(verses)) {
		writeVerse(&b, verse, verses[verse], superscripts)
	}
	return b.String(), nil
}

// Book returns a whole book, chapters in order and separated by a blank
// line. The result can be several hundred kilobytes.
func (idx *Index) Book(book string, superscripts bool) (string, error) {
	book = normalizeBook(book)
	chapters, ok := idx.books[book]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBookNotFound, book)
	}

	var b strings.Builder
	for _, chapter := range slices.Sorted(maps.Keys(chapters)) {
		verses := chapters[chapter]
		for _, verse := range slices.Sorted(maps.Keys(verses)) {
			writeVerse(&b, verse, verses[verse], superscripts)
		}
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

// Books returns every book name in the index, sorted.
func (idx *Index) Books() []string {
	return slices.Sorted(maps.Keys(idx.books))
}

// Chapters returns the chapter numbers of a book, sorted.
func (idx *Index) Chapters(book string) ([]int, error) {
	book = normalizeBook(book)
	chapters, ok := idx.books[book]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBookNotFound, book)
	}
	return slices.Sorted(maps.Keys(chapters)), nil
}

// Verses returns the verse numbers of a chapter, sorted. A missing book is
// reported as ErrChapterNotFound, not ErrBookNotFound.
func (idx *Index) Verses(book string, chapter int) ([]int, error) {
	book = normalizeBook(book)
	verses, ok := idx.books[book][chapter]
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrChapterNotFound, book, chapter)
	}
	return slices.Sorted(maps.Keys(verses)), nil
}

// MaxVerse returns the highest verse number of a chapter. Like Verses, a
// missing book is reported as ErrChapterNotFound.
func (idx *Index) MaxVerse(book string, chapter int) (int, error) {
	book = normalizeBook(book)
	verses := idx.books[book][chapter]
	if len(verses) == 0 {
		return 0, fmt.Errorf("%w: %s %d", ErrChapterNotFound, book, chapter)
	}
	return slices.Max(slices.Collect(maps.Keys(verses))), nil
}

// RandomVerse picks a book, then a chapter of that book, then a verse of that
// chapter, each uniformly. Verses in short books are therefore more likely
// than verses in long ones.
func (idx *Index) RandomVerse(rng *rand.Rand) (Lookup, error) {
	books := idx.Books()
	if len(books) == 0 {
		return Lookup{}, fmt.Errorf("%w: index is empty", ErrBookNotFound)
	}
	book := books[rng.IntN(len(books))]

	chapters := slices.Sorted(maps.Keys(idx.books[book]))
	chapter := chapters[rng.IntN(len(chapters))]

	verses := slices.Sorted(maps.Keys(idx.books[book][chapter]))
	verse := verses[rng.IntN(len(verses))]

	return Lookup{Book: book, Chapter: chapter, Verse: verse}, nil
}

// Walk calls fn for every verse in book, chapter, verse order and stops at
// the first error fn returns.
func (idx *Index) Walk(fn func(book string, chapter, verse int, text string) error) error {
	for _, book := range idx.Books() {
		chapters := idx.books[book]
		for _, chapter := range slices.Sorted(maps.Keys(chapters)) {
			verses := chapters[chapter]
			for _, verse := range slices.Sorted(maps.Keys(verses)) {
				if err := fn(book, chapter, verse, verses[verse]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
