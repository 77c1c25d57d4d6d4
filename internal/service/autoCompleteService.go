package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"shuvoedward/Bible_lookup/internal/bible"
)

// AutocompleteService suggests book names of a translation from a partial
// query.
type AutocompleteService struct {
	passages *PassageService

	mu      sync.Mutex
	indexes map[string]map[string][]string // keyed by translation id and digest
}

func NewAutocompleteService(passages *PassageService) *AutocompleteService {
	return &AutocompleteService{
		passages: passages,
		indexes:  make(map[string]map[string][]string),
	}
}

// Autocomplete returns the capitalised book names matching query, in canon
// order. Examples: "mat" → ["Matthew"], "1 cor" and "1co" → ["1 Corinthians"],
// "cor" → ["1 Corinthians", "2 Corinthians"].
func (s *AutocompleteService) Autocomplete(id, query string) ([]string, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(query), " "))
	if normalized == "" {
		return nil, ErrEmptyQuery
	}

	index, err := s.index(id)
	if err != nil {
		return nil, err
	}

	if books, exists := index[normalized]; exists {
		return books, nil
	}

	// "1 c" is indexed as "1c"
	if books, exists := index[strings.ReplaceAll(normalized, " ", "")]; exists {
		return books, nil
	}

	return []string{}, nil
}

// index returns the book search index of translation id, building it on
// first use. A re-registered translation gets a new digest and a new index.
func (s *AutocompleteService) index(id string) (map[string][]string, error) {
	b, err := s.passages.Bible(id)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s:%016x", id, b.Digest())

	s.mu.Lock()
	defer s.mu.Unlock()

	if index, ok := s.indexes[key]; ok {
		return index, nil
	}

	index := BuildBookSearchIndex(b.Books())
	s.indexes[key] = index
	return index, nil
}

// BuildBookSearchIndex maps every prefix of every book name to the books it
// matches. Numbered books are also reachable without the space ("1co") and
// without the number ("cor").
func BuildBookSearchIndex(books []string) map[string][]string {
	books = slices.Clone(books)
	slices.SortFunc(books, compareCanon)

	index := make(map[string][]string)
	add := func(name, display string) {
		for i := 1; i <= len(name); i++ {
			prefix := name[:i]
			if slices.Contains(index[prefix], display) {
				continue
			}
			index[prefix] = append(index[prefix], display)
		}
	}

	for _, book := range books {
		display := bible.CapitalizeBook(book)

		add(book, display)

		number, rest, found := strings.Cut(book, " ")
		if found && isNumberedBookPrefix(number) {
			add(number+strings.ReplaceAll(rest, " ", ""), display)
			add(rest, display)
		}
	}

	return index
}

var canonPosition = func() map[string]int {
	m := make(map[string]int, len(bible.CanonicalBooks))
	for i, book := range bible.CanonicalBooks {
		m[strings.ToLower(book)] = i
	}
	return m
}()

// compareCanon orders canonical books by canon position and anything else
// alphabetically after them.
func compareCanon(a, b string) int {
	pa, okA := canonPosition[a]
	pb, okB := canonPosition[b]
	switch {
	case okA && okB:
		return cmp.Compare(pa, pb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// isNumberedBookPrefix identifies the number of books like "1 Corinthians",
// "2 Timothy", "3 John".
func isNumberedBookPrefix(s string) bool {
	return s == "1" || s == "2" || s == "3"
}
