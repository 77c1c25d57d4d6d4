package service

import (
	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/validator"
)

// ValidateLookup checks the shape of a lookup before it reaches an index.
// Whether the book, chapter or verse exists is left to the index.
func ValidateLookup(v *validator.Validator, l bible.Lookup) {
	ValidateChapter(v, l.Book, l.Chapter)

	v.Check(l.Verse > 0, "verse", "must be a positive integer")
	if l.IsRange() {
		v.Check(l.ThruVerse >= l.Verse, "thru_verse", "must not be less than the start verse")
	}
}

func ValidateChapter(v *validator.Validator, book string, chapter int) {
	ValidateBook(v, book)
	v.Check(chapter > 0, "chapter", "must be a positive integer")
}

func ValidateBook(v *validator.Validator, book string) {
	v.Check(book != "", "book", "must be provided")
	v.Check(len(book) <= 64, "book", "must not be more than 64 bytes long")
}

func ValidateTranslationID(v *validator.Validator, id string) {
	if id == "" {
		return
	}
	v.Check(validator.Matches(id, validator.TranslationIDRX), "translation", "must be a lowercase translation id")
}
