package main

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/service"
	"shuvoedward/Bible_lookup/internal/validator"
)

type PassageServiceInterface interface {
	Translations() []service.TranslationInfo
	Verse(ctx context.Context, id string, l bible.Lookup, superscripts bool) (string, error)
	Chapter(ctx context.Context, id, book string, chapter int, superscripts bool) (string, error)
	Book(ctx context.Context, id, book string, superscripts bool) (string, error)
	Books(id string) ([]string, error)
	Chapters(id, book string) ([]int, error)
	Verses(id, book string, chapter int) ([]int, error)
	MaxVerse(id, book string, chapter int) (int, error)
	Random(ctx context.Context, id string, superscripts bool) (bible.Lookup, string, error)
	Detect(ctx context.Context, id, text string, superscripts bool) ([]service.DetectedReference, error)
}

type AutocompleteInterface interface {
	Autocomplete(id, query string) ([]string, error)
}

type BibleHandler struct {
	app                 *application
	passageService      PassageServiceInterface
	autocompleteService AutocompleteInterface
}

func NewBibleHandler(
	app *application,
	passageService PassageServiceInterface,
	autocompleteService AutocompleteInterface,
) *BibleHandler {
	return &BibleHandler{
		app:                 app,
		passageService:      passageService,
		autocompleteService: autocompleteService,
	}
}

func (h *BibleHandler) RegisterRoutes(router *httprouter.Router) {
	h.app.handle(router, "/v1/translations", h.ListTranslations)
	h.app.handle(router, "/v1/bible/:translation/books", h.ListBooks)
	h.app.handle(router, "/v1/bible/:translation/books/:book", h.GetBook)
	h.app.handle(router, "/v1/bible/:translation/books/:book/chapters", h.ListChapters)
	h.app.handle(router, "/v1/bible/:translation/books/:book/chapters/:chapter", h.GetChapter)
	h.app.handle(router, "/v1/bible/:translation/passage", h.GetPassage)
	h.app.handle(router, "/v1/bible/:translation/random", h.GetRandom)
	h.app.handle(router, "/v1/bible/:translation/detect", h.Detect)
	h.app.handle(router, "/v1/autocomplete/books", h.Autocomplete)
}

// @Summary List translations
// @Description Lists every loaded translation. The default one is used when a request names no translation.
// @Tags Translations
// @Produce json
// @Success 200 {object} object{translations=[]service.TranslationInfo}
// @Router /v1/translations [get]
func (h *BibleHandler) ListTranslations(w http.ResponseWriter, r *http.Request) {
	err := h.app.writeJSON(w, http.StatusOK, envelope{"translations": h.passageService.Translations()}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary List books
// @Description Lists the books of a translation, lowercase and sorted.
// @Tags Bible
// @Produce json
// @Param translation path string true "Translation id (e.g., kjv)"
// @Success 200 {object} object{translation=string,books=[]string}
// @Failure 404 {object} object{error=string} "Unknown translation"
// @Failure 422 {object} object{error=object} "Invalid translation id"
// @Router /v1/bible/{translation}/books [get]
func (h *BibleHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	id := h.app.readTranslationParam(r, v)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	books, err := h.passageService.Books(id)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"translation": id, "books": books}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a whole book
// @Description Returns every chapter of a book in order, chapters separated by a blank line.
// @Tags Bible
// @Produce json
// @Param translation path string true "Translation id (e.g., kjv)"
// @Param book path string true "Book name, case-insensitive (e.g., 1 John)"
// @Param superscripts query bool false "Prefix verses with superscript numbers"
// @Success 200 {object} object{book=string,chapters=[]int,text=string}
// @Failure 404 {object} object{error=string} "Unknown translation or book"
// @Router /v1/bible/{translation}/books/{book} [get]
func (h *BibleHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	id := h.app.readTranslationParam(r, v)
	book := httprouter.ParamsFromContext(r.Context()).ByName("book")
	superscripts := h.app.readBool(r, "superscripts", v)
	service.ValidateBook(v, book)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	chapters, err := h.passageService.Chapters(id, book)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	text, err := h.passageService.Book(r.Context(), id, book, superscripts)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{
		"book":     bible.CapitalizeBook(book),
		"chapters": chapters,
		"text":     text,
	}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary List chapters
// @Tags Bible
// @Produce json
// @Param translation path string true "Translation id (e.g., kjv)"
// @Param book path string true "Book name, case-insensitive"
// @Success 200 {object} object{book=string,chapters=[]int}
// @Failure 404 {object} object{error=string} "Unknown translation or book"
// @Router /v1/bible/{translation}/books/{book}/chapters [get]
func (h *BibleHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	id := h.app.readTranslationParam(r, v)
	book := httprouter.ParamsFromContext(r.Context()).ByName("book")
	service.ValidateBook(v, book)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	chapters, err := h.passageService.Chapters(id, book)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"book": bible.CapitalizeBook(book), "chapters": chapters}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a chapter
// @Description Returns the verses of a chapter in order, each followed by a space, with the verse numbers and the highest verse.
// @Tags Bible
// @Produce json
// @Param translation path string true "Translation id (e.g., kjv)"
// @Param book path string true "Book name, case-insensitive"
// @Param chapter path int true "Chapter number"
// @Param superscripts query bool false "Prefix verses with superscript numbers"
// @Success 200 {object} object{book=string,chapter=int,verses=[]int,max_verse=int,text=string}
// @Failure 400 {object} object{error=string} "Invalid chapter"
// @Failure 404 {object} object{error=string} "Unknown translation, book or chapter"
// @Router /v1/bible/{translation}/books/{book}/chapters/{chapter} [get]
func (h *BibleHandler) GetChapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.app.readIntParam(r, "chapter")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	id := h.app.readTranslationParam(r, v)
	book := httprouter.ParamsFromContext(r.Context()).ByName("book")
	superscripts := h.app.readBool(r, "superscripts", v)
	service.ValidateChapter(v, book, chapter)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	text, err := h.passageService.Chapter(r.Context(), id, book, chapter, superscripts)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	verses, err := h.passageService.Verses(id, book, chapter)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	maxVerse, err := h.passageService.MaxVerse(id, book, chapter)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{
		"book":      bible.CapitalizeBook(book),
		"chapter":   chapter,
		"verses":    verses,
		"max_verse": maxVerse,
		"text":      text,
	}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a verse or verse range
// @Description Looks up a reference such as "John 3:16" or "John 3:16-17". A range fails as a whole if any verse is missing.
// @Tags Bible
// @Produce json
// @Param translation path string true "Translation id (e.g., kjv)"
// @Param ref query string true "Reference (e.g., John 3:16-17)"
// @Param superscripts query bool false "Prefix verses with superscript numbers"
// @Success 200 {object} object{translation=string,reference=string,lookup=bible.Lookup,text=string}
// @Failure 400 {object} object{error=string} "Malformed reference"
// @Failure 404 {object} object{error=string} "Unknown translation, book, chapter or verse"
// @Router /v1/bible/{translation}/passage [get]
func (h *BibleHandler) GetPassage(w http.ResponseWriter, r *http.Request) {
	ref, err := h.app.readQuery(r, "ref")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	lookup, err := bible.ParseReference(ref)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	id := h.app.readTranslationParam(r, v)
	superscripts := h.app.readBool(r, "superscripts", v)
	service.ValidateLookup(v, lookup)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	text, err := h.passageService.Verse(r.Context(), id, lookup, superscripts)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{
		"translation": id,
		"reference":   lookup.String(),
		"lookup":      lookup,
		"text":        text,
	}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a random verse
// @Tags Bible
// @Produce json
// @Param translation path string true "Translation id (e.g., kjv)"
// @Param superscripts query bool false "Prefix the verse with its superscript number"
// @Success 200 {object} object{reference=string,lookup=bible.Lookup,text=string}
// @Failure 404 {object} object{error=string} "Unknown translation"
// @Router /v1/bible/{translation}/random [get]
func (h *BibleHandler) GetRandom(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	id := h.app.readTranslationParam(r, v)
	superscripts := h.app.readBool(r, "superscripts", v)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	lookup, text, err := h.passageService.Random(r.Context(), id, superscripts)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{
		"reference": lookup.String(),
		"lookup":    lookup,
		"text":      text,
	}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Detect references in text
// @Description Finds verse references such as "1 Corinthians 13:4-7" in free text and resolves each against the translation. Unresolvable references carry an error instead of text.
// @Tags Bible
// @Produce json
// @Param translation path string true "Translation id (e.g., kjv)"
// @Param q query string true "Free text"
// @Param superscripts query bool false "Prefix verses with superscript numbers"
// @Success 200 {object} object{references=[]service.DetectedReference}
// @Failure 400 {object} object{error=string} "Empty query"
// @Failure 404 {object} object{error=string} "Unknown translation"
// @Router /v1/bible/{translation}/detect [get]
func (h *BibleHandler) Detect(w http.ResponseWriter, r *http.Request) {
	q, err := h.app.readQuery(r, "q")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	id := h.app.readTranslationParam(r, v)
	superscripts := h.app.readBool(r, "superscripts", v)
	v.Check(len(q) <= 10_000, "q", "must not be more than 10000 bytes long")
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	refs, err := h.passageService.Detect(r.Context(), id, q, superscripts)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"references": refs}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Autocomplete book names
// @Description Suggests book names for a partial query. Examples: "mat" → Matthew, "1co" → 1 Corinthians, "cor" → 1 and 2 Corinthians.
// @Tags Autocomplete
// @Produce json
// @Param q query string true "Partial book name"
// @Param translation query string false "Translation id, default translation when empty"
// @Success 200 {object} object{books=[]string}
// @Failure 400 {object} object{error=string} "Query parameter is empty or missing"
// @Failure 404 {object} object{error=string} "Unknown translation"
// @Router /v1/autocomplete/books [get]
func (h *BibleHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	q, err := h.app.readQuery(r, "q")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	id := h.app.readTranslationParam(r, v)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	books, err := h.autocompleteService.Autocomplete(id, q)
	if err != nil {
		h.app.lookupErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}
