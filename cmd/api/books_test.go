package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/ratelimit"
	"shuvoedward/Bible_lookup/internal/service"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}
}

func TestHealthcheck(t *testing.T) {
	rr := serveRequest(t, testApp, http.MethodGet, "/v1/healthcheck")
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var body struct {
		Status       string `json:"status"`
		Translations int    `json:"translations"`
		Cache        string `json:"cache"`
	}
	decode(t, rr, &body)

	if body.Status != "available" || body.Translations != 1 || body.Cache != "disabled" {
		t.Errorf("unexpected body %+v", body)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected an X-Request-ID header")
	}
}

func TestListTranslations(t *testing.T) {
	rr := serveRequest(t, testApp, http.MethodGet, "/v1/translations")
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var body struct {
		Translations []service.TranslationInfo `json:"translations"`
	}
	decode(t, rr, &body)

	if len(body.Translations) != 1 || body.Translations[0].ID != "kjv" || !body.Translations[0].Default {
		t.Errorf("unexpected translations %+v", body.Translations)
	}
}

func TestGetPassage(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
		text   string
	}{
		{"single verse", "/v1/bible/kjv/passage?ref=" + url.QueryEscape("John 3:16"), http.StatusOK, "For God so loved the world"},
		{"range", "/v1/bible/kjv/passage?ref=" + url.QueryEscape("john 3:16-17"), http.StatusOK, "For God so loved the world For God sent not his Son"},
		{"superscripts", "/v1/bible/kjv/passage?superscripts=true&ref=" + url.QueryEscape("1 John 4:8"), http.StatusOK, "⁸God is love."},
		{"missing ref", "/v1/bible/kjv/passage", http.StatusBadRequest, ""},
		{"malformed ref", "/v1/bible/kjv/passage?ref=John", http.StatusBadRequest, ""},
		{"reversed range", "/v1/bible/kjv/passage?ref=" + url.QueryEscape("John 3:17-16"), http.StatusBadRequest, ""},
		{"missing verse", "/v1/bible/kjv/passage?ref=" + url.QueryEscape("John 3:18"), http.StatusNotFound, ""},
		{"range with a gap", "/v1/bible/kjv/passage?ref=" + url.QueryEscape("John 3:16-18"), http.StatusNotFound, ""},
		{"missing book", "/v1/bible/kjv/passage?ref=" + url.QueryEscape("Exodus 1:1"), http.StatusNotFound, ""},
		{"unknown translation", "/v1/bible/niv/passage?ref=" + url.QueryEscape("John 3:16"), http.StatusNotFound, ""},
		{"invalid translation id", "/v1/bible/KJV/passage?ref=" + url.QueryEscape("John 3:16"), http.StatusUnprocessableEntity, ""},
		{"invalid superscripts", "/v1/bible/kjv/passage?superscripts=maybe&ref=" + url.QueryEscape("John 3:16"), http.StatusUnprocessableEntity, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serveRequest(t, testApp, http.MethodGet, tt.target)
			if rr.Code != tt.status {
				t.Fatalf("handler returned wrong status code: got %v want %v (%s)", rr.Code, tt.status, rr.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}

			var body struct {
				Text   string       `json:"text"`
				Lookup bible.Lookup `json:"lookup"`
			}
			decode(t, rr, &body)
			if body.Text != tt.text {
				t.Errorf("expected %q, but got %q", tt.text, body.Text)
			}
		})
	}
}

func TestGetChapter(t *testing.T) {
	rr := serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/books/Genesis/chapters/1")
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var body struct {
		Book     string `json:"book"`
		Chapter  int    `json:"chapter"`
		Verses   []int  `json:"verses"`
		MaxVerse int    `json:"max_verse"`
		Text     string `json:"text"`
	}
	decode(t, rr, &body)

	if body.Book != "Genesis" || body.Chapter != 1 || body.MaxVerse != 2 || len(body.Verses) != 2 {
		t.Errorf("unexpected body %+v", body)
	}
	want := "In the beginning God created the heaven and the earth. And the earth was without form, and void. "
	if body.Text != want {
		t.Errorf("expected %q, but got %q", want, body.Text)
	}

	for target, status := range map[string]int{
		"/v1/bible/kjv/books/Genesis/chapters/abc": http.StatusBadRequest,
		"/v1/bible/kjv/books/Genesis/chapters/0":   http.StatusBadRequest,
		"/v1/bible/kjv/books/Genesis/chapters/9":   http.StatusNotFound,
		"/v1/bible/kjv/books/Exodus/chapters/1":    http.StatusNotFound,
	} {
		if rr := serveRequest(t, testApp, http.MethodGet, target); rr.Code != status {
			t.Errorf("%s: got status %d, want %d", target, rr.Code, status)
		}
	}
}

func TestGetBookAndListings(t *testing.T) {
	rr := serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/books/genesis")
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	var book struct {
		Book     string `json:"book"`
		Chapters []int  `json:"chapters"`
		Text     string `json:"text"`
	}
	decode(t, rr, &book)
	if book.Book != "Genesis" || len(book.Chapters) != 2 || strings.Count(book.Text, "\n\n") != 2 {
		t.Errorf("unexpected book %+v", book)
	}

	rr = serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/books")
	var books struct {
		Books []string `json:"books"`
	}
	decode(t, rr, &books)
	if strings.Join(books.Books, ",") != "1 john,genesis,john" {
		t.Errorf("unexpected books %v", books.Books)
	}

	rr = serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/books/"+url.PathEscape("1 John")+"/chapters")
	var chapters struct {
		Book     string `json:"book"`
		Chapters []int  `json:"chapters"`
	}
	decode(t, rr, &chapters)
	if chapters.Book != "1 John" || len(chapters.Chapters) != 1 || chapters.Chapters[0] != 4 {
		t.Errorf("unexpected chapters %+v", chapters)
	}

	if rr := serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/books/exodus"); rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a missing book, but got %d", rr.Code)
	}
}

func TestGetRandom(t *testing.T) {
	rr := serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/random")
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var body struct {
		Reference string `json:"reference"`
		Text      string `json:"text"`
	}
	decode(t, rr, &body)
	if body.Reference == "" || body.Text == "" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestDetect(t *testing.T) {
	rr := serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/detect?q="+url.QueryEscape("Read 1john 4:8 and John 3:16."))
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var body struct {
		References []service.DetectedReference `json:"references"`
	}
	decode(t, rr, &body)
	if len(body.References) != 2 || body.References[0].Text != "God is love." {
		t.Errorf("unexpected references %+v", body.References)
	}

	if rr := serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/detect"); rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a query, but got %d", rr.Code)
	}
}

func TestAutocompleteBooks(t *testing.T) {
	rr := serveRequest(t, testApp, http.MethodGet, "/v1/autocomplete/books?q=jo")
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var body struct {
		Books []string `json:"books"`
	}
	decode(t, rr, &body)
	if strings.Join(body.Books, ",") != "John,1 John" {
		t.Errorf("unexpected books %v", body.Books)
	}

	if rr := serveRequest(t, testApp, http.MethodGet, "/v1/autocomplete/books?q=gen&translation=niv"); rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown translation, but got %d", rr.Code)
	}
	if rr := serveRequest(t, testApp, http.MethodGet, "/v1/autocomplete/books"); rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a query, but got %d", rr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	serveRequest(t, testApp, http.MethodGet, "/v1/bible/kjv/books")

	rr := serveRequest(t, testApp, http.MethodGet, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `path="/v1/bible/:translation/books"`) {
		t.Error("expected requests to be labelled with the route pattern")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rr := serveRequest(t, testApp, http.MethodPost, "/v1/translations")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(testCorpus)
	app.ipRateLimiter = ratelimit.NewRateLimiter(1, time.Minute)
	defer app.ipRateLimiter.Stop()

	if rr := serveRequest(t, app, http.MethodGet, "/v1/translations"); rr.Code != http.StatusOK {
		t.Fatalf("expected the first request to pass, but got %d", rr.Code)
	}
	if rr := serveRequest(t, app, http.MethodGet, "/v1/translations"); rr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, but got %d", rr.Code)
	}
}

func TestRequestIDIsKept(t *testing.T) {
	testRouter := testApp.routes(NewHandlers(testApp, testApp.services))

	id := "0b6a3f4e-8d9c-4b7a-9c55-0f7e2d1a3b4c"
	req := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	req.Header.Set("X-Request-ID", id)
	rr := httptest.NewRecorder()
	testRouter.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != id {
		t.Errorf("expected request id %s, but got %s", id, got)
	}
}

func TestRecoverPanic(t *testing.T) {
	h := testApp.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, but got %d", rr.Code)
	}
	if rr.Header().Get("Connection") != "close" {
		t.Error("expected Connection: close")
	}
}

type mockPassageService struct {
	*service.PassageService
}

func (m *mockPassageService) Verse(ctx context.Context, id string, l bible.Lookup, superscripts bool) (string, error) {
	return "", errors.New("disk on fire")
}

func TestGetPassageServerError(t *testing.T) {
	h := NewBibleHandler(testApp, &mockPassageService{testApp.services.Passage}, testApp.services.Autocomplete)

	req := httptest.NewRequest(http.MethodGet, "/v1/bible/kjv/passage?ref="+url.QueryEscape("John 3:16"), nil)
	rr := httptest.NewRecorder()
	h.GetPassage(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, but got %d", rr.Code)
	}
}
