package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/cache"
	"shuvoedward/Bible_lookup/internal/detect"
	"shuvoedward/Bible_lookup/internal/logger"
	"shuvoedward/Bible_lookup/internal/metrics"
)

// Cache stores rendered passages. *cache.RedisClient implements it.
type Cache interface {
	GetPassage(ctx context.Context, key string) (string, bool, error)
	SetPassage(ctx context.Context, key, text string) error
}

var _ Cache = (*cache.RedisClient)(nil)

// PassageService answers lookups against every registered translation.
// Cache and metrics are optional.
type PassageService struct {
	logger  *slog.Logger
	cache   Cache
	metrics *metrics.Metrics

	mu        sync.RWMutex
	bibles    map[string]*bible.Bible
	defaultID string

	group singleflight.Group

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewPassageService(logger *slog.Logger, cache Cache, metrics *metrics.Metrics) *PassageService {
	return &PassageService{
		logger:  logger,
		cache:   cache,
		metrics: metrics,
		bibles:  make(map[string]*bible.Bible),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
}

// Seed makes Random deterministic.
func (s *PassageService) Seed(seed uint64) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	s.rng = rand.New(rand.NewPCG(seed, seed))
}

// TranslationInfo describes a registered translation.
type TranslationInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Verses  int    `json:"verses"`
	Digest  string `json:"digest"`
	Default bool   `json:"default"`
}

// Register makes b available under id, replacing any earlier translation
// with the same id. The first registered translation becomes the default.
func (s *PassageService) Register(id string, b *bible.Bible) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bibles[id] = b
	if s.defaultID == "" {
		s.defaultID = id
	}

	if s.metrics != nil {
		s.metrics.TranslationVerses.WithLabelValues(id).Set(float64(b.Len()))
	}
}

// Load reads and parses src and registers it under id.
func (s *PassageService) Load(ctx context.Context, id string, src bible.Source) error {
	start := time.Now()

	b, err := bible.New(ctx, src)
	if err != nil {
		return fmt.Errorf("load %s: %w", id, err)
	}
	s.Register(id, b)

	s.logger.Info("translation loaded",
		"translation", id,
		"name", b.Name,
		"verses", b.Len(),
		"duration", time.Since(start))
	return nil
}

func (s *PassageService) SetDefault(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bibles[id]; !ok {
		return fmt.Errorf("%w: %s", ErrTranslationNotFound, id)
	}
	s.defaultID = id
	return nil
}

// Bible returns the translation registered under id. An empty id selects
// the default translation.
func (s *PassageService) Bible(id string) (*bible.Bible, error) {
	_, b, err := s.resolve(id)
	return b, err
}

func (s *PassageService) resolve(id string) (string, *bible.Bible, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id == "" {
		id = s.defaultID
	}
	b, ok := s.bibles[id]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrTranslationNotFound, id)
	}
	return id, b, nil
}

func (s *PassageService) Translations() []TranslationInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]TranslationInfo, 0, len(s.bibles))
	for id, b := range s.bibles {
		list = append(list, TranslationInfo{
			ID:      id,
			Name:    b.Name,
			Verses:  b.Len(),
			Digest:  fmt.Sprintf("%016x", b.Digest()),
			Default: id == s.defaultID,
		})
	}
	slices.SortFunc(list, func(a, b TranslationInfo) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return list
}

func (s *PassageService) Verse(ctx context.Context, id string, l bible.Lookup, superscripts bool) (string, error) {
	return s.cached(ctx, id, "verse", l.String(), superscripts, func(b *bible.Bible) (string, error) {
		return b.Verse(l, superscripts)
	})
}

func (s *PassageService) Chapter(ctx context.Context, id, book string, chapter int, superscripts bool) (string, error) {
	ref := book + " " + strconv.Itoa(chapter)
	return s.cached(ctx, id, "chapter", ref, superscripts, func(b *bible.Bible) (string, error) {
		return b.Chapter(book, chapter, superscripts)
	})
}

func (s *PassageService) Book(ctx context.Context, id, book string, superscripts bool) (string, error) {
	return s.cached(ctx, id, "book", book, superscripts, func(b *bible.Bible) (string, error) {
		return b.Book(book, superscripts)
	})
}

func (s *PassageService) Books(id string) ([]string, error) {
	b, err := s.Bible(id)
	if err != nil {
		return nil, err
	}
	return b.Books(), nil
}

func (s *PassageService) Chapters(id, book string) ([]int, error) {
	b, err := s.Bible(id)
	if err != nil {
		return nil, err
	}
	return b.Chapters(book)
}

func (s *PassageService) Verses(id, book string, chapter int) ([]int, error) {
	b, err := s.Bible(id)
	if err != nil {
		return nil, err
	}
	return b.Verses(book, chapter)
}

func (s *PassageService) MaxVerse(id, book string, chapter int) (int, error) {
	b, err := s.Bible(id)
	if err != nil {
		return 0, err
	}
	return b.MaxVerse(book, chapter)
}

// Random picks a verse from translation id and returns it with its text.
func (s *PassageService) Random(ctx context.Context, id string, superscripts bool) (bible.Lookup, string, error) {
	b, err := s.Bible(id)
	if err != nil {
		return bible.Lookup{}, "", err
	}

	s.rngMu.Lock()
	l, err := b.RandomVerse(s.rng)
	s.rngMu.Unlock()
	if err != nil {
		s.record("random", err)
		return bible.Lookup{}, "", err
	}

	text, err := b.Verse(l, superscripts)
	s.record("random", err)
	if err != nil {
		return bible.Lookup{}, "", err
	}
	return l, text, nil
}

// DetectedReference is a reference found in free text. Text is empty and
// Error set when the reference does not resolve in the translation.
type DetectedReference struct {
	Reference string       `json:"reference"`
	Lookup    bible.Lookup `json:"lookup"`
	Text      string       `json:"text,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// Detect finds references in text and resolves each against translation id.
func (s *PassageService) Detect(ctx context.Context, id, text string, superscripts bool) ([]DetectedReference, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyQuery
	}

	b, err := s.Bible(id)
	if err != nil {
		return nil, err
	}

	refs := []DetectedReference{}
	for _, l := range detect.References(text) {
		ref := DetectedReference{Reference: l.String(), Lookup: l}

		verse, err := b.Verse(l, superscripts)
		if err != nil {
			ref.Error = err.Error()
		} else {
			ref.Text = verse
		}
		refs = append(refs, ref)
	}

	s.record("detect", nil)
	return refs, nil
}

// cached renders a passage through the cache. Concurrent misses for the same
// key share one render. Cache failures are logged and bypassed.
func (s *PassageService) cached(ctx context.Context, id, kind, ref string, superscripts bool, render func(*bible.Bible) (string, error)) (string, error) {
	id, b, err := s.resolve(id)
	if err != nil {
		return "", err
	}

	key := cache.PassageKey(id, b.Digest(), kind, ref, superscripts)
	log := logger.FromContext(ctx, s.logger)

	if s.cache != nil {
		text, ok, err := s.cache.GetPassage(ctx, key)
		switch {
		case err != nil:
			s.cacheError()
			log.Warn("passage cache read failed", "key", key, "error", err)
		case ok:
			s.cacheHit(true)
			s.record(kind, nil)
			return text, nil
		default:
			s.cacheHit(false)
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		text, err := render(b)
		if err != nil {
			return "", err
		}

		if s.cache != nil {
			if err := s.cache.SetPassage(context.WithoutCancel(ctx), key, text); err != nil {
				s.cacheError()
				log.Warn("passage cache write failed", "key", key, "error", err)
			}
		}
		return text, nil
	})
	s.record(kind, err)
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (s *PassageService) record(kind string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.LookupsTotal.WithLabelValues(kind, resultLabel(err)).Inc()
}

func (s *PassageService) cacheHit(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHitsTotal.Inc()
	} else {
		s.metrics.CacheMissesTotal.Inc()
	}
}

func (s *PassageService) cacheError() {
	if s.metrics != nil {
		s.metrics.CacheErrorsTotal.Inc()
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, bible.ErrBookNotFound),
		errors.Is(err, bible.ErrChapterNotFound),
		errors.Is(err, bible.ErrVerseNotFound):
		return "not_found"
	case errors.Is(err, bible.ErrInvalidVerseFormat):
		return "invalid"
	default:
		return "error"
	}
}
