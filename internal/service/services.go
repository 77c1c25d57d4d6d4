package service

import (
	"log/slog"

	"shuvoedward/Bible_lookup/internal/metrics"
)

// Service contains all business logic services
type Service struct {
	Passage      *PassageService
	Autocomplete *AutocompleteService
}

// NewServices creates all services with their dependencies. cache and m may
// be nil.
func NewServices(logger *slog.Logger, cache Cache, m *metrics.Metrics) *Service {
	passages := NewPassageService(logger, cache, m)

	return &Service{
		Passage:      passages,
		Autocomplete: NewAutocompleteService(passages),
	}
}
