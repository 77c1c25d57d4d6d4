package main

import "shuvoedward/Bible_lookup/internal/service"

// Handlers contains all HTTP methods
// This is specific to the HTTP API entry point
type Handlers struct {
	Bible  *BibleHandler
	Health *HealthHandler
}

// NewHandlers creates all HTTP handlers
func NewHandlers(app *application, services *service.Service) *Handlers {
	return &Handlers{
		Bible:  NewBibleHandler(app, services.Passage, services.Autocomplete),
		Health: NewHealthHandler(app, services.Passage),
	}
}
