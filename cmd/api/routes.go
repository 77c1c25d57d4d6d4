package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "shuvoedward/Bible_lookup/docs"
	"shuvoedward/Bible_lookup/internal/metrics"
)

func (app *application) routes(handlers *Handlers) http.Handler {
	router := httprouter.New()

	router.RedirectFixedPath = false
	router.RedirectTrailingSlash = false

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	handlers.Health.RegisterRoutes(router)
	handlers.Bible.RegisterRoutes(router)

	if app.registry != nil {
		router.Handler(http.MethodGet, "/metrics", metrics.Handler(app.registry))
	}
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	return app.recoverPanic(app.requestID(app.logRequest(router)))
}

// handle registers an instrumented, rate limited GET route.
func (app *application) handle(router *httprouter.Router, pattern string, h http.HandlerFunc) {
	router.HandlerFunc(http.MethodGet, pattern, app.instrument(pattern, app.generalRateLimit(h)))
}
