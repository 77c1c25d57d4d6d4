package main

import (
	"errors"
	"fmt"
	"net/http"

	"shuvoedward/Bible_lookup/internal/bible"
	"shuvoedward/Bible_lookup/internal/logger"
	"shuvoedward/Bible_lookup/internal/service"
)

func (app *application) logError(r *http.Request, err error) {
	logger.FromContext(r.Context(), app.logger).Error(err.Error(),
		"method", r.Method,
		"uri", r.URL.RequestURI())
}

func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	env := envelope{"error": message}

	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) notFoundMessageResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	app.errorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	message := "rate limit exceeded"
	app.errorResponse(w, r, http.StatusTooManyRequests, message)
}

// lookupErrorResponse maps the lookup error taxonomy onto HTTP statuses.
func (app *application) lookupErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrTranslationNotFound),
		errors.Is(err, bible.ErrBookNotFound),
		errors.Is(err, bible.ErrChapterNotFound),
		errors.Is(err, bible.ErrVerseNotFound):
		app.notFoundMessageResponse(w, r, err)
	case errors.Is(err, bible.ErrInvalidVerseFormat),
		errors.Is(err, service.ErrEmptyQuery):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
