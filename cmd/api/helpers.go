package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/julienschmidt/httprouter"

	"shuvoedward/Bible_lookup/internal/service"
	"shuvoedward/Bible_lookup/internal/validator"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		return err
	}

	return nil
}

func (app *application) background(fn func()) {
	app.wg.Go(func() {
		defer func() {
			pv := recover()
			if pv != nil {
				app.logger.Error(fmt.Sprintf("%v", pv))
			}
		}()

		fn()
	})
}

// readTranslationParam returns the :translation path parameter or, on
// routes without one, the translation query parameter.
func (app *application) readTranslationParam(r *http.Request, v *validator.Validator) string {
	id := httprouter.ParamsFromContext(r.Context()).ByName("translation")
	if id == "" {
		id = r.URL.Query().Get("translation")
	}

	service.ValidateTranslationID(v, id)
	return id
}

func (app *application) readIntParam(r *http.Request, name string) (int, error) {
	param := httprouter.ParamsFromContext(r.Context()).ByName(name)

	n, err := strconv.Atoi(param)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return n, nil
}

// readBool reads an optional boolean query parameter.
func (app *application) readBool(r *http.Request, key string, v *validator.Validator) bool {
	s := r.URL.Query().Get(key)
	if s == "" {
		return false
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		v.AddError(key, "must be a boolean value")
		return false
	}
	return b
}

func (app *application) readQuery(r *http.Request, key string) (string, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return "", errors.New("query parameter '" + key + "' can not be empty")
	}
	return s, nil
}
