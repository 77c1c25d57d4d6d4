package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"shuvoedward/Bible_lookup/internal/service"
)

type TranslationLister interface {
	Translations() []service.TranslationInfo
}

type HealthHandler struct {
	app          *application
	translations TranslationLister
}

func NewHealthHandler(app *application, translations TranslationLister) *HealthHandler {
	return &HealthHandler{app: app, translations: translations}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.app.instrument("/v1/healthcheck", h.Healthcheck))
}

// @Summary Service health
// @Description Reports the environment, version, loaded translations and cache state.
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,system_info=object{environment=string,version=string},translations=int,cache=string}
// @Router /v1/healthcheck [get]
func (h *HealthHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	cacheStatus := "disabled"
	if h.app.redis != nil {
		cacheStatus = "ok"
		if err := h.app.redis.Ping(r.Context()); err != nil {
			h.app.logError(r, err)
			cacheStatus = "unavailable"
		}
	}

	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": h.app.config.Server.Env,
			"version":     version,
		},
		"translations": len(h.translations.Translations()),
		"cache":        cacheStatus,
	}

	err := h.app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}
