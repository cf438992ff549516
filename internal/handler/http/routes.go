package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/version", h.getServerVersion)

	// routes with sync-key authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(withGZip).Post("/v1/getZipFileName", h.getZipFileName)
		r.Post("/v1/dlZip", h.downloadZip)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
