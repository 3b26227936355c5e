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
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/api/version/", h.getServerVersion)
	router.Post("/api/user/register", h.register)
	router.Post("/api/user/login", h.login)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/state", func(r chi.Router) {
			r.Use(withGZip)
			r.Get("/", h.getState)
			r.Put("/", h.putState)
			r.Get("/meta", h.getStateMeta)
		})

		r.Route("/api/content", func(r chi.Router) {
			r.Post("/", h.ensureContentFolder)
			r.With(withGZip).Get("/", h.listContent)
			r.Put("/{name}", h.putContent)
			r.Get("/{name}", h.getContent)
			r.Delete("/{name}", h.deleteContent)
		})
	})

	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}
