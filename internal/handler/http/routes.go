package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// apiPrefix mounts every route a second time for browser clients that call
// "/api/...".
const apiPrefix = "/api"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.corsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// set before mounting so sub-routers inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	h.routes(router)
	router.Route(apiPrefix, h.routes)

	return router
}

func (h *Handler) routes(r chi.Router) {
	// routes without authorization
	r.Get("/health", h.health)
	r.Get("/version", h.getServerVersion)
	r.Post("/auth/login", h.login)

	r.Route("/contacts", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listContacts)
		r.Post("/", h.createContact)
		r.Get("/search", h.searchContacts)
		r.Get("/{id}", h.getContact)
		r.Put("/{id}", h.updateContact)
		r.Delete("/{id}", h.deleteContact)
	})
}
