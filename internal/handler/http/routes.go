package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/nodes", h.registerNode)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withHashing)

		r.Get(h.basePath+"/{resource}", h.fetchResource)
		r.Patch(h.basePath+"/{resource}", h.syncResource)
		r.Patch(h.basePath+"/{resource}/{id}", h.syncEntity)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
