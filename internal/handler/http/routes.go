// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/hashPrefix", h.changeSet)
		r.Get("/filterSet", h.changeSet)
		r.Post("/{dataKind}/revisions", h.publish)

		r.Get("/matches", h.matches)
		r.Post("/matches", h.registerMatches)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
