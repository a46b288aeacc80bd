// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.listAccounts)
			r.With(h.withHashing).Post("/", h.createAccount)
			r.Delete("/{id}", h.deleteAccount)
		})

		r.Get("/debug/db", h.checkDB)
		r.Get("/version", h.getVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
