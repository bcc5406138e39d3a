// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router. The request id middleware runs first so every
// later log line and error envelope carries the correlation id. CORS is
// mounted only when origins are configured, so no cross-origin access is
// granted by default.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(h.withRecovery)
	if len(h.allowedOrigins) > 0 {
		router.Use(h.withCORS())
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/health", h.health)

	router.Route("/user", func(r chi.Router) {
		r.Post("/register/", h.register)
		r.Post("/login/", h.login)

		r.With(h.auth).Get("/profile/", h.profile)
	})

	router.Route("/item", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/create/", h.createItem)
		r.Get("/read/", h.listItems)
		r.Put("/update/{"+itemIDParam+"}", h.updateItem)
		r.Delete("/delete/{"+itemIDParam+"}", h.deleteItem)
	})

	return router
}
