// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound is registered as the router's NotFound handler so unknown paths
// get the same JSON envelope as every other failure.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, errRouteNotFound)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// chi has already set the Allow header when it is called.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, errMethodNotAllowed)
}
