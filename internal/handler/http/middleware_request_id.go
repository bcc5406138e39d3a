// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-item-keeper/internal/utils"
)

const requestIDHeader = "X-Request-Id"

// withRequestID resolves the correlation id of the request, reusing the
// inbound X-Request-Id header or generating a new one. The id is bound to
// the request context together with a child logger carrying it, and is set
// on the response before the next handler runs.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = utils.NewRequestID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx := utils.WithRequestID(r.Context(), requestID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
