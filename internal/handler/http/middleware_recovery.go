// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
)

// withRecovery turns a panic in a handler into an unexpected failure that
// the error translator renders like any other. When the handler already
// started its response the failure is only logged.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w}
		}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("%w: %v", errPanicRecovered, rec)
			logger.FromRequest(r).Error().
				Err(err).
				Bytes("stack", debug.Stack()).
				Bool("headers_sent", rw.wroteHeader).
				Msg("panic recovered")

			if rw.wroteHeader {
				return
			}
			h.writeError(rw, r, err)
		}()

		next.ServeHTTP(rw, r)
	})
}
