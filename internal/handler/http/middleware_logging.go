// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
)

const (
	maxBodyPreviewBytes = 2048
	redactedValue       = "***REDACTED***"
)

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
}

// withLogging writes a "request received" line before the request is served
// and a "response sent" line after it, with status, duration and redacted
// request headers. For JSON and form bodies the first bytes of the body are
// logged as well; the downstream handler still reads the complete body.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		var preview string
		logBody := isLoggableContentType(r.Header.Get("Content-Type"))
		if logBody && r.Body != nil {
			preview, r.Body = peekBody(r.Body, maxBodyPreviewBytes)
		}

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request received")

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status_code", lw.Status()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("size", lw.size).
			Interface("request_headers", redactHeaders(r.Header))
		if logBody {
			event = event.Str("request_body", preview)
		}
		event.Msg("response sent")
	})
}

func isLoggableContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "application/x-www-form-urlencoded")
}

// peekBody reads at most limit bytes of body for logging and returns a
// reader that replays them before the rest of the body. Read failures only
// shorten the preview.
func peekBody(body io.ReadCloser, limit int) (string, io.ReadCloser) {
	buf := make([]byte, limit)
	n, _ := io.ReadFull(body, buf)
	head := buf[:n]

	replay := struct {
		io.Reader
		io.Closer
	}{
		Reader: io.MultiReader(bytes.NewReader(head), body),
		Closer: body,
	}

	return strings.ToValidUTF8(string(head), "\uFFFD"), replay
}

func redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		if _, ok := sensitiveHeaders[strings.ToLower(name)]; ok {
			out[name] = redactedValue
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}
